package huffman

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Metrics reports how well a code table fits a symbol distribution.
// All values are unrounded; callers format them as needed.
type Metrics struct {
	// Entropy is the Shannon entropy of the distribution in bits per
	// symbol, the floor on the average length of any prefix-free code.
	Entropy float64
	// AvgCodeLength is the expected codeword length in bits per symbol.
	AvgCodeLength float64
	// Efficiency is Entropy over AvgCodeLength as a percentage, 0 when
	// AvgCodeLength is 0.
	Efficiency float64
}

// ComputeMetrics computes entropy, average codeword length and coding
// efficiency for freqs under codes. Every symbol of freqs must have a
// codeword; a missing one is reported as an *UnknownSymbolError. Symbols are
// accumulated in ascending order so the sums come out identical on every run.
func ComputeMetrics(freqs FrequencyTable, codes CodeTable) (Metrics, error) {
	symbols := maps.Keys(freqs)
	slices.Sort(symbols)

	var m Metrics
	total := freqs.Total()
	for _, sym := range symbols {
		code, ok := codes[sym]
		if !ok {
			return Metrics{}, &UnknownSymbolError{Symbol: sym}
		}
		p := float64(freqs[sym]) / float64(total)
		m.Entropy += p * math.Log2(1/p)
		m.AvgCodeLength += p * float64(code.Len())
	}
	if m.AvgCodeLength > 0 {
		m.Efficiency = 100 * m.Entropy / m.AvgCodeLength
	}
	return m, nil
}
