package report

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	huffman "github.com/Abdulrahman4733/Huffman-Encoding"
)

// WriteLengthChart renders a bar chart of codeword length per symbol as SVG,
// in the same order as the table. The value axis always spans zero to the
// longest codeword. An empty table has nothing to chart and returns an error.
func WriteLengthChart(w io.Writer, freqs huffman.FrequencyTable, codes huffman.CodeTable) error {
	rows, err := sortedRows(freqs, codes)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("report: no symbols to chart")
	}
	bars := make([]chart.Value, 0, len(rows))
	maxLen := 0.0
	for _, r := range rows {
		if l := float64(r.code.Len()); l > maxLen {
			maxLen = l
		}
		bars = append(bars, chart.Value{
			Label: string(rune(r.sym)),
			Value: float64(r.code.Len()),
		})
	}
	graph := chart.BarChart{
		Title:    "Codeword length (bits)",
		Height:   512,
		BarWidth: 40,
		// go-chart rejects an inferred range with zero spread, as when every
		// codeword has the same length.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxLen},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
