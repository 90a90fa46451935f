// Package report renders the presentation around a Huffman code: the
// encoding table and a codeword-length chart.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	huffman "github.com/Abdulrahman4733/Huffman-Encoding"
	"github.com/Abdulrahman4733/Huffman-Encoding/bitstring"
)

// row is one line of the encoding table.
type row struct {
	sym   huffman.Symbol
	count int
	prob  float64
	code  bitstring.Bitstring
}

// sortedRows collects one row per symbol, ordered by probability descending
// and then by symbol ascending.
func sortedRows(freqs huffman.FrequencyTable, codes huffman.CodeTable) ([]row, error) {
	total := freqs.Total()
	rows := make([]row, 0, len(freqs))
	for sym, count := range freqs {
		code, ok := codes[sym]
		if !ok {
			return nil, &huffman.UnknownSymbolError{Symbol: sym}
		}
		rows = append(rows, row{
			sym:   sym,
			count: count,
			prob:  float64(count) / float64(total),
			code:  code,
		})
	}
	slices.SortFunc(rows, func(a, b row) int {
		switch {
		case a.prob > b.prob:
			return -1
		case a.prob < b.prob:
			return 1
		case a.sym < b.sym:
			return -1
		case a.sym > b.sym:
			return 1
		}
		return 0
	})
	return rows, nil
}

const rule = "------------------------------------------------------------"

// center pads s with spaces to width, the extra space going to the right.
// Strings already at or past width come back unchanged.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// WriteTable writes the encoding table for freqs under codes: one line per
// symbol with its count, probability, codeword and codeword length, most
// probable symbol first. Cells are centered in fixed-width columns.
func WriteTable(w io.Writer, freqs huffman.FrequencyTable, codes huffman.CodeTable) error {
	rows, err := sortedRows(freqs, codes)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ENCODING TABLE (Huffman)\n%s\n", rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s | %s | %s | %s | %s\n%s\n",
		center("Symbol", 8), center("Count", 7), center("Prob", 10),
		center("Code", 15), center("Len", 5), rule); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s | %s | %s | %s | %s\n",
			center(string(rune(r.sym)), 8),
			center(strconv.Itoa(r.count), 7),
			center(fmt.Sprintf("%.4f", r.prob), 10),
			center(r.code.String(), 15),
			center(strconv.Itoa(r.code.Len()), 5)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, rule)
	return err
}
