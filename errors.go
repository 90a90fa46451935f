package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by BuildTree when the frequency table has no
// entries.
var ErrEmptyInput = errors.New("huffman: empty frequency table")

// UnknownSymbolError reports a symbol with no codeword in the table in use.
// It comes up when a text is encoded against codes built from a frequency
// table that does not cover it.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: no codeword for symbol %q", e.Symbol)
}
