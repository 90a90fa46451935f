package huffman

import (
	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"

	"github.com/Abdulrahman4733/Huffman-Encoding/bitstring"
)

// Encode concatenates the codewords of the runes of text, in text order.
// A rune absent from codes is reported as an *UnknownSymbolError and nothing
// is returned. The empty text encodes to the empty bitstring.
func Encode(text string, codes CodeTable) (bitstring.Bitstring, error) {
	var b bitstring.Builder
	for _, r := range text {
		code, ok := codes[Symbol(r)]
		if !ok {
			return "", &UnknownSymbolError{Symbol: Symbol(r)}
		}
		b.Append(code)
	}
	return b.Bitstring(), nil
}

// EncodeSymbols is Encode for a pre-split symbol sequence.
func EncodeSymbols(symbols []Symbol, codes CodeTable) (bitstring.Bitstring, error) {
	var b bitstring.Builder
	for _, sym := range symbols {
		code, ok := codes[sym]
		if !ok {
			return "", &UnknownSymbolError{Symbol: sym}
		}
		b.Append(code)
	}
	return b.Bitstring(), nil
}

// packedCode is a codeword in the numeric form bitio wants: the bit pattern
// right-aligned in bits, written out over length bits.
type packedCode struct {
	bits   uint64
	length uint8
}

// Encoder writes Huffman-coded symbols to a bitio.Writer as packed bits
// rather than a digit string. The Encoder does not own the writer; the
// caller closes it to flush a partial final byte. Interleaved writes are
// permitted.
type Encoder struct {
	w     *bitio.Writer
	codes map[Symbol]packedCode
}

// NewEncoder precomputes the numeric form of every codeword in codes.
// Codewords must be nonempty binary-digit strings of at most 64 bits;
// NewEncoder panics on a table that violates this. Generated tables stay
// within the bound for trees up to 65 leaves, but a heavily skewed deeper
// table can exceed it. The code table is copied, so later changes to codes
// do not affect the Encoder.
func NewEncoder(codes CodeTable, w *bitio.Writer) *Encoder {
	packed := make(map[Symbol]packedCode, len(codes))
	for sym, code := range codes {
		assert.Assertf(code.Len() > 0, "empty codeword for symbol %q", sym)
		assert.Assertf(code.Len() <= 64, "codeword for symbol %q is %d bits, max 64", sym, code.Len())
		var bits uint64
		for i := 0; i < code.Len(); i++ {
			assert.Assertf(code[i] == '0' || code[i] == '1',
				"codeword for symbol %q has non-binary digit %q", sym, code[i])
			bits <<= 1
			if code[i] == '1' {
				bits |= 1
			}
		}
		packed[sym] = packedCode{bits: bits, length: uint8(code.Len())}
	}
	return &Encoder{w: w, codes: packed}
}

// EncodeString writes the codewords of the runes of text.
func (e *Encoder) EncodeString(text string) error {
	for _, r := range text {
		if err := e.encode(Symbol(r)); err != nil {
			return err
		}
	}
	return nil
}

// EncodeSymbols writes the codewords of a pre-split symbol sequence.
func (e *Encoder) EncodeSymbols(symbols []Symbol) error {
	for _, sym := range symbols {
		if err := e.encode(sym); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encode(sym Symbol) error {
	code, ok := e.codes[sym]
	if !ok {
		return &UnknownSymbolError{Symbol: sym}
	}
	return e.w.WriteBits(code.bits, code.length)
}
