// Package bitstring holds sequences of binary digits as printable strings
// and converts them to and from packed bytes.
package bitstring

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bitstring is a sequence of binary digits, one byte per digit, each '0' or
// '1'. The zero value is the empty sequence. Construct arbitrary input
// through Parse; values built by a Builder from valid pieces stay valid.
type Bitstring string

// Len returns the number of digits.
func (s Bitstring) Len() int { return len(s) }

// String returns the digits as a plain string.
func (s Bitstring) String() string { return string(s) }

// Parse checks that s consists only of binary digits.
func Parse(s string) (Bitstring, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return "", fmt.Errorf("bitstring: byte %d is %q, want '0' or '1'", i, s[i])
		}
	}
	return Bitstring(s), nil
}

// Pack writes the digits most significant bit first into bytes, zero padding
// the final byte. A digit outside '0' and '1' is a contract violation and
// causes a panic.
func (s Bitstring) Pack() []byte {
	var bb bytes.Buffer
	bb.Grow((len(s) + 7) / 8)
	w := bitio.NewWriter(&bb)
	for i := 0; i < len(s); i++ {
		assert.Assertf(s[i] == '0' || s[i] == '1', "digit %d is %q, want '0' or '1'", i, s[i])
		w.TryWriteBool(s[i] == '1')
	}
	if w.TryError != nil {
		panic(w.TryError) // writes to bytes.Buffer cannot fail
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	return bb.Bytes()
}

// Unpack reads nbDigits digits back out of bytes produced by Pack.
func Unpack(data []byte, nbDigits int) (Bitstring, error) {
	if nbDigits < 0 {
		return "", fmt.Errorf("bitstring: negative digit count %d", nbDigits)
	}
	if need := (nbDigits + 7) / 8; len(data) < need {
		return "", fmt.Errorf("bitstring: %d digits need %d bytes, have %d", nbDigits, need, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	digits := make([]byte, nbDigits)
	for i := range digits {
		if r.TryReadBool() {
			digits[i] = '1'
		} else {
			digits[i] = '0'
		}
	}
	if r.TryError != nil {
		return "", r.TryError
	}
	return Bitstring(digits), nil
}

// Builder accumulates a Bitstring piece by piece without recopying the
// prefix on every append. The zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// Append adds the digits of piece to the end.
func (b *Builder) Append(piece Bitstring) {
	b.sb.WriteString(string(piece))
}

// Len returns the number of digits accumulated so far.
func (b *Builder) Len() int { return b.sb.Len() }

// Bitstring returns the accumulated digits.
func (b *Builder) Bitstring() Bitstring { return Bitstring(b.sb.String()) }

// Reset empties the builder.
func (b *Builder) Reset() { b.sb.Reset() }
