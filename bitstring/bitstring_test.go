package bitstring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("0101")
	require.NoError(t, err)
	assert.Equal(t, Bitstring("0101"), s)

	s, err = Parse("")
	require.NoError(t, err)
	assert.Zero(t, s.Len())

	_, err = Parse("01a1")
	require.Error(t, err)
	_, err = Parse("2")
	require.Error(t, err)
}

func TestPackKnownValues(t *testing.T) {
	assert.Equal(t, []byte{0xa0}, Bitstring("101").Pack())
	assert.Equal(t, []byte{0xff}, Bitstring("11111111").Pack())
	assert.Equal(t, []byte{0xea, 0x06, 0x30}, Bitstring("11101010000001100011").Pack())
	assert.Empty(t, Bitstring("").Pack())
}

func TestPackInvalidDigit(t *testing.T) {
	assert.Panics(t, func() { Bitstring("10x").Pack() })
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		n := rng.Intn(133)
		digits := make([]byte, n)
		for j := range digits {
			digits[j] = '0' + byte(rng.Intn(2))
		}
		s := Bitstring(digits)

		back, err := Unpack(s.Pack(), s.Len())
		require.NoError(t, err)
		require.Equal(t, s, back, "length %d", n)
	}
}

func TestUnpackIgnoresPadding(t *testing.T) {
	s, err := Unpack([]byte{0xa0}, 3)
	require.NoError(t, err)
	assert.Equal(t, Bitstring("101"), s)
}

func TestUnpackBadInput(t *testing.T) {
	_, err := Unpack([]byte{0xff}, 9)
	require.Error(t, err)
	_, err = Unpack(nil, 1)
	require.Error(t, err)
	_, err = Unpack(nil, -1)
	require.Error(t, err)

	s, err := Unpack(nil, 0)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestBuilder(t *testing.T) {
	var b Builder
	assert.Zero(t, b.Len())

	b.Append("11")
	b.Append("")
	b.Append("101")
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, Bitstring("11101"), b.Bitstring())

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Zero(t, b.Bitstring().Len())
}
