package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstTwoVowels(t *testing.T) {
	for _, c := range []struct{ name, want string }{
		{"TEO", "EO"},
		{"Abdulrahman", "AU"},
		{"ferris", "EI"},
		{"XYAZE", "AE"},
		{"aa", "AA"},
	} {
		got, err := firstTwoVowels(c.name)
		require.NoError(t, err, "name %q", c.name)
		assert.Equal(t, c.want, got, "name %q", c.name)
	}
}

func TestFirstTwoVowelsTooFew(t *testing.T) {
	for _, name := range []string{"", "xyz", "A", "brr"} {
		_, err := firstTwoVowels(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestReadName(t *testing.T) {
	var out strings.Builder
	name := readName(strings.NewReader("  Teo \n"), &out)
	assert.Equal(t, "Teo", name)
	assert.Equal(t, "Enter ONE group member's name (used to find first 2 vowels): ", out.String())
}
