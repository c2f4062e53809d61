package braces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/braces"
)

// TestParse_StringRoundTrip: rendering a parsed expression gives back the
// input, and re-parsing the rendering expands to the same strings.
func TestParse_StringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"",
		"nothing, to do",
		"a{b,c{d,e}}f",
		"{}",
		"{,}",
		"thumbnail.{png,jp{e,}g}",
	} {
		e, err := braces.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, e.String())

		again, err := braces.Parse(e.String())
		require.NoError(t, err)
		assert.Equal(t, e.Count(), again.Count())
	}
}

func TestParse_Counts(t *testing.T) {
	cases := map[string]int{
		"":              1,
		"abc":           1,
		"{a,b,c}":       3,
		"{a,b}{c,d,e}":  6,
		"{a,{b,c}}":     3,
		"{a,b{c,d}}{,}": 6,
		"{}":            1,
	}
	for in, want := range cases {
		e, err := braces.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, e.Count(), in)
	}
}

func TestSyntaxError_Message(t *testing.T) {
	_, err := braces.Parse("ab{c")
	require.Error(t, err)
	assert.Equal(t, "braces: malformed input: unclosed group at offset 2", err.Error())
}
