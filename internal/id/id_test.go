package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Plain(t *testing.T) {
	n, err := Parse("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestParse_HashPrefix(t *testing.T) {
	n, err := Parse("#42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	n, err := Parse("  7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestParse_Invalid(t *testing.T) {
	for _, arg := range []string{"", "#", "abc", "1.5", "0", "-2", "#-1", "3x"} {
		_, err := Parse(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "#12", Format(12))
}
