package svgenius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"duplicate line", "M0 0 L0 0 L10 0", "M0 0 L10 0"},
		{"near duplicate line", "M0 0 L10 0 L10.0001 0 Z", "M0 0 L10 0 Z"},
		{"relative after drop", "M0 0 l10 0 l0 0 l5 0", "M0 0 l10 0 L15 0"},
		{"collapsed cubic join", "M0 0 L10 0 C10.5 0 10.5 0 10.5 0", "M0 0 L10 0"},
		{"cubic loop survives", "M0 0 C10 10 -10 10 0 0", "M0 0 C10 10 -10 10 0 0"},
		{"closepaths kept", "M0 0 L10 0 L0 0 Z", "M0 0 L10 0 L0 0 Z"},
		{"first command kept", "M0 0", "M0 0"},
		{"redundant moveto", "M0 0 M0 0 L5 5", "M0 0 L5 5"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Optimize(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestOptimizeTolerances(t *testing.T) {
	e := New(Options{LineTolerance: 0.5})
	out, err := e.Optimize("M0 0 L0.4 0 L10 0")
	require.NoError(t, err)
	assert.Equal(t, "M0 0 L10 0", out)

	out, err = Optimize("M0 0 L0.4 0 L10 0")
	require.NoError(t, err)
	assert.Equal(t, "M0 0 L0.4 0 L10 0", out)
}

func TestOptimizeMalformed(t *testing.T) {
	out, err := Optimize("M0 0 L")
	assert.ErrorIs(t, err, ErrParseIncomplete)
	assert.Equal(t, "M0 0 L", out)
}
