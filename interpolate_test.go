package svgenius

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateEndpoints(t *testing.T) {
	a, b := "M0 0 L10 0", "M0 0 L20 10"

	out, err := Interpolate(a, b, 0)
	require.NoError(t, err)
	assert.Equal(t, a, out)

	out, err = Interpolate(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, b, out)

	out, err = Interpolate(a, b, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "M0 0 L15 5", out)

	// clamped
	out, err = Interpolate(a, b, 7)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestInterpolateAfterNormalization(t *testing.T) {
	out, err := Equalize("M0 0 L10 0 L10 10 Z", "M0 0 L10 0 L10 10 L0 10 Z")
	require.NoError(t, err)
	a, err := ToCubic(out[0])
	require.NoError(t, err)
	b, err := ToCubic(out[1])
	require.NoError(t, err)

	for _, test := range []struct {
		t    float64
		want string
	}{{0, a}, {1, b}} {
		got, err := Interpolate(a, b, test.t)
		require.NoError(t, err)
		requireParams(t, flatParams(MustParse(test.want)), flatParams(MustParse(got)), "endpoint")
	}
}

func flatParams(p Path) []float64 {
	var all []float64
	for _, c := range p.Commands {
		all = append(all, c.Params...)
	}
	return all
}

func TestInterpolateIsMonotonic(t *testing.T) {
	a := MustParse("M0 0 C0 10 10 10 10 0")
	b := MustParse("M5 -5 C20 30 -10 4 30 -2")
	for _, easing := range Easings {
		e := New(Options{Easing: easing})
		prev := flatParams(a)
		for i := 1; i <= 20; i++ {
			q, err := e.interpolate(a, b, float64(i)/20)
			require.NoError(t, err)
			cur := flatParams(q)
			for j, v := range cur {
				from, to := flatParams(a)[j], flatParams(b)[j]
				if to >= from {
					assert.GreaterOrEqual(t, v, prev[j], "%s parameter %d", easing, j)
				} else {
					assert.LessOrEqual(t, v, prev[j], "%s parameter %d", easing, j)
				}
			}
			prev = cur
		}
	}
}

func TestInterpolateMismatchCuts(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"letters", "M0 0 L10 0", "M0 0 C1 1 2 2 3 3"},
		{"length", "M0 0 L10 0", "M0 0 L10 0 L5 5"},
		{"relative", "M0 0 L10 0", "M0 0 l10 0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := Interpolate(test.a, test.b, 0.3)
			assert.ErrorIs(t, err, ErrStructuralMismatch)
			assert.Equal(t, test.a, out)

			out, err = Interpolate(test.a, test.b, 0.7)
			assert.ErrorIs(t, err, ErrStructuralMismatch)
			assert.Equal(t, test.b, out)
		})
	}
}

func TestInterpolateNaNStaysAtStart(t *testing.T) {
	out, err := Interpolate("M0 0 L10 0", "M0 0 L20 0", math.NaN())
	require.NoError(t, err)
	assert.Equal(t, "M0 0 L10 0", out)

	out, err = Interpolate("M0 0 L10 0", "M0 0 L10 0 L5 5", math.NaN())
	assert.ErrorIs(t, err, ErrStructuralMismatch)
	assert.Equal(t, "M0 0 L10 0", out)
}

func TestInterpolateArcFlags(t *testing.T) {
	e := New(Options{Easing: Linear})
	a := "M0 0 A10 10 0 0 0 20 0"
	b := "M0 0 A20 20 0 1 1 20 0"

	out, err := e.Interpolate(a, b, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "M0 0 A12.5 12.5 0 0 0 20 0", out)

	out, err = e.Interpolate(a, b, 0.75)
	require.NoError(t, err)
	assert.Equal(t, "M0 0 A17.5 17.5 0 1 1 20 0", out)
}
