package svgenius

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func TestEasings(t *testing.T) {
	is := is.New(t)

	for _, e := range Easings {
		is.Equal(e.Apply(0), 0.0)
		is.Equal(e.Apply(1), 1.0)
		is.Equal(e.Apply(-3), 0.0)
		is.Equal(e.Apply(3), 1.0)
		is.Equal(e.Apply(math.NaN()), 0.0)

		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e.Apply(float64(i) / 100)
			is.True(v >= prev)
			prev = v
		}
	}
	is.Equal(EaseInOut.Apply(0.5), 0.5)
	is.Equal(Easing("bounce").Apply(0.3), 0.3)
}

func TestParseEasing(t *testing.T) {
	is := is.New(t)

	e, err := ParseEasing("cubicInOut")
	is.NoErr(err)
	is.Equal(e, CubicInOut)

	_, err = ParseEasing("bounce")
	is.Err(err)
}
