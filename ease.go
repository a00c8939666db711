package svgenius

import "fmt"

// Easing names a smoothing curve for the interpolation parameter. Every
// curve maps 0 to 0 and 1 to 1 and never decreases in between, so an eased
// blend stays between its two inputs.
type Easing string

// Supported easings.
const (
	Linear     Easing = "linear"
	EaseIn     Easing = "easeIn"
	EaseOut    Easing = "easeOut"
	EaseInOut  Easing = "easeInOut"
	CubicIn    Easing = "cubicIn"
	CubicOut   Easing = "cubicOut"
	CubicInOut Easing = "cubicInOut"
)

// Easings lists the supported easings.
var Easings = []Easing{Linear, EaseIn, EaseOut, EaseInOut, CubicIn, CubicOut, CubicInOut}

// ParseEasing returns the easing with the given name.
func ParseEasing(name string) (Easing, error) {
	for _, e := range Easings {
		if string(e) == name {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown easing %q", name)
}

// Apply eases t, clamped to [0, 1]. Unknown easings are linear.
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseIn:
		return t * t

	case EaseOut:
		return t * (2 - t)

	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t

	case CubicIn:
		return t * t * t

	case CubicOut:
		t2 := 1 - t
		return 1 - t2*t2*t2

	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		t2 := -2*t + 2
		return 1 - t2*t2*t2/2
	}
	return t
}

func clamp01(t float64) float64 {
	switch {
	case !(t > 0):
		return 0
	case t > 1:
		return 1
	}
	return t
}
