package svgenius

import "fmt"

// Interpolate blends path data a into b at t.
func Interpolate(a, b string, t float64) (string, error) {
	return std.Interpolate(a, b, t)
}

// Interpolate blends every parameter of a towards the matching parameter
// of b by the eased value of t, which is clamped to [0, 1]. The paths must
// agree command by command in letter and parameter count; run them
// through NewMorph first to get there. Paths that do not agree, or do not
// parse, are not blended: the result cuts from a to b at t = 0.5.
func (e *Engine) Interpolate(a, b string, t float64) (string, error) {
	pa, err := Parse(a)
	if err != nil {
		return cut(a, b, t), err
	}
	pb, err := Parse(b)
	if err != nil {
		return cut(a, b, t), err
	}
	q, err := e.interpolate(pa, pb, t)
	if err != nil {
		return cut(a, b, t), err
	}
	return e.format(q), nil
}

// cut picks a or b at the midpoint of t clamped to [0, 1], so a NaN t
// gives a just like the easing does.
func cut[T any](a, b T, t float64) T {
	if clamp01(t) < 0.5 {
		return a
	}
	return b
}

func (e *Engine) interpolate(a, b Path, t float64) (Path, error) {
	if err := aligned(a, b); err != nil {
		return Path{}, err
	}
	u := e.opts.Easing.Apply(t)
	out := make([]Command, len(a.Commands))
	for i, ca := range a.Commands {
		cb := b.Commands[i]
		c := Command{Code: ca.Code, Relative: ca.Relative, Params: make([]float64, len(ca.Params))}
		for j, va := range ca.Params {
			vb := cb.Params[j]
			if ca.Code == 'A' && (j == 3 || j == 4) {
				// arc flags do not blend
				c.Params[j] = cut(va, vb, u)
				continue
			}
			c.Params[j] = va*(1-u) + vb*u
		}
		out[i] = c
	}
	return Path{Commands: out}, nil
}

// aligned reports whether two paths can be blended parameter by
// parameter.
func aligned(a, b Path) error {
	if len(a.Commands) != len(b.Commands) {
		return fmt.Errorf("%d commands against %d: %w", len(a.Commands), len(b.Commands), ErrStructuralMismatch)
	}
	for i, ca := range a.Commands {
		cb := b.Commands[i]
		if ca.Letter() != cb.Letter() {
			return fmt.Errorf("command %d: %c against %c: %w", i, ca.Letter(), cb.Letter(), ErrStructuralMismatch)
		}
		if len(ca.Params) != len(cb.Params) {
			return fmt.Errorf("command %d: %d parameters against %d: %w", i, len(ca.Params), len(cb.Params), ErrStructuralMismatch)
		}
	}
	return nil
}
