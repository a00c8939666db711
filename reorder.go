package svgenius

import "fmt"

// Reorder makes the anchor at index start the first point of the path.
func Reorder(d string, start int) (string, error) {
	return std.Reorder(d, start)
}

// Reorder makes the anchor at index start the first point of the path
// without flattening any curve. The commands after the anchor come first,
// then the commands before it, with inner movetos turned into lines. The
// command that led into the anchor closes the loop: a line is drawn again
// as a line, a curve is appended again with its original control points.
// The anchor count never changes. An index outside the path, or malformed
// input, returns the data unchanged.
func (e *Engine) Reorder(d string, start int) (string, error) {
	p, err := Parse(d)
	if err != nil {
		return d, err
	}
	q, err := e.reorder(p, start)
	if err != nil {
		return d, err
	}
	return e.format(q), nil
}

func (e *Engine) reorder(p Path, start int) (Path, error) {
	cmds := p.Commands
	pens := Trace(cmds)
	anchors := anchorCommands(cmds, pens)
	if start < 0 || start >= len(anchors) {
		return p, fmt.Errorf("reorder at %d of %d anchors: %w", start, len(anchors), ErrIndexOutOfRange)
	}
	k := anchors[start]
	if start == 0 && cmds[k].Code == 'M' {
		// already starts there
		return p, nil
	}

	closed := false
	pivot := pens[k].End
	out := []Command{{Code: 'M', Params: []float64{pivot.X, pivot.Y}}}
	splice := func(from, to int) {
		for i := from; i < to; i++ {
			c := cmds[i]
			if !c.valid() {
				continue
			}
			if c.Code == 'Z' {
				closed = true
				continue
			}
			c = explicit(c, pens[i])
			if c.Code == 'M' {
				c.Code = 'L'
			}
			out = append(out, c)
		}
	}
	splice(k+1, len(cmds))
	splice(0, k)

	if back := cmds[k]; back.IsCurve() {
		out = append(out, explicit(back, pens[k]))
	} else {
		out = append(out, Command{Code: 'L', Params: []float64{pivot.X, pivot.Y}})
	}
	if closed {
		out = append(out, Command{Code: 'Z'})
	}

	want := len(anchors)
	for _, cand := range [][]Command{e.optimize(out), out} {
		if len(anchorCommands(cand, Trace(cand))) == want {
			return Path{Commands: cand}, nil
		}
	}
	return p, fmt.Errorf("reorder at %d: anchor count not preserved: %w", start, ErrDegenerateGeometry)
}
