package svgenius

// Optimize removes zero length commands from path data.
func Optimize(d string) (string, error) {
	return std.Optimize(d)
}

// Optimize removes zero length commands from path data. On malformed
// input the data is returned unchanged.
func (e *Engine) Optimize(d string) (string, error) {
	p, err := Parse(d)
	if err != nil {
		return d, err
	}
	return e.format(Path{Commands: e.optimize(p.Commands)}), nil
}

// optimize drops every command whose endpoint lies within tolerance of the
// previous endpoint, except the first command and closepaths. Lines and
// quadratics use LineTolerance; cubics use the looser JoinTolerance but
// only when their control points collapse too, so a closed loop drawn by a
// single cubic survives. A moveto is only dropped if it does not start a
// new subpath somewhere else. The command after a dropped one is written
// out absolute so the removal does not shift the rest of the path.
func (e *Engine) optimize(cmds []Command) []Command {
	pens := Trace(cmds)
	out := make([]Command, 0, len(cmds))
	var last Pen
	dropped := false
	for i, c := range cmds {
		pen := pens[i]
		if i > 0 && c.valid() && c.Code != 'Z' && e.degenerate(c, pen, last) {
			dropped = true
			continue
		}
		if dropped && c.Code != 'Z' {
			c = explicit(c, pen)
		} else {
			c = c.clone()
		}
		dropped = false
		out = append(out, c)
		last = pen
	}
	return out
}

func (e *Engine) degenerate(c Command, pen, last Pen) bool {
	switch c.Code {
	case 'M':
		return near(pen.End, last.End, e.opts.LineTolerance) &&
			near(pen.End, last.Subpath, e.opts.LineTolerance)
	case 'C', 'S':
		tol := e.opts.JoinTolerance
		return near(pen.End, last.End, tol) &&
			near(pen.Ctrl[0], last.End, tol) && near(pen.Ctrl[1], last.End, tol)
	}
	return near(pen.End, last.End, e.opts.LineTolerance)
}
