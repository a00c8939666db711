package svgenius

// ToCubic rewrites path data so that every drawing command is an absolute
// cubic bezier. Lines get their control points at one and two thirds,
// quadratics are degree-elevated and arcs are approximated. Closed
// subpaths are closed with an explicit curve back to their start, so two
// normalized paths with the same anchor count line up command by command.
// On malformed input the data is returned unchanged.
func ToCubic(d string) (string, error) {
	p, err := Parse(d)
	if err != nil {
		return d, err
	}
	return p.ToCubic().String(), nil
}

// ToCubic returns the cubic normalized form of the path. The anchor count
// does not change.
func (p Path) ToCubic() Path {
	cmds := closeSubpaths(p.Commands)
	pens := Trace(cmds)
	out := make([]Command, 0, len(cmds))
	for i, c := range cmds {
		switch {
		case !c.valid():
			continue
		case c.Code == 'M':
			out = append(out, absolute(c, pens[i]))
		case c.Code == 'Z':
			out = append(out, Command{Code: 'Z'})
		default:
			cb, _ := commandCubic(c, pens[i])
			out = append(out, Command{Code: 'C', Params: cb.params()})
		}
	}
	return Path{Commands: out}
}

// closeSubpaths inserts an explicit line back to the subpath start before
// every closepath that would otherwise draw one itself. The added
// endpoint coincides with the subpath start and so adds no anchor.
func closeSubpaths(cmds []Command) []Command {
	pens := Trace(cmds)
	out := make([]Command, 0, len(cmds)+1)
	for i, c := range cmds {
		if c.Code == 'Z' && !near(pens[i].Start, pens[i].Subpath, pointTolerance) {
			out = append(out, Command{Code: 'L', Params: []float64{pens[i].Subpath.X, pens[i].Subpath.Y}})
		}
		out = append(out, c)
	}
	return out
}
