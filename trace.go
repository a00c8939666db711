package svgenius

import (
	"seehuhn.de/go/geom/vec"
)

// pointTolerance is the distance below which two points count as the same
// anchor.
const pointTolerance = 1e-3

// Pen is the pen state around one command, in absolute coordinates.
type Pen struct {
	Start vec.Vec2 // pen position before the command
	End   vec.Vec2 // pen position after the command

	// Ctrl holds the control points of curve commands with smooth
	// reflections resolved: two for C and S, one for Q and T.
	Ctrl []vec.Vec2

	Subpath vec.Vec2 // start of the subpath the command belongs to
}

// Trace replays the commands from (0,0) and returns the pen state for
// every command. It is the only place that knows how commands move the
// pen; everything else in the package reads positions from a trace.
func Trace(cmds []Command) []Pen {
	pens := make([]Pen, len(cmds))
	var cur, sub, lastCubic, lastQuad vec.Vec2
	var prev byte
	for i, c := range cmds {
		pen := Pen{Start: cur, End: cur}
		if !c.valid() {
			pen.Subpath = sub
			pens[i] = pen
			prev = 0
			continue
		}
		p := c.Params
		at := func(x, y float64) vec.Vec2 {
			if c.Relative {
				return vec.Vec2{X: cur.X + x, Y: cur.Y + y}
			}
			return vec.Vec2{X: x, Y: y}
		}

		switch c.Code {
		case 'M':
			pen.End = at(p[0], p[1])
			sub = pen.End
		case 'L':
			pen.End = at(p[0], p[1])
		case 'H':
			pen.End = vec.Vec2{X: p[0], Y: cur.Y}
			if c.Relative {
				pen.End.X += cur.X
			}
		case 'V':
			pen.End = vec.Vec2{X: cur.X, Y: p[0]}
			if c.Relative {
				pen.End.Y += cur.Y
			}
		case 'C':
			pen.Ctrl = []vec.Vec2{at(p[0], p[1]), at(p[2], p[3])}
			pen.End = at(p[4], p[5])
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'S' {
				c1 = reflect(lastCubic, cur)
			}
			pen.Ctrl = []vec.Vec2{c1, at(p[0], p[1])}
			pen.End = at(p[2], p[3])
		case 'Q':
			pen.Ctrl = []vec.Vec2{at(p[0], p[1])}
			pen.End = at(p[2], p[3])
		case 'T':
			c1 := cur
			if prev == 'Q' || prev == 'T' {
				c1 = reflect(lastQuad, cur)
			}
			pen.Ctrl = []vec.Vec2{c1}
			pen.End = at(p[0], p[1])
		case 'A':
			pen.End = at(p[5], p[6])
		case 'Z':
			pen.End = sub
		}

		switch c.Code {
		case 'C', 'S':
			lastCubic = pen.Ctrl[1]
		case 'Q', 'T':
			lastQuad = pen.Ctrl[0]
		}
		pen.Subpath = sub
		pens[i] = pen
		prev = c.Code
		cur = pen.End
	}
	return pens
}

func reflect(p, around vec.Vec2) vec.Vec2 {
	return around.Mul(2).Sub(p)
}

// AnchorPoint is an on-curve point where the pen stops after a command.
type AnchorPoint struct {
	X, Y  float64
	Index int
}

// Anchors returns the anchor points of path data.
func Anchors(d string) ([]AnchorPoint, error) {
	p, err := Parse(d)
	return p.Anchors(), err
}

// AnchorCount returns the number of anchors of path data, counting only
// the complete commands.
func AnchorCount(d string) int {
	p, _ := Parse(d)
	return len(anchorCommands(p.Commands, Trace(p.Commands)))
}

// Anchors returns the anchor points of the path in order.
func (p Path) Anchors() []AnchorPoint {
	pens := Trace(p.Commands)
	idx := anchorCommands(p.Commands, pens)
	anchors := make([]AnchorPoint, len(idx))
	for i, ci := range idx {
		anchors[i] = AnchorPoint{X: pens[ci].End.X, Y: pens[ci].End.Y, Index: i}
	}
	return anchors
}

// anchorCommands returns the index of the command producing each anchor.
// Closepath commands produce none. The last endpoint of a subpath that
// returns onto the subpath's start is the start anchor again and is not
// counted twice.
func anchorCommands(cmds []Command, pens []Pen) []int {
	var idx []int
	first := -1 // position in idx of the current subpath's moveto
	for i, c := range cmds {
		if !c.valid() || c.Code == 'Z' {
			continue
		}
		if c.Code == 'M' {
			idx = append(idx, i)
			first = len(idx) - 1
			continue
		}
		if first >= 0 && len(idx)-first >= 2 && endsSubpath(cmds, i) &&
			near(pens[i].End, pens[i].Subpath, pointTolerance) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// endsSubpath reports whether cmds[i] is the last drawing command of its
// subpath.
func endsSubpath(cmds []Command, i int) bool {
	for _, c := range cmds[i+1:] {
		if !c.valid() {
			continue
		}
		return c.Code == 'Z' || c.Code == 'M'
	}
	return true
}

func near(a, b vec.Vec2, tol float64) bool {
	return a.Sub(b).Length() <= tol
}

// absolute rewrites c with absolute coordinates, keeping its code.
func absolute(c Command, pen Pen) Command {
	if !c.valid() {
		return c.clone()
	}
	out := Command{Code: c.Code}
	switch c.Code {
	case 'M', 'L', 'T':
		out.Params = []float64{pen.End.X, pen.End.Y}
	case 'H':
		out.Params = []float64{pen.End.X}
	case 'V':
		out.Params = []float64{pen.End.Y}
	case 'C':
		out.Params = []float64{pen.Ctrl[0].X, pen.Ctrl[0].Y, pen.Ctrl[1].X, pen.Ctrl[1].Y, pen.End.X, pen.End.Y}
	case 'S':
		out.Params = []float64{pen.Ctrl[1].X, pen.Ctrl[1].Y, pen.End.X, pen.End.Y}
	case 'Q':
		out.Params = []float64{pen.Ctrl[0].X, pen.Ctrl[0].Y, pen.End.X, pen.End.Y}
	case 'A':
		out.Params = []float64{c.Params[0], c.Params[1], c.Params[2], c.Params[3], c.Params[4], pen.End.X, pen.End.Y}
	}
	return out
}

// explicit is like absolute but also spells out smooth curves, so the
// command keeps its shape whatever precedes it.
func explicit(c Command, pen Pen) Command {
	if !c.valid() {
		return c.clone()
	}
	switch c.Code {
	case 'S':
		return absolute(Command{Code: 'C', Params: make([]float64, 6)}, pen)
	case 'T':
		return absolute(Command{Code: 'Q', Params: make([]float64, 4)}, pen)
	}
	return absolute(c, pen)
}
