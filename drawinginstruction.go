package svgenius

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// InstructionType tells a drawing library which function it has to call
type InstructionType int

// These are the instruction types produced from path data
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	QuadInstruction
	CurveInstruction
	CloseInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case QuadInstruction:
		return "quad"
	case CurveInstruction:
		return "curve"
	case CloseInstruction:
		return "close"
	}
	return "unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the path. All points are absolute. M is the target of
// a move, T the end point of any other drawing instruction, and C1, C2
// the control points of curves.
type DrawingInstruction struct {
	Kind InstructionType
	M    vec.Vec2
	C1   vec.Vec2
	C2   vec.Vec2
	T    vec.Vec2
}

// Instructions returns the drawing instructions of path data. Smooth
// curves are resolved and arcs approximated by cubics, so the
// instructions only use moves, lines, quadratics, cubics and closes.
func Instructions(d string) ([]DrawingInstruction, error) {
	p, err := Parse(d)
	return p.Instructions(), err
}

// Instructions returns the drawing instructions of the path.
func (p Path) Instructions() []DrawingInstruction {
	pens := Trace(p.Commands)
	var out []DrawingInstruction
	for i, c := range p.Commands {
		if !c.valid() {
			continue
		}
		pen := pens[i]
		switch c.Code {
		case 'M':
			out = append(out, DrawingInstruction{Kind: MoveInstruction, M: pen.End})
		case 'L', 'H', 'V':
			out = append(out, DrawingInstruction{Kind: LineInstruction, T: pen.End})
		case 'Q', 'T':
			out = append(out, DrawingInstruction{Kind: QuadInstruction, C1: pen.Ctrl[0], T: pen.End})
		case 'C', 'S', 'A':
			cb, _ := commandCubic(c, pen)
			cp := cb.controlpoints
			out = append(out, DrawingInstruction{Kind: CurveInstruction, C1: cp[1], C2: cp[2], T: cp[3]})
		case 'Z':
			out = append(out, DrawingInstruction{Kind: CloseInstruction, T: pen.End})
		}
	}
	return out
}

// Geometry converts path data into a geometry path for renderers and
// geometric analysis.
func Geometry(d string) (*path.Data, error) {
	p, err := Parse(d)
	return p.Geometry(), err
}

// Geometry converts the path into a geometry path. A path that does not
// start with a moveto starts at the origin.
func (p Path) Geometry() *path.Data {
	g := &path.Data{}
	started := false
	for _, in := range p.Instructions() {
		if !started && in.Kind != MoveInstruction {
			g = g.MoveTo(vec.Vec2{})
		}
		started = true
		switch in.Kind {
		case MoveInstruction:
			g = g.MoveTo(in.M)
		case LineInstruction:
			g = g.LineTo(in.T)
		case QuadInstruction:
			g = g.QuadTo(in.C1, in.T)
		case CurveInstruction:
			g = g.CubeTo(in.C1, in.C2, in.T)
		case CloseInstruction:
			g = g.Close()
		}
	}
	return g
}
