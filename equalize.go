package svgenius

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Segment is one drawing command seen as a piece of outline.
type Segment struct {
	Start, End vec.Vec2
	Curve      bool
	Length     float64
	Command    int // index of the source command
}

// Segments returns the drawing segments of the path, in order. Closed
// subpaths include their closing line.
func (p Path) Segments() []Segment {
	return segments(closeSubpaths(p.Commands))
}

func segments(cmds []Command) []Segment {
	pens := Trace(cmds)
	var segs []Segment
	for i, c := range cmds {
		if !c.valid() || c.Code == 'M' || c.Code == 'Z' {
			continue
		}
		seg := Segment{Start: pens[i].Start, End: pens[i].End, Curve: c.IsCurve(), Command: i}
		if seg.Curve {
			cb, _ := commandCubic(c, pens[i])
			seg.Length = cb.length()
		} else {
			seg.Length = seg.End.Sub(seg.Start).Length()
		}
		segs = append(segs, seg)
	}
	return segs
}

// Equalize brings every path up to the anchor count of the longest one.
func Equalize(paths ...string) ([]string, error) {
	return std.Equalize(paths...)
}

// Equalize adds anchors to the paths with fewer anchors until every path
// has as many as the one with the most. Paths that cannot be parsed or
// equalized are returned unchanged and their errors are joined.
func (e *Engine) Equalize(paths ...string) ([]string, error) {
	parsed := make([]Path, len(paths))
	ok := make([]bool, len(paths))
	var errs []error
	target := 0
	for i, d := range paths {
		p, err := Parse(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("path %d: %w", i, err))
			continue
		}
		parsed[i], ok[i] = p, true
		target = max(target, len(p.Anchors()))
	}

	out := make([]string, len(paths))
	for i, d := range paths {
		out[i] = d
		if !ok[i] {
			continue
		}
		q, err := e.equalizeTo(parsed[i], target)
		if err != nil {
			errs = append(errs, fmt.Errorf("path %d: %w", i, err))
			continue
		}
		if q.Commands != nil {
			out[i] = e.format(q)
		}
	}
	return out, errors.Join(errs...)
}

// EqualizeTo adds anchors to path data until it has target anchors.
func EqualizeTo(d string, target int) (string, error) {
	return std.EqualizeTo(d, target)
}

// EqualizeTo adds anchors to path data until it has target anchors. A
// target below the current count is out of range.
func (e *Engine) EqualizeTo(d string, target int) (string, error) {
	p, err := Parse(d)
	if err != nil {
		return d, err
	}
	q, err := e.equalizeTo(p, target)
	if err != nil || q.Commands == nil {
		return d, err
	}
	return e.format(q), nil
}

// equalizeTo returns a zero Path when p already has target anchors.
func (e *Engine) equalizeTo(p Path, target int) (Path, error) {
	have := len(p.Anchors())
	switch {
	case target < have:
		return Path{}, fmt.Errorf("equalize %d anchors to %d: %w", have, target, ErrIndexOutOfRange)
	case target == have:
		return Path{}, nil
	}

	cmds := closeSubpaths(p.Commands)
	segs := segments(cmds)
	if len(segs) == 0 {
		return Path{}, fmt.Errorf("equalize: no segments to split: %w", ErrDegenerateGeometry)
	}
	alloc := e.allocate(segs, target-have)

	pens := Trace(cmds)
	extra := make(map[int]int, len(segs))
	for i, s := range segs {
		extra[s.Command] = alloc[i]
	}
	out := make([]Command, 0, len(cmds)+target-have)
	for i, c := range cmds {
		n := extra[i]
		if n == 0 || !c.valid() {
			out = append(out, explicit(c, pens[i]))
			continue
		}
		if c.IsCurve() {
			cb, _ := commandCubic(c, pens[i])
			for _, part := range cb.subdivide(n + 1) {
				out = append(out, Command{Code: 'C', Params: part.params()})
			}
			continue
		}
		a, b := pens[i].Start, pens[i].End
		for j := 1; j <= n+1; j++ {
			v := a.Add(b.Sub(a).Mul(float64(j) / float64(n+1)))
			out = append(out, Command{Code: 'L', Params: []float64{v.X, v.Y}})
		}
	}

	if got := len(anchorCommands(out, Trace(out))); got != target {
		return Path{}, fmt.Errorf("equalize to %d anchors produced %d: %w", target, got, ErrDegenerateGeometry)
	}
	return Path{Commands: out}, nil
}

// allocate distributes n insertions over the segments in proportion to
// their priority. Rounding shortfalls go to the highest priority segments
// first, surpluses come off the lowest; ties keep segment order.
func (e *Engine) allocate(segs []Segment, n int) []int {
	prio := make([]float64, len(segs))
	var total float64
	for i, s := range segs {
		prio[i] = s.Length
		if s.Curve {
			prio[i] *= e.opts.CurveWeight
		}
		total += prio[i]
	}
	if total == 0 {
		for i := range prio {
			prio[i] = 1
		}
		total = float64(len(prio))
	}

	alloc := make([]int, len(segs))
	sum := 0
	for i, p := range prio {
		alloc[i] = int(math.Round(float64(n) * p / total))
		sum += alloc[i]
	}

	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case prio[a] > prio[b]:
			return -1
		case prio[a] < prio[b]:
			return 1
		}
		return 0
	})
	for k := 0; sum < n; k++ {
		alloc[order[k%len(order)]]++
		sum++
	}
	for k := len(order) - 1; sum > n; k-- {
		if k < 0 {
			k = len(order) - 1
		}
		if i := order[k]; alloc[i] > 0 {
			alloc[i]--
			sum--
		}
	}
	return alloc
}
