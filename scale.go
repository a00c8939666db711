package svgenius

import (
	"errors"
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
	"seehuhn.de/go/geom/rect"
)

// NormalizeScale fits every path into the bounding box of the largest one.
func NormalizeScale(paths ...string) ([]string, ViewBox, error) {
	return std.NormalizeScale(paths...)
}

// NormalizeScale scales every path uniformly, keeping its aspect ratio,
// and centres it in the bounding box of the largest path. It also returns
// the padded viewport around all results. Paths that cannot be parsed or
// have no extent are left unchanged and reported.
func (e *Engine) NormalizeScale(paths ...string) ([]string, ViewBox, error) {
	parsed := make([]Path, len(paths))
	var errs []error
	for i, d := range paths {
		p, err := Parse(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("path %d: %w", i, err))
			continue
		}
		parsed[i] = p
	}
	scaled, done, vb, err := e.normalizeScale(parsed)
	out := make([]string, len(paths))
	for i, d := range paths {
		out[i] = d
		if done[i] {
			out[i] = e.format(scaled[i])
		}
	}
	return out, vb, errors.Join(append(errs, err)...)
}

// normalizeScale is NormalizeScale on parsed paths. done reports which
// paths were scaled; the others are returned as they came in. Empty paths
// are skipped silently.
func (e *Engine) normalizeScale(paths []Path) (out []Path, done []bool, vb ViewBox, err error) {
	out = make([]Path, len(paths))
	copy(out, paths)
	done = make([]bool, len(paths))

	boxes := make([]rect.Rect, len(paths))
	ok := make([]bool, len(paths))
	var errs []error
	target := -1
	for i, p := range paths {
		if p.Empty() {
			continue
		}
		b, has := p.BoundingBox()
		if !has {
			errs = append(errs, fmt.Errorf("path %d: no points: %w", i, ErrDegenerateGeometry))
			continue
		}
		boxes[i], ok[i] = b, true
		if target < 0 || larger(b, boxes[target]) {
			target = i
		}
	}
	if target < 0 {
		errs = append(errs, fmt.Errorf("scale: no path with extent: %w", ErrDegenerateGeometry))
		return out, done, ViewBox{}, errors.Join(errs...)
	}

	tb := boxes[target]
	var (
		all  rect.Rect
		have bool
	)
	for i, p := range paths {
		if !ok[i] {
			continue
		}
		q, ferr := fit(p, boxes[i], tb)
		if ferr != nil {
			errs = append(errs, fmt.Errorf("path %d: %w", i, ferr))
		} else {
			out[i], done[i] = q, true
		}
		b, _ := out[i].BoundingBox()
		if have {
			all = union(all, b)
		} else {
			all, have = b, true
		}
	}
	e.log.Debug("normalized scale", "paths", len(paths), "target", target)
	return out, done, padded(all, e.opts.Padding), errors.Join(errs...)
}

// larger orders boxes by area, then by perimeter so that flat boxes still
// compare.
func larger(a, b rect.Rect) bool {
	aw, ah := a.URx-a.LLx, a.URy-a.LLy
	bw, bh := b.URx-b.LLx, b.URy-b.LLy
	if aw*ah != bw*bh {
		return aw*ah > bw*bh
	}
	return aw+ah > bw+bh
}

// fit scales p, whose bounding box is from, uniformly into to and centres
// it there.
func fit(p Path, from, to rect.Rect) (Path, error) {
	w, h := from.URx-from.LLx, from.URy-from.LLy
	tw, th := to.URx-to.LLx, to.URy-to.LLy
	s := math.Inf(1)
	if w > 0 {
		s = tw / w
	}
	if h > 0 {
		s = math.Min(s, th/h)
	}
	if math.IsInf(s, 1) {
		return p, fmt.Errorf("scale a single point: %w", ErrDegenerateGeometry)
	}
	if !(s > 0) || math.IsInf(s, 0) {
		// a flat path against a target flat the other way
		return p, fmt.Errorf("scale by %g: %w", s, ErrDegenerateGeometry)
	}
	dx := (to.LLx+to.URx)/2 - s*(from.LLx+from.URx)/2
	dy := (to.LLy+to.URy)/2 - s*(from.LLy+from.URy)/2
	return transform(p, s, dx, dy), nil
}

// transform maps every point of p through a uniform scale by s followed
// by a shift by (dx, dy). Commands keep their codes but become absolute.
func transform(p Path, s, dx, dy float64) Path {
	t := mt.NewTransform()
	t.Translate(dx, dy)
	t.Scale(s, s)

	pens := Trace(p.Commands)
	out := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		c = absolute(c, pens[i])
		if !c.valid() {
			out[i] = c
			continue
		}
		q := c.Params
		switch c.Code {
		case 'H':
			q[0], _ = t.Apply(q[0], 0)
		case 'V':
			_, q[0] = t.Apply(0, q[0])
		case 'A':
			q[0] *= s
			q[1] *= s
			q[5], q[6] = t.Apply(q[5], q[6])
		default:
			for j := 0; j+1 < len(q); j += 2 {
				q[j], q[j+1] = t.Apply(q[j], q[j+1])
			}
		}
		out[i] = c
	}
	return Path{Commands: out}
}
