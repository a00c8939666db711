package svgenius

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BoundingBox returns the axis aligned box around every coordinate of the
// path data, control points included.
func BoundingBox(d string) (rect.Rect, error) {
	p, err := Parse(d)
	if err != nil {
		return rect.Rect{}, err
	}
	b, ok := p.BoundingBox()
	if !ok {
		return rect.Rect{}, fmt.Errorf("bounding box of empty path: %w", ErrDegenerateGeometry)
	}
	return b, nil
}

// BoundingBox returns the box around all points of the path, including
// control points, which may lie outside the outline. Arcs contribute the
// control points of their cubic approximation. ok is false for a path
// without points.
func (p Path) BoundingBox() (b rect.Rect, ok bool) {
	pens := Trace(p.Commands)
	add := func(v vec.Vec2) {
		if !ok {
			b = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			ok = true
			return
		}
		b.LLx = math.Min(b.LLx, v.X)
		b.LLy = math.Min(b.LLy, v.Y)
		b.URx = math.Max(b.URx, v.X)
		b.URy = math.Max(b.URy, v.Y)
	}
	for i, c := range p.Commands {
		if !c.valid() || c.Code == 'Z' {
			continue
		}
		if c.Code == 'A' {
			cb, _ := commandCubic(c, pens[i])
			for _, v := range cb.controlpoints {
				add(v)
			}
			continue
		}
		if c.Code != 'M' && i == 0 {
			add(pens[i].Start)
		}
		for _, v := range pens[i].Ctrl {
			add(v)
		}
		add(pens[i].End)
	}
	return b, ok
}

func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: math.Min(a.LLx, b.LLx),
		LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx),
		URy: math.Max(a.URy, b.URy),
	}
}

// ViewBox is an output viewport, as written in a viewBox attribute.
type ViewBox struct {
	X, Y, Width, Height float64
}

// IsZero reports whether v is the zero viewport.
func (v ViewBox) IsZero() bool {
	return v == ViewBox{}
}

// String formats v as "x y width height".
func (v ViewBox) String() string {
	var b []byte
	for i, f := range []float64{v.X, v.Y, v.Width, v.Height} {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendNumber(b, f, 0)
	}
	return string(b)
}

// Rect returns the viewport as a rectangle.
func (v ViewBox) Rect() rect.Rect {
	return rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X + v.Width, URy: v.Y + v.Height}
}

// padded returns the viewport around b with the padding fraction added on
// every side.
func padded(b rect.Rect, padding float64) ViewBox {
	w, h := b.URx-b.LLx, b.URy-b.LLy
	return ViewBox{
		X:      b.LLx - padding*w,
		Y:      b.LLy - padding*h,
		Width:  w * (1 + 2*padding),
		Height: h * (1 + 2*padding),
	}
}

// Viewport returns the padded viewport around all paths.
func Viewport(paths ...string) (ViewBox, error) {
	return std.Viewport(paths...)
}

// Viewport returns the viewport around the union of the bounding boxes of
// all paths, with Padding added on every side. Paths without a bounding
// box are skipped and reported.
func (e *Engine) Viewport(paths ...string) (ViewBox, error) {
	var (
		all  rect.Rect
		have bool
		errs []error
	)
	for i, d := range paths {
		b, err := BoundingBox(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("path %d: %w", i, err))
			continue
		}
		if have {
			all = union(all, b)
		} else {
			all, have = b, true
		}
	}
	if !have {
		errs = append(errs, fmt.Errorf("viewport: %w", ErrDegenerateGeometry))
		return ViewBox{}, errors.Join(errs...)
	}
	return padded(all, e.opts.Padding), errors.Join(errs...)
}
