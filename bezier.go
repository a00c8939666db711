package svgenius

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// cubicBezier is a cubic bezier segment in absolute coordinates.
type cubicBezier struct {
	controlpoints [4]vec.Vec2
}

func lineCubic(a, b vec.Vec2) cubicBezier {
	d := b.Sub(a)
	return cubicBezier{[4]vec.Vec2{a, a.Add(d.Mul(1.0 / 3)), a.Add(d.Mul(2.0 / 3)), b}}
}

// quadCubic elevates the quadratic p0, p1, p2 to degree three.
func quadCubic(p0, p1, p2 vec.Vec2) cubicBezier {
	return cubicBezier{[4]vec.Vec2{
		p0,
		p0.Add(p1.Sub(p0).Mul(2.0 / 3)),
		p2.Add(p1.Sub(p2).Mul(2.0 / 3)),
		p2,
	}}
}

// commandCubic returns the cubic equivalent of a drawing command. Arcs
// are approximated by a single cubic. ok is false for moveto, closepath
// and malformed commands.
func commandCubic(c Command, pen Pen) (cb cubicBezier, ok bool) {
	if !c.valid() {
		return cb, false
	}
	switch c.Code {
	case 'L', 'H', 'V':
		return lineCubic(pen.Start, pen.End), true
	case 'C', 'S':
		return cubicBezier{[4]vec.Vec2{pen.Start, pen.Ctrl[0], pen.Ctrl[1], pen.End}}, true
	case 'Q', 'T':
		return quadCubic(pen.Start, pen.Ctrl[0], pen.End), true
	case 'A':
		p := c.Params
		return arcCubic(pen.Start, pen.End, p[0], p[1], p[2], p[3] != 0, p[4] != 0), true
	}
	return cb, false
}

// point evaluates the curve at t.
func (cb cubicBezier) point(t float64) vec.Vec2 {
	mt := 1 - t
	p := cb.controlpoints
	return p[0].Mul(mt * mt * mt).
		Add(p[1].Mul(3 * mt * mt * t)).
		Add(p[2].Mul(3 * mt * t * t)).
		Add(p[3].Mul(t * t * t))
}

// split divides the curve at t with de Casteljau's algorithm.
func (cb cubicBezier) split(t float64) (cubicBezier, cubicBezier) {
	p := cb.controlpoints
	lerp := func(a, b vec.Vec2) vec.Vec2 { return a.Add(b.Sub(a).Mul(t)) }
	p01, p12, p23 := lerp(p[0], p[1]), lerp(p[1], p[2]), lerp(p[2], p[3])
	p012, p123 := lerp(p01, p12), lerp(p12, p23)
	m := lerp(p012, p123)
	return cubicBezier{[4]vec.Vec2{p[0], p01, p012, m}},
		cubicBezier{[4]vec.Vec2{m, p123, p23, p[3]}}
}

// subdivide cuts the curve into n pieces of equal parameter length.
func (cb cubicBezier) subdivide(n int) []cubicBezier {
	if n < 1 {
		n = 1
	}
	parts := make([]cubicBezier, 0, n)
	rest := cb
	for k := n; k > 1; k-- {
		var head cubicBezier
		head, rest = rest.split(1 / float64(k))
		parts = append(parts, head)
	}
	return append(parts, rest)
}

// recursiveInterpolate returns points along the curve, excluding the
// start point, splitting until the control polygon is flat or the depth
// limit is reached.
func (cb cubicBezier) recursiveInterpolate(limit, depth int) []vec.Vec2 {
	p := cb.controlpoints
	if depth >= limit || flatness(p) < 1e-3 {
		return []vec.Vec2{p[3]}
	}
	a, b := cb.split(0.5)
	return append(a.recursiveInterpolate(limit, depth+1), b.recursiveInterpolate(limit, depth+1)...)
}

// flatness is the largest distance of the inner control points from the
// chord.
func flatness(p [4]vec.Vec2) float64 {
	chord := p[3].Sub(p[0])
	l := chord.Length()
	if l == 0 {
		return math.Max(p[1].Sub(p[0]).Length(), p[2].Sub(p[0]).Length())
	}
	d1 := math.Abs(cross(chord, p[1].Sub(p[0]))) / l
	d2 := math.Abs(cross(chord, p[2].Sub(p[0]))) / l
	return math.Max(d1, d2)
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// length approximates the arc length of the curve.
func (cb cubicBezier) length() float64 {
	prev := cb.controlpoints[0]
	var l float64
	for _, v := range cb.recursiveInterpolate(10, 0) {
		l += v.Sub(prev).Length()
		prev = v
	}
	return l
}

// params returns the parameters of an absolute C command drawing cb.
func (cb cubicBezier) params() []float64 {
	p := cb.controlpoints
	return []float64{p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y}
}

// arcCubic approximates an elliptical arc from start to end with one
// cubic. The handles follow the ellipse tangents with the usual
// 4/3·tan(θ/4) length for sweeps up to half a turn; longer sweeps keep the
// half turn handle length and are flattened towards the chord.
func arcCubic(start, end vec.Vec2, rx, ry, rotation float64, large, sweep bool) cubicBezier {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || near(start, end, 0) {
		return lineCubic(start, end)
	}
	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	dx, dy := (start.X-end.X)/2, (start.Y-end.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	theta1 := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	dtheta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	// derivative of the ellipse point at angle a
	tangent := func(a float64) vec.Vec2 {
		tx, ty := -rx*math.Sin(a), ry*math.Cos(a)
		return vec.Vec2{X: cosPhi*tx - sinPhi*ty, Y: sinPhi*tx + cosPhi*ty}
	}

	handle := math.Min(math.Abs(dtheta), math.Pi)
	k := 4.0 / 3 * math.Tan(handle/4)
	if dtheta < 0 {
		k = -k
	}
	theta2 := theta1 + dtheta
	return cubicBezier{[4]vec.Vec2{
		start,
		start.Add(tangent(theta1).Mul(k)),
		end.Sub(tangent(theta2).Mul(k)),
		end,
	}}
}

// angle returns the signed angle from (ux, uy) to (vx, vy).
func angle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
