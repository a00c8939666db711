package svgenius

import "fmt"

// Circle is an SVG circle element
type Circle struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Radius    string `xml:"r,attr"`
}

// ElementID implements the Element interface
func (c *Circle) ElementID() string { return c.ID }

// PathData draws the circle as two half turn arcs starting at its
// leftmost point.
func (c *Circle) PathData() (string, error) {
	v, err := numbers("cx", c.Cx, "cy", c.Cy, "r", c.Radius)
	if err != nil {
		return "", err
	}
	return ellipsePath(v[0], v[1], v[2], v[2])
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Rx        string `xml:"rx,attr"`
	Ry        string `xml:"ry,attr"`
}

// ElementID implements the Element interface
func (e *Ellipse) ElementID() string { return e.ID }

// PathData draws the ellipse as two half turn arcs starting at its
// leftmost point.
func (e *Ellipse) PathData() (string, error) {
	v, err := numbers("cx", e.Cx, "cy", e.Cy, "rx", e.Rx, "ry", e.Ry)
	if err != nil {
		return "", err
	}
	return ellipsePath(v[0], v[1], v[2], v[3])
}

func ellipsePath(cx, cy, rx, ry float64) (string, error) {
	if rx <= 0 || ry <= 0 {
		return "", fmt.Errorf("ellipse radii %g, %g: %w", rx, ry, ErrDegenerateGeometry)
	}
	p := Path{Commands: []Command{
		{Code: 'M', Params: []float64{cx - rx, cy}},
		{Code: 'A', Params: []float64{rx, ry, 0, 1, 0, cx + rx, cy}},
		{Code: 'A', Params: []float64{rx, ry, 0, 1, 0, cx - rx, cy}},
		{Code: 'Z'},
	}}
	return p.String(), nil
}
