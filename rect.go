package svgenius

import (
	"fmt"
	"math"
)

// Rect is an SVG rect element
type Rect struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
	Rx        string `xml:"rx,attr"`
	Ry        string `xml:"ry,attr"`
}

// ElementID implements the Element interface
func (r *Rect) ElementID() string { return r.ID }

// PathData traces the rectangle clockwise from its top left corner.
// Rounded corners become one quadratic each, with the corner as control
// point. A radius given on one axis only applies to both, and radii are
// limited to half the side.
func (r *Rect) PathData() (string, error) {
	v, err := numbers("x", r.X, "y", r.Y, "width", r.Width, "height", r.Height, "rx", r.Rx, "ry", r.Ry)
	if err != nil {
		return "", err
	}
	x, y, w, h, rx, ry := v[0], v[1], v[2], v[3], v[4], v[5]
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("rect %gx%g: %w", w, h, ErrDegenerateGeometry)
	}
	switch {
	case r.Rx == "" && r.Ry != "":
		rx = ry
	case r.Ry == "" && r.Rx != "":
		ry = rx
	}
	rx = math.Min(math.Max(rx, 0), w/2)
	ry = math.Min(math.Max(ry, 0), h/2)

	cmd := func(code byte, params ...float64) Command {
		return Command{Code: code, Params: params}
	}
	var cmds []Command
	if rx == 0 || ry == 0 {
		cmds = []Command{
			cmd('M', x, y),
			cmd('H', x+w),
			cmd('V', y+h),
			cmd('H', x),
			cmd('Z'),
		}
	} else {
		cmds = []Command{
			cmd('M', x+rx, y),
			cmd('H', x+w-rx),
			cmd('Q', x+w, y, x+w, y+ry),
			cmd('V', y+h-ry),
			cmd('Q', x+w, y+h, x+w-rx, y+h),
			cmd('H', x+rx),
			cmd('Q', x, y+h, x, y+h-ry),
			cmd('V', y+ry),
			cmd('Q', x, y, x+rx, y),
			cmd('Z'),
		}
	}
	return Path{Commands: cmds}.String(), nil
}
