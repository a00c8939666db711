package svgenius

import "fmt"

// PolyLine is an SVG polyline element, a set of connected line segments.
type PolyLine struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Points    string `xml:"points,attr"`
}

// ElementID implements the Element interface
func (p *PolyLine) ElementID() string { return p.ID }

// PathData draws the points as an open path.
func (p *PolyLine) PathData() (string, error) {
	return pointsPath(p.Points, false)
}

// Polygon is an SVG polygon element, a polyline that closes back onto its
// first point.
type Polygon struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Points    string `xml:"points,attr"`
}

// ElementID implements the Element interface
func (p *Polygon) ElementID() string { return p.ID }

// PathData draws the points as a closed path.
func (p *Polygon) PathData() (string, error) {
	return pointsPath(p.Points, true)
}

// pointsPath draws a moveto to the first point and a lineto to each of
// the others. An odd coordinate count drops the last coordinate and is
// reported together with the path built from the rest.
func pointsPath(points string, closed bool) (string, error) {
	nums, err := Token{Args: points}.Numbers()
	if err == nil && len(nums)%2 != 0 {
		err = fmt.Errorf("%w: odd number of coordinates in %q", ErrParseIncomplete, points)
	}
	if len(nums) < 2 {
		if err == nil {
			err = fmt.Errorf("no points: %w", ErrDegenerateGeometry)
		}
		return "", err
	}
	var cmds []Command
	for i := 0; i+1 < len(nums); i += 2 {
		code := byte('L')
		if i == 0 {
			code = 'M'
		}
		cmds = append(cmds, Command{Code: code, Params: []float64{nums[i], nums[i+1]}})
	}
	if closed {
		cmds = append(cmds, Command{Code: 'Z'})
	}
	return Path{Commands: cmds}.String(), err
}

// Line is an SVG line element
type Line struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	X1        string `xml:"x1,attr"`
	Y1        string `xml:"y1,attr"`
	X2        string `xml:"x2,attr"`
	Y2        string `xml:"y2,attr"`
}

// ElementID implements the Element interface
func (l *Line) ElementID() string { return l.ID }

// PathData draws the line as a moveto and a lineto.
func (l *Line) PathData() (string, error) {
	v, err := numbers("x1", l.X1, "y1", l.Y1, "x2", l.X2, "y2", l.Y2)
	if err != nil {
		return "", err
	}
	return Path{Commands: []Command{
		{Code: 'M', Params: []float64{v[0], v[1]}},
		{Code: 'L', Params: []float64{v[2], v[3]}},
	}}.String(), nil
}
