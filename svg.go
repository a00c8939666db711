package svgenius

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Element is an SVG element understood by the package.
type Element interface {
	ElementID() string
}

// Shape is an element with an outline that can be written as path data.
type Shape interface {
	Element
	PathData() (string, error)
}

// Svg represents an SVG document. Elements holds the top level shapes and
// groups in document order; elements the package does not know about are
// skipped.
type Svg struct {
	Title    string
	Width    string
	Height   string
	ViewBox  string
	Elements []Element
}

// Group represents an SVG group (usually located in a 'g' XML element).
// Transforms are recorded but not applied.
type Group struct {
	ID              string
	Stroke          string
	Fill            string
	TransformString string
	Elements        []Element
}

// ElementID implements the Element interface
func (g *Group) ElementID() string { return g.ID }

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "fill":
			g.Fill = attr.Value
		case "transform":
			g.TransformString = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			el, err := decodeElement(decoder, tok)
			if err != nil {
				return fmt.Errorf("decode element of group %q: %w", g.ID, err)
			}
			if el != nil {
				g.Elements = append(g.Elements, el)
			}

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" {
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("decode title: %w", err)
				}
				continue
			}
			el, err := decodeElement(decoder, tok)
			if err != nil {
				return fmt.Errorf("decode element of svg: %w", err)
			}
			if el != nil {
				s.Elements = append(s.Elements, el)
			}

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// decodeElement decodes the element started by tok. Unknown elements are
// skipped and yield nil.
func decodeElement(decoder *xml.Decoder, tok xml.StartElement) (Element, error) {
	var el Element
	switch tok.Name.Local {
	case "g":
		el = &Group{}
	case "path":
		el = &PathElement{}
	case "rect":
		el = &Rect{}
	case "circle":
		el = &Circle{}
	case "ellipse":
		el = &Ellipse{}
	case "polygon":
		el = &Polygon{}
	case "polyline":
		el = &PolyLine{}
	case "line":
		el = &Line{}
	default:
		return nil, decoder.Skip()
	}
	if err := decoder.DecodeElement(el, &tok); err != nil {
		return nil, err
	}
	return el, nil
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str))
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader) (*Svg, error) {
	var svg Svg
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	return &svg, nil
}

// Shapes returns every shape of the document in document order, with
// groups flattened.
func (s *Svg) Shapes() []Shape {
	var shapes []Shape
	var walk func([]Element)
	walk = func(els []Element) {
		for _, el := range els {
			switch el := el.(type) {
			case *Group:
				walk(el.Elements)
			case Shape:
				shapes = append(shapes, el)
			}
		}
	}
	walk(s.Elements)
	return shapes
}

// PathData converts every shape of the document to path data. Shapes
// that cannot be converted fully are reported; their entry holds whatever
// could be converted, possibly nothing.
func (s *Svg) PathData() ([]string, error) {
	shapes := s.Shapes()
	out := make([]string, len(shapes))
	var errs []error
	for i, sh := range shapes {
		d, err := sh.PathData()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", kind(sh), sh.ElementID(), err))
		}
		out[i] = d
	}
	return out, errors.Join(errs...)
}

func kind(sh Shape) string {
	switch sh.(type) {
	case *PathElement:
		return "path"
	case *Rect:
		return "rect"
	case *Circle:
		return "circle"
	case *Ellipse:
		return "ellipse"
	case *Polygon:
		return "polygon"
	case *PolyLine:
		return "polyline"
	case *Line:
		return "line"
	}
	return "shape"
}

// PathElement is an SVG XML path element
type PathElement struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
	Fill            string `xml:"fill,attr"`
	Stroke          string `xml:"stroke,attr"`
}

// ElementID implements the Element interface
func (p *PathElement) ElementID() string { return p.ID }

// PathData returns the d attribute in normalized form.
func (p *PathElement) PathData() (string, error) {
	q, err := Parse(p.D)
	if err != nil {
		return p.D, err
	}
	return q.String(), nil
}

// number parses a length attribute. A missing attribute is zero; a
// trailing px unit is accepted.
func number(attr, s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, nil
	}
	f, n := tstrconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0, fmt.Errorf("%s=%q: %w", attr, s, ErrParseIncomplete)
	}
	return f, nil
}

// numbers parses attribute values in order, stopping at the first error.
func numbers(attrs ...string) ([]float64, error) {
	vals := make([]float64, 0, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		f, err := number(attrs[i], attrs[i+1])
		if err != nil {
			return nil, err
		}
		vals = append(vals, f)
	}
	return vals, nil
}
