package svgenius

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ExportOptions styles the path of an exported document.
type ExportOptions struct {
	// ID is the id of the path element. A random one is generated when
	// empty.
	ID          string
	Fill        string
	Stroke      string
	StrokeWidth float64
}

type exportDoc struct {
	XMLName xml.Name   `xml:"svg"`
	Xmlns   string     `xml:"xmlns,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Width   string     `xml:"width,attr,omitempty"`
	Height  string     `xml:"height,attr,omitempty"`
	Path    exportPath `xml:"path"`
}

type exportPath struct {
	ID          string `xml:"id,attr"`
	D           string `xml:"d,attr"`
	Fill        string `xml:"fill,attr,omitempty"`
	Stroke      string `xml:"stroke,attr,omitempty"`
	StrokeWidth string `xml:"stroke-width,attr,omitempty"`
}

// Export wraps path data into a standalone SVG document.
func Export(d string, vb ViewBox, eo ExportOptions) ([]byte, error) {
	return std.Export(d, vb, eo)
}

// Export wraps path data into a minimal standalone SVG document with a
// single path element. A zero viewport is replaced by the padded
// bounding box of the path. Malformed path data is exported as far as it
// parses, and the parse error is returned with the document.
func (e *Engine) Export(d string, vb ViewBox, eo ExportOptions) ([]byte, error) {
	p, perr := Parse(d)
	if vb.IsZero() {
		b, ok := p.BoundingBox()
		if !ok {
			return nil, fmt.Errorf("export empty path: %w", ErrDegenerateGeometry)
		}
		vb = padded(b, e.opts.Padding)
	}
	if eo.ID == "" {
		eo.ID = "path-" + uuid.NewString()
	}

	doc := exportDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		ViewBox: vb.String(),
		Width:   string(appendNumber(nil, vb.Width, e.opts.Precision)),
		Height:  string(appendNumber(nil, vb.Height, e.opts.Precision)),
		Path: exportPath{
			ID:     eo.ID,
			D:      e.format(p),
			Fill:   eo.Fill,
			Stroke: eo.Stroke,
		},
	}
	if eo.StrokeWidth > 0 {
		doc.Path.StrokeWidth = strconv.FormatFloat(eo.StrokeWidth, 'f', -1, 64)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	e.log.Debug("exported path", "id", eo.ID, "viewBox", doc.ViewBox)
	return append([]byte(xml.Header), out...), perr
}
