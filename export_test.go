package svgenius

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	doc, err := Export("M0 0 L10 10", ViewBox{}, ExportOptions{ID: "p1", Fill: "red", StrokeWidth: 1.5})
	require.NoError(t, err)

	s := string(doc)
	assert.True(t, strings.HasPrefix(s, xml.Header))
	assert.Contains(t, s, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, s, `viewBox="-1 -1 12 12"`)
	assert.Contains(t, s, `id="p1"`)
	assert.Contains(t, s, `d="M0 0 L10 10"`)
	assert.Contains(t, s, `fill="red"`)
	assert.Contains(t, s, `stroke-width="1.5"`)
	assert.NotContains(t, s, `stroke="`)

	svg, err := ParseSvg(s)
	require.NoError(t, err)
	d, err := svg.PathData()
	require.NoError(t, err)
	assert.Equal(t, []string{"M0 0 L10 10"}, d)
}

func TestExportGeneratesID(t *testing.T) {
	doc, err := Export("M0 0 L10 10", ViewBox{X: 0, Y: 0, Width: 50, Height: 50}, ExportOptions{})
	require.NoError(t, err)

	svg, err := ParseSvg(string(doc))
	require.NoError(t, err)
	assert.Equal(t, "0 0 50 50", svg.ViewBox)
	shapes := svg.Shapes()
	require.Len(t, shapes, 1)

	id := shapes[0].ElementID()
	require.True(t, strings.HasPrefix(id, "path-"), id)
	_, err = uuid.Parse(strings.TrimPrefix(id, "path-"))
	assert.NoError(t, err)
}

func TestExportFailures(t *testing.T) {
	_, err := Export("", ViewBox{}, ExportOptions{})
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	doc, err := Export("M0 0 L10 10 L5", ViewBox{}, ExportOptions{ID: "partial"})
	assert.ErrorIs(t, err, ErrParseIncomplete)
	assert.Contains(t, string(doc), `d="M0 0 L10 10"`)
}
