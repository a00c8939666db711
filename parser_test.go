package svgenius

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

func TestParseSvg(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.ViewBox, "0 0 595.201 841.922")
	is.Equal(svg.Width, "595.201px")
	is.Equal(len(svg.Shapes()), 1)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg))
	is.NoErr(err)
	is.NotNil(svg)

	d, err := svg.PathData()
	is.NoErr(err)
	is.Equal(AnchorCount(d[0]), 4)
}

const shapesSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<title>shapes</title>
<circle id="c" cx="50" cy="50" r="10"/>
<ellipse id="e" cx="0" cy="0" rx="4" ry="2"/>
<g id="group">
	<rect id="r" x="0" y="0" width="20" height="10" rx="2"/>
	<g><polygon id="pg" points="0,0 10,0 10,10"/></g>
</g>
<polyline id="pl" points="0 0 10 0 10 10"/>
<line id="l" x1="0" y1="0" x2="5" y2="5"/>
<path id="p" d="m0 0 l5 5"/>
</svg>`

func TestConvertShapes(t *testing.T) {
	svg, err := ParseSvg(shapesSvg)
	require.NoError(t, err)
	assert.Equal(t, "shapes", svg.Title)

	d, err := svg.PathData()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"M40 50 A10 10 0 1 0 60 50 A10 10 0 1 0 40 50 Z",
		"M-4 0 A4 2 0 1 0 4 0 A4 2 0 1 0 -4 0 Z",
		"M2 0 H18 Q20 0 20 2 V8 Q20 10 18 10 H2 Q0 10 0 8 V2 Q0 0 2 0 Z",
		"M0 0 L10 0 L10 10 Z",
		"M0 0 L10 0 L10 10",
		"M0 0 L5 5",
		"m0 0 l5 5",
	}, d)

	var ids []string
	for _, sh := range svg.Shapes() {
		ids = append(ids, sh.ElementID())
	}
	assert.Equal(t, []string{"c", "e", "r", "pg", "pl", "l", "p"}, ids)

	require.Len(t, svg.Elements, 6)
	g, ok := svg.Elements[2].(*Group)
	require.True(t, ok)
	assert.Equal(t, "group", g.ElementID())
}

func TestConvertCircleAnchors(t *testing.T) {
	d, err := (&Circle{Cx: "0", Cy: "0", Radius: "5"}).PathData()
	require.NoError(t, err)
	assert.Equal(t, 2, AnchorCount(d))

	b, err := BoundingBox(d)
	require.NoError(t, err)
	assert.InDelta(t, -5, b.LLx, 1e-9)
	assert.InDelta(t, 5, b.URx, 1e-9)
}

func TestConvertFailures(t *testing.T) {
	_, err := (&Circle{Radius: "abc"}).PathData()
	assert.ErrorIs(t, err, ErrParseIncomplete)

	_, err = (&Circle{Radius: "0"}).PathData()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = (&Rect{Width: "10"}).PathData()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	d, err := (&Polygon{Points: "0,0 10,0 10"}).PathData()
	assert.ErrorIs(t, err, ErrParseIncomplete)
	assert.Equal(t, "M0 0 L10 0 Z", d)

	_, err = (&PolyLine{}).PathData()
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = ParseSvg("<svg><rect")
	assert.Error(t, err)
}
