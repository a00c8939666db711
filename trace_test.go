package svgenius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestTrace(t *testing.T) {
	p := MustParse("M10 10 l5 0 h5 v5 Z")
	pens := Trace(p.Commands)
	want := []vec.Vec2{{X: 10, Y: 10}, {X: 15, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 15}, {X: 10, Y: 10}}
	require.Len(t, pens, len(want))
	for i, w := range want {
		assert.Equal(t, w, pens[i].End, "command %d", i)
		assert.Equal(t, vec.Vec2{X: 10, Y: 10}, pens[i].Subpath, "command %d", i)
	}
	assert.Equal(t, pens[1].End, pens[2].Start)
}

func TestTraceSmoothCurves(t *testing.T) {
	pens := Trace(MustParse("M0 0 C0 10 10 10 10 0 S20 -10 20 0").Commands)
	assert.Equal(t, vec.Vec2{X: 10, Y: -10}, pens[2].Ctrl[0])
	assert.Equal(t, vec.Vec2{X: 20, Y: -10}, pens[2].Ctrl[1])

	pens = Trace(MustParse("M0 0 Q5 10 10 0 T20 0").Commands)
	assert.Equal(t, vec.Vec2{X: 15, Y: -10}, pens[2].Ctrl[0])

	// without a preceding cubic the first control point is the pen
	pens = Trace(MustParse("M5 5 S20 -10 20 0").Commands)
	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, pens[1].Ctrl[0])
}

func TestAnchors(t *testing.T) {
	tests := []struct {
		d    string
		want []AnchorPoint
	}{
		{"M0 0 L10 0 L10 10 Z", []AnchorPoint{{0, 0, 0}, {10, 0, 1}, {10, 10, 2}}},
		{"M0 0 L10 0 L10 10 L0 0 Z", []AnchorPoint{{0, 0, 0}, {10, 0, 1}, {10, 10, 2}}},
		{"m1 1 l10 0 v10", []AnchorPoint{{1, 1, 0}, {11, 1, 1}, {11, 11, 2}}},
		{"M0 0 C0 10 10 10 10 0", []AnchorPoint{{0, 0, 0}, {10, 0, 1}}},
		{"M0 0 A10 10 0 0 1 20 0", []AnchorPoint{{0, 0, 0}, {20, 0, 1}}},
		{"M0 0 L10 0 Z M20 20 L30 20", []AnchorPoint{{0, 0, 0}, {10, 0, 1}, {20, 20, 2}, {30, 20, 3}}},
	}
	for _, test := range tests {
		got, err := Anchors(test.d)
		require.NoError(t, err, test.d)
		require.Len(t, got, len(test.want), test.d)
		for i, w := range test.want {
			assert.InDelta(t, w.X, got[i].X, 1e-3, test.d)
			assert.InDelta(t, w.Y, got[i].Y, 1e-3, test.d)
			assert.Equal(t, i, got[i].Index, test.d)
		}
		assert.Equal(t, len(test.want), AnchorCount(test.d), test.d)
	}
}

func TestAnchorCountSkipsIncompleteCommands(t *testing.T) {
	assert.Equal(t, 2, AnchorCount("M0 0 L10 0 L5"))
	assert.Equal(t, 0, AnchorCount(""))
}

func TestExplicit(t *testing.T) {
	p := MustParse("M0 0 C0 10 10 10 10 0 s10 -10 10 0 t10 0")
	pens := Trace(p.Commands)
	assert.Equal(t, "C10 -10 20 -10 20 0", explicit(p.Commands[2], pens[2]).String())
	assert.Equal(t, "Q20 0 30 0", explicit(p.Commands[3], pens[3]).String())
	assert.Equal(t, "s10 -10 10 0", p.Commands[2].String())
}
