package svgenius

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	is := is.New(t)

	toks, err := Tokenize("M10 20L30-40z")
	is.NoErr(err)
	is.Equal(len(toks), 3)
	is.Equal(toks[0].Raw(), "M10 20")
	is.Equal(toks[1].Raw(), "L30-40")
	is.Equal(toks[2].Raw(), "z")
}

func TestTokenizeKeepsLeadingText(t *testing.T) {
	toks, err := Tokenize("12 M0 0")
	require.ErrorIs(t, err, ErrParseIncomplete)
	require.Len(t, toks, 2)
	assert.Equal(t, byte(0), toks[0].Letter)
	assert.Equal(t, "12 ", toks[0].Raw())
	assert.Equal(t, "M0 0", toks[1].Raw())
}

func TestTokenNumbers(t *testing.T) {
	nums, err := Token{Letter: 'L', Args: "1.5.5-2e1,3 \t4"}.Numbers()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0.5, -20, 3, 4}, nums)

	_, err = Token{Letter: 'L', Args: "1 #"}.Numbers()
	assert.ErrorIs(t, err, ErrParseIncomplete)
}

func TestTokenCommands(t *testing.T) {
	cmds, err := Token{Letter: 'm', Args: "1 1 2 2 3 3"}.Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, byte('m'), cmds[0].Letter())
	assert.Equal(t, byte('l'), cmds[1].Letter())
	assert.Equal(t, byte('l'), cmds[2].Letter())

	cmds, err = Token{Letter: 'L', Args: "1 2 3"}.Commands()
	assert.ErrorIs(t, err, ErrParseIncomplete)
	assert.Len(t, cmds, 1)

	_, err = Token{Letter: 'L'}.Commands()
	assert.ErrorIs(t, err, ErrParseIncomplete)

	cmds, err = Token{Letter: 'Z', Args: " 5"}.Commands()
	assert.ErrorIs(t, err, ErrParseIncomplete)
	assert.Len(t, cmds, 1)
}

func TestParse(t *testing.T) {
	p, err := Parse("M0 0 L10 0 L5")
	require.ErrorIs(t, err, ErrParseIncomplete)
	assert.Equal(t, "ML", p.Letters())

	p, err = Parse("M 0,0 h 10 v 10 Q 5 15 0 10 z")
	require.NoError(t, err)
	assert.Equal(t, "MhvQz", p.Letters())
	assert.True(t, p.Closed())
	assert.Equal(t, "M0 0 h10 v10 Q5 15 0 10 z", p.String())

	p, err = Parse("")
	require.NoError(t, err)
	assert.True(t, p.Empty())

	assert.Panics(t, func() { MustParse("L1") })
}

func TestFormatPrecision(t *testing.T) {
	p := MustParse("M0 0 L3.14159 -2.5")
	assert.Equal(t, "M0 0 L3.14159 -2.5", p.String())
	assert.Equal(t, "M0 0 L3.14 -2.5", p.Format(2))
	assert.Equal(t, "M0 0 L3.142 -2.5", p.Format(3))
}

func TestArity(t *testing.T) {
	for code, n := range map[byte]int{'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0, 'X': -1} {
		assert.Equal(t, n, Arity(code), "arity of %c", code)
	}
}

func TestTokenizeKeepsText(t *testing.T) {
	for _, d := range []string{
		"M0 0 L10 0 L10 10 Z",
		"M.5.5l-1e3,2",
		"m 1 2 c 3 4 5 6 7 8z",
		"zM0\r\f1",
		"M0 0 é 1",
	} {
		toks, _ := Tokenize(d)
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(tok.Raw())
		}
		assert.Equal(t, d, sb.String())
	}
}

func TestTokenizeReleasesLexer(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 500; i++ {
		_, _ = Tokenize("M.5.5 L10 0 C1 2 3 4 5 6 Z")
	}
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond)
}
