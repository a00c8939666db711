package svgenius

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Token is the text belonging to a single command letter. Letter is zero
// for text found before the first command letter.
type Token struct {
	Letter byte
	Args   string
}

// Raw returns the token as it appeared in the path data.
func (t Token) Raw() string {
	if t.Letter == 0 {
		return t.Args
	}
	return string(t.Letter) + t.Args
}

// Tokenize splits path data into one token per command letter. Everything
// between two command letters, including separators, signs and exponents,
// belongs to the preceding token. Tokenize never drops input: text that
// cannot belong to a command is kept in a letterless token and reported
// as ErrParseIncomplete.
func Tokenize(d string) ([]Token, error) {
	var tz tokenizer
	for rest := d; rest != ""; {
		rest = rest[tz.lex(rest):]
		if rest == "" {
			break
		}
		// the lexer stops at runes it has no state for, such as a
		// leading decimal point; keep the rune and lex on after it
		_, w := utf8.DecodeRuneInString(rest)
		tz.args(rest[:w])
		rest = rest[w:]
	}
	if lead := tz.lead.String(); strings.TrimSpace(lead) != "" {
		toks := append([]Token{{Args: lead}}, tz.toks...)
		return toks, fmt.Errorf("%w: %q before first command", ErrParseIncomplete, lead)
	}
	return tz.toks, nil
}

type tokenizer struct {
	toks []Token
	lead strings.Builder
}

// lex runs the path lexer over s and returns the number of bytes it
// consumed. Letter items open tokens, every other item is argument text.
// The item channel is always drained so the lexer goroutine can exit.
func (tz *tokenizer) lex(s string) int {
	_, items := gl.Lex("d", s)
	n := 0
	for i := range items {
		switch i.Type {
		case gl.ItemLetter, gl.ItemWord:
			tz.letters(i.Value)
		default:
			tz.args(i.Value)
		}
		n += len(i.Value)
	}
	return n
}

// letters handles a run of letters. The lexer groups adjacent letters, so
// "zM" arrives as one item.
func (tz *tokenizer) letters(v string) {
	for i := 0; i < len(v); i++ {
		if isCommandLetter(v[i]) {
			tz.toks = append(tz.toks, Token{Letter: v[i]})
			continue
		}
		tz.args(v[i : i+1])
	}
}

func (tz *tokenizer) args(v string) {
	if len(tz.toks) == 0 {
		tz.lead.WriteString(v)
		return
	}
	tz.toks[len(tz.toks)-1].Args += v
}

// Numbers extracts the numeric arguments of the token. Numbers may be
// separated by whitespace, commas, or nothing at all when the next number
// starts with a sign or a second decimal point.
func (t Token) Numbers() ([]float64, error) {
	b := []byte(t.Args)
	var nums []float64
	i := 0
	for {
		i += skipSeparators(b[i:])
		if i >= len(b) {
			return nums, nil
		}
		f, n := tstrconv.ParseFloat(b[i:])
		if n == 0 {
			return nums, fmt.Errorf("%w: unexpected %q in %q", ErrParseIncomplete, b[i], t.Raw())
		}
		nums = append(nums, f)
		i += n
	}
}

func skipSeparators(b []byte) int {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

// Commands converts the token into commands, expanding implicit
// repetition. A moveto followed by extra coordinate pairs continues as
// lineto. Incomplete trailing parameters are dropped and reported.
func (t Token) Commands() ([]Command, error) {
	if t.Letter == 0 {
		return nil, nil
	}
	code := upper(t.Letter)
	rel := t.Letter != code
	nums, err := t.Numbers()

	n := Arity(code)
	if n == 0 {
		if err == nil && len(nums) > 0 {
			err = fmt.Errorf("%w: %q takes no parameters", ErrParseIncomplete, t.Raw())
		}
		return []Command{{Code: code, Relative: rel}}, err
	}

	var cmds []Command
	for len(nums) >= n {
		cmds = append(cmds, Command{Code: code, Relative: rel, Params: nums[:n:n]})
		nums = nums[n:]
		if code == 'M' {
			code = 'L'
		}
	}
	if err == nil && (len(nums) > 0 || len(cmds) == 0) {
		err = fmt.Errorf("%w: %q needs parameters in groups of %d", ErrParseIncomplete, t.Raw(), n)
	}
	return cmds, err
}
