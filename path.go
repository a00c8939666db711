package svgenius

import "strings"

// Path is a parsed path description. Paths are values: every transform
// returns a new Path or string and leaves its input untouched.
type Path struct {
	Commands []Command
}

// Parse tokenizes path data and converts every token into commands. On
// ErrParseIncomplete the returned path still holds all complete commands.
func Parse(d string) (Path, error) {
	toks, err := Tokenize(d)
	var p Path
	for _, tok := range toks {
		cmds, cerr := tok.Commands()
		p.Commands = append(p.Commands, cmds...)
		if err == nil {
			err = cerr
		}
	}
	return p, err
}

// MustParse is like Parse but panics on malformed input. It simplifies
// package level path literals.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Closed reports whether the path ends with a closepath command.
func (p Path) Closed() bool {
	n := len(p.Commands)
	return n > 0 && p.Commands[n-1].Code == 'Z'
}

// Empty reports whether the path has no commands.
func (p Path) Empty() bool {
	return len(p.Commands) == 0
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	q := Path{Commands: make([]Command, len(p.Commands))}
	for i, c := range p.Commands {
		q.Commands[i] = c.clone()
	}
	return q
}

// String formats the path with the shortest exact number representation.
func (p Path) String() string {
	return p.Format(0)
}

// Format formats the path with at most prec decimals per number. A prec
// of zero or less keeps every number exact.
func (p Path) Format(prec int) string {
	var b []byte
	for i, c := range p.Commands {
		if i > 0 {
			b = append(b, ' ')
		}
		b = c.appendTo(b, prec)
	}
	return string(b)
}

// Letters returns the command letters of the path, as written.
func (p Path) Letters() string {
	var sb strings.Builder
	for _, c := range p.Commands {
		sb.WriteByte(c.Letter())
	}
	return sb.String()
}
