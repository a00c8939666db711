package svgenius

import (
	"strconv"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Command is a single path command. Code is always the upper case letter,
// Relative records whether it was written in lower case.
type Command struct {
	Code     byte
	Relative bool
	Params   []float64
}

// Arity returns the number of parameters taken by the command code, or -1
// for an unknown code.
func Arity(code byte) int {
	switch code {
	case 'Z':
		return 0
	case 'H', 'V':
		return 1
	case 'M', 'L', 'T':
		return 2
	case 'Q', 'S':
		return 4
	case 'C':
		return 6
	case 'A':
		return 7
	}
	return -1
}

func isCommandLetter(c byte) bool {
	return Arity(upper(c)) >= 0
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// Letter returns the command letter as written in path data.
func (c Command) Letter() byte {
	if c.Relative {
		return c.Code - 'A' + 'a'
	}
	return c.Code
}

// IsCurve reports whether the shape of the command is defined through
// control points.
func (c Command) IsCurve() bool {
	switch c.Code {
	case 'C', 'S', 'Q', 'T', 'A':
		return true
	}
	return false
}

// valid reports whether the command carries the parameters its code needs.
func (c Command) valid() bool {
	n := Arity(c.Code)
	return n >= 0 && len(c.Params) >= n
}

func (c Command) clone() Command {
	c.Params = append([]float64(nil), c.Params...)
	return c
}

func (c Command) appendTo(b []byte, prec int) []byte {
	b = append(b, c.Letter())
	for i, v := range c.Params {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendNumber(b, v, prec)
	}
	return b
}

func (c Command) String() string {
	return string(c.appendTo(nil, 0))
}

// appendNumber formats v with at most prec decimals, or with the shortest
// exact representation when prec is not positive.
func appendNumber(b []byte, v float64, prec int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	if prec > 0 {
		return tstrconv.AppendDecimal(b, v, prec)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}
