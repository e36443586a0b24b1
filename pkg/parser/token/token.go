package token

import (
	"fmt"
)

// Tokens are runes; single character tokens are the character itself.
const (
	EOF rune = -(iota + 1)
	EndOfStatement
	Newline
	Identifier
	Reserved
	Number
	Sort
)

const (
	Plus     rune = '+'
	Minus    rune = '-'
	Star     rune = '*'
	Slash    rune = '/'
	Caret    rune = '^'
	Equal    rune = '='
	LParen   rune = '('
	RParen   rune = ')'
	LBracket rune = '['
	RBracket rune = ']'
	Comma    rune = ','
)

func Format(r rune) string {
	switch r {
	case EOF:
		return "end of input"
	case EndOfStatement:
		return "end of statement (;)"
	case Newline:
		return "newline"
	case Identifier:
		return "an identifier"
	case Reserved:
		return "a keyword"
	case Number:
		return "a number"
	case Sort:
		return ".sort"
	}

	return fmt.Sprintf("'%c'", r)
}
