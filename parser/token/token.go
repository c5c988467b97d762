package token

import "fmt"

// Token is a lexical unit of source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	if tok.Type == ATOM || tok.Type == ERROR || tok.Type == COMMENT {
		return fmt.Sprintf("%v %q", tok.Type, tok.Text)
	}
	return tok.Type.String()
}

// Type is the kind of a Token.
type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// ATOM is a maximal run of non-delimiter characters.  The parser decides
	// whether it is a number, a boolean, nil or a symbol.
	ATOM

	COMMENT

	QUOTE

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

var typeStrings = [numTokenTypes]string{
	INVALID: "invalid",
	ERROR:   "error",
	EOF:     "EOF",
	ATOM:    "atom",
	COMMENT: ";",
	QUOTE:   "'",
	PAREN_L: "(",
	PAREN_R: ")",
}

func (typ Type) String() string {
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Location is a position in source text.  Pos is a byte offset.  Line and Col
// start at 1 when they are tracked and are zero otherwise.
type Location struct {
	File string
	Pos  int
	Line int
	Col  int
}

func (loc *Location) String() string {
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
