package lexer

import (
	"io"
	"unicode"

	"github.com/tilisp/tilisp/parser/token"
)

// Lexer splits source text into tokens.  After an ERROR token every
// subsequent call to NextToken returns the same error.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// err is sticky once a read error or invalid input is found.
	err *token.Token
}

// New returns a Lexer reading runes from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// NextToken scans and returns the next token.  At the end of input NextToken
// returns an EOF token.
func (lex *Lexer) NextToken() *token.Token {
	if lex.err != nil {
		return lex.err
	}
	lex.skipWhitespace()
	err := lex.readChar()
	if err != nil {
		return lex.emitError(err)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case ';':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				break
			}
			lex.readChar()
		}
		return lex.scanner.EmitToken(token.COMMENT)
	default:
		for {
			c, ok := lex.scanner.Peek()
			if !ok || IsDelimiter(c) {
				break
			}
			lex.readChar()
		}
		return lex.scanner.EmitToken(token.ATOM)
	}
}

func (lex *Lexer) emitError(err error) *token.Token {
	if err == io.EOF {
		return lex.scanner.EmitToken(token.EOF)
	}
	lex.err = &token.Token{
		Type:   token.ERROR,
		Text:   err.Error(),
		Source: lex.scanner.LocNext(),
	}
	return lex.err
}

func (lex *Lexer) skipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		lex.readChar()
	}
	lex.scanner.Ignore()
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

// IsDelimiter returns true if c terminates an atom.
func IsDelimiter(c rune) bool {
	switch c {
	case '(', ')', '\'', ';':
		return true
	}
	return unicode.IsSpace(c)
}
