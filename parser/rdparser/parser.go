package rdparser

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tilisp/tilisp/lisp"
	"github.com/tilisp/tilisp/parser/lexer"
	"github.com/tilisp/tilisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]lisp.LVal, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p := NewFromScanner(token.NewScanner(name, buf))
	return p.ParseProgram()
}

// ReadExpression parses the first expression in text.  Text following the
// expression is ignored.  Text which contains no expression is a syntax
// error.
func ReadExpression(text string) (lisp.LVal, error) {
	p := New("", text)
	if p.AtEOF() {
		return lisp.Nil(), p.errorf(p.Peek(), false, "no expression")
	}
	return p.ParseExpression()
}

// Parser is a lisp parser.  A Parser holds the cursor into its source text;
// parsers share no state with one another.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads expressions from text.
// The name is used to describe source locations.
func New(name string, text string) *Parser {
	return NewFromScanner(token.NewScanner(name, []byte(text)))
}

// NewFromScanner initializes and returns a new Parser that reads tokens from
// scanner.
func NewFromScanner(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	p.initTokens()
	return p
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses every expression up to the end of the input.
func (p *Parser) ParseProgram() ([]lisp.LVal, error) {
	var exprs []lisp.LVal
	for !p.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// AtEOF skips comments and returns true if no tokens remain.
func (p *Parser) AtEOF() bool {
	p.skipComments()
	return p.PeekType() == token.EOF
}

// Offset returns the byte offset just beyond the last token consumed by the
// parser.
func (p *Parser) Offset() int {
	if p.curr == nil {
		return 0
	}
	return p.curr.Source.Pos + len(p.curr.Text)
}

// ParseExpression parses the next expression.
//
//	expr := "'" expr | "(" tail | atom
func (p *Parser) ParseExpression() (lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.ATOM:
		return p.ParseAtom()
	case token.QUOTE:
		return p.ParseQuote()
	case token.PAREN_L:
		return p.ParseConsExpression()
	case token.EOF:
		return lisp.Nil(), p.errorf(p.Peek(), true, "unexpected EOF")
	case token.ERROR:
		return lisp.Nil(), p.errorf(p.Peek(), false, "%s", p.Peek().Text)
	default:
		return lisp.Nil(), p.errorf(p.Peek(), false, "unexpected %s", p.PeekType())
	}
}

// ParseAtom parses a number, boolean, nil or symbol.
func (p *Parser) ParseAtom() (lisp.LVal, error) {
	if !p.expect(token.ATOM) {
		return lisp.Nil(), p.errorf(p.Peek(), false, "unexpected %s", p.PeekType())
	}
	return ParseAtom(p.Token().Text), nil
}

// ParseQuote parses 'expr as the list (quote expr).
func (p *Parser) ParseQuote() (lisp.LVal, error) {
	if !p.expect(token.QUOTE) {
		return lisp.Nil(), p.errorf(p.Peek(), false, "unexpected %s", p.PeekType())
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return lisp.Nil(), err
	}
	return lisp.Quote(expr), nil
}

// ParseConsExpression parses a parenthesized list.
//
//	tail := ")" | expr tail
func (p *Parser) ParseConsExpression() (lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return lisp.Nil(), p.errorf(p.Peek(), false, "unexpected %s", p.PeekType())
	}
	var list lisp.ListBuilder
	for {
		p.skipComments()
		if p.PeekType() == token.EOF {
			return lisp.Nil(), p.errorf(p.Peek(), true, "unexpected EOF")
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return lisp.Nil(), err
		}
		list.Append(x)
	}
	return list.List(), nil
}

// ParseAtom classifies the text of an atom.  In order of priority text is a
// number, #t or #f, nil, or else a symbol.
func ParseAtom(text string) lisp.LVal {
	if x, ok := parseNumber(text); ok {
		return lisp.Number(x)
	}
	switch text {
	case "#t":
		return lisp.True()
	case "#f":
		return lisp.False()
	case lisp.NilSymbol:
		return lisp.Nil()
	}
	return lisp.Sym(text)
}

// parseNumber accepts text beginning with a digit, or a sign or decimal point
// followed by a digit, that strconv.ParseFloat accepts in full.  Literals out
// of the float64 range become ±Inf or 0.
func parseNumber(text string) (float64, bool) {
	if !numberStart(text) {
		return 0, false
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return x, true
}

func numberStart(text string) bool {
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	if len(text) > 0 && text[0] == '.' {
		text = text[1:]
	}
	return len(text) > 0 && isDigit(text[0])
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ReadToken advances the parser by one token.
func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

// Token returns the last token consumed.
func (p *Parser) Token() *token.Token {
	return p.curr
}

// Peek returns the next token without consuming it.
func (p *Parser) Peek() *token.Token {
	return p.peek
}

// PeekType returns the type of the next token.
func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(tok *token.Token, incomplete bool, format string, v ...interface{}) error {
	return &lisp.SyntaxError{
		Loc:        tok.Source,
		Msg:        fmt.Sprintf(format, v...),
		Incomplete: incomplete,
	}
}
