package rdparser

import (
	"errors"
	"strings"

	"github.com/tilisp/tilisp/lisp"
)

// Interactive accumulates lines of terminal input until they form complete
// expressions.  Balancing parentheses across lines is its job, not the
// Parser's.
type Interactive struct {
	name  string
	buf   strings.Builder
	input string
}

// NewInteractive initializes and returns a new Interactive parser.  The name
// is used to describe source locations.
func NewInteractive(name string) *Interactive {
	return &Interactive{name: name}
}

// Prompt returns prompt, or when p is in the middle of parsing an
// expression, a continuation prompt of equal width.
func (p *Interactive) Prompt(prompt string) string {
	if p.IsParsing() {
		return strings.Repeat(" ", len(prompt))
	}
	return prompt
}

// IsParsing returns true if p holds input from an incomplete expression.
func (p *Interactive) IsParsing() bool {
	return p != nil && p.buf.Len() > 0
}

// Feed appends line to the pending input and parses it.  Feed returns no
// expressions and a nil error if the input is blank or still incomplete.
// Once the input is complete, or malformed, it is returned by Input and the
// pending input is discarded.
func (p *Interactive) Feed(line string) ([]lisp.LVal, error) {
	p.input = ""
	if !p.IsParsing() && strings.TrimSpace(line) == "" {
		return nil, nil
	}
	p.buf.WriteString(line)
	p.buf.WriteString("\n")
	text := p.buf.String()
	exprs, err := New(p.name, text).ParseProgram()
	var syntaxErr *lisp.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Incomplete {
		return nil, nil
	}
	p.Reset()
	p.input = strings.TrimSpace(text)
	return exprs, err
}

// Input returns the complete input consumed by the last call to Feed.  Input
// returns an empty string if the last call to Feed consumed nothing.
func (p *Interactive) Input() string {
	return p.input
}

// Reset discards pending input.
func (p *Interactive) Reset() {
	p.buf.Reset()
}
