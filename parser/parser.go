/*
Package parser reads lisp source text.

The grammar is small:

	expr := "'" expr | "(" tail | atom
	tail := ")" | expr tail

An atom is a maximal run of characters other than parentheses, the quote
character and whitespace.  A semicolon starts a comment running to the end of
the line.  Atoms are classified as numbers, #t and #f, nil (the empty list) or
symbols, in that order.

The implementation is the recursive-descent parser in package rdparser.
*/
package parser

import (
	"github.com/tilisp/tilisp/lisp"
	"github.com/tilisp/tilisp/parser/rdparser"
)

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ReadExpression parses the first expression in text.
func ReadExpression(text string) (lisp.LVal, error) {
	return rdparser.ReadExpression(text)
}
