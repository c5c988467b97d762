package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text held in
// memory.  A Scanner tracks the byte offset, line and column of every rune.
type Scanner struct {
	file string
	buf  []byte

	start int // start of the current token
	pos   int // index of c in buf
	next  int // index of the rune following c
	c     Rune

	line, col           int // location of c
	nextLine, nextCol   int // location of the rune at next
	startLine, startCol int // location of the rune at start
}

// NewScanner initializes and returns a new Scanner over buf.  The scanner
// does not modify buf.
func NewScanner(file string, buf []byte) *Scanner {
	return &Scanner{
		file:      file,
		buf:       buf,
		nextLine:  1,
		nextCol:   1,
		startLine: 1,
		startCol:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startLine = s.nextLine
	s.startCol = s.nextCol
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.next])
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c.C
}

// Offset returns the byte offset of the first unscanned rune.
func (s *Scanner) Offset() int {
	return s.next
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or EOF prevents further runes from being scanned Peek returns
// a false second value.  In that case the next call to ScanRune returns an
// error that reflects the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.next >= len(s.buf) {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.buf[s.next:])
	if (Rune{c, n}).IsRuneError() {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  ScanRune returns io.EOF at the end of the input and an
// error for an invalid utf-8 sequence.  The scanner does not advance when an
// error is returned.
func (s *Scanner) ScanRune() error {
	if s.next >= len(s.buf) {
		return io.EOF
	}
	c, n := utf8.DecodeRune(s.buf[s.next:])
	r := Rune{c, n}
	if r.IsRuneError() {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %#x", s.buf[s.next])
	}
	s.c = r
	s.pos = s.next
	s.next += n
	s.line, s.col = s.nextLine, s.nextCol
	if c == '\n' {
		s.nextLine++
		s.nextCol = 1
	} else {
		s.nextCol++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position, the last
// rune of the current token.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// LocNext returns a Location referencing the first unscanned rune.  At the
// end of input it is one position past the last rune.
func (s *Scanner) LocNext() *Location {
	return &Location{
		File: s.file,
		Pos:  s.next,
		Line: s.nextLine,
		Col:  s.nextCol,
	}
}

// Rune contains a rune read by Scanner along with its encoded width.
type Rune struct {
	C rune
	N int
}

// IsRuneError returns true if Rune represents an invalid utf-8 sequence read
// by utf8.DecodeRune.
func (r Rune) IsRuneError() bool {
	return r.C == utf8.RuneError && r.N == 1
}
