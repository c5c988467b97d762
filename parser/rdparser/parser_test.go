package rdparser

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilisp/tilisp/lisp"
)

func TestParseAtom(t *testing.T) {
	for _, test := range []struct {
		text   string
		expect lisp.LVal
	}{
		{"0", lisp.Number(0)},
		{"42", lisp.Number(42)},
		{"102.32", lisp.Number(102.32)},
		{"-3", lisp.Number(-3)},
		{"+3", lisp.Number(3)},
		{".5", lisp.Number(0.5)},
		{"-.5", lisp.Number(-0.5)},
		{"1e3", lisp.Number(1000)},
		{"1e999", lisp.Number(math.Inf(1))},
		{"#t", lisp.True()},
		{"#f", lisp.False()},
		{"nil", lisp.Nil()},
		{"+", lisp.Sym("+")},
		{"-", lisp.Sym("-")},
		{"...", lisp.Sym("...")},
		{"inf", lisp.Sym("inf")},
		{"nan", lisp.Sym("nan")},
		{"1+", lisp.Sym("1+")},
		{"#true", lisp.Sym("#true")},
		{"nil?", lisp.Sym("nil?")},
		{"vas", lisp.Sym("vas")},
	} {
		assert.Equal(t, test.expect, ParseAtom(test.text), "text: %q", test.text)
	}
}

func TestReadExpression(t *testing.T) {
	for _, test := range []struct {
		text   string
		expect string
	}{
		{"()", "()"},
		{"( )", "()"},
		{"nil", "()"},
		{"(a)", "(a)"},
		{"  (a  b\n c)  ", "(a b c)"},
		{"'x", "(quote x)"},
		{"''x", "(quote (quote x))"},
		{"'(1 2)", "(quote (1 2))"},
		{"(a 'b)", "(a (quote b))"},
		{"(a'b)", "(a (quote b))"},
		{"(#t #f nil)", "(#t #f ())"},
		{"(1 (2 (3 4)) 5)", "(1 (2 (3 4)) 5)"},
		{"((lambda (x) x) 1)", "((lambda (x) x) 1)"},
		{"; leading comment\n(a ; inner\n b)", "(a b)"},
		{"a b", "a"},
	} {
		v, err := ReadExpression(test.text)
		if assert.NoError(t, err, "text: %q", test.text) {
			assert.Equal(t, test.expect, lisp.Print(v), "text: %q", test.text)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []lisp.LVal{
		lisp.Number(0),
		lisp.Number(-12.5),
		lisp.Number(1e-7),
		lisp.Number(6.02214076e23),
		lisp.True(),
		lisp.False(),
		lisp.Nil(),
		lisp.Sym("vas"),
	} {
		read, err := ReadExpression(lisp.Print(v))
		if assert.NoError(t, err, "value: %v", v) {
			assert.True(t, lisp.Equal(v, read), "%v != %v", v, read)
		}
	}
	text := "(1 (2 (3 4)) 5)"
	v, err := ReadExpression(text)
	require.NoError(t, err)
	assert.Equal(t, text, lisp.Print(v))
	again, err := ReadExpression(lisp.Print(v))
	require.NoError(t, err)
	assert.True(t, lisp.Equal(v, again))
}

func TestSyntaxErrors(t *testing.T) {
	for _, test := range []struct {
		text       string
		msg        string
		incomplete bool
	}{
		{"", ":1:1: syntax error: no expression", false},
		{"  ; only a comment", ":1:19: syntax error: no expression", false},
		{"(", ":1:2: syntax error: unexpected EOF", true},
		{"(a (b)", ":1:7: syntax error: unexpected EOF", true},
		{"(a\n  (b", ":2:5: syntax error: unexpected EOF", true},
		{"'", ":1:2: syntax error: unexpected EOF", true},
		{")", ":1:1: syntax error: unexpected )", false},
		{"(a \xff)", ":1:4: syntax error: invalid utf-8 sequence in source text starting with byte 0xff", false},
	} {
		_, err := ReadExpression(test.text)
		var syntaxErr *lisp.SyntaxError
		if assert.ErrorAs(t, err, &syntaxErr, "text: %q", test.text) {
			assert.Equal(t, test.msg, syntaxErr.Error(), "text: %q", test.text)
			assert.Equal(t, test.incomplete, syntaxErr.Incomplete, "text: %q", test.text)
		}
	}
}

func TestParseProgram(t *testing.T) {
	p := New("test", "(define x 1)\n; comment\n'x x")
	exprs, err := p.ParseProgram()
	require.NoError(t, err)
	printed := make([]string, len(exprs))
	for i := range exprs {
		printed[i] = lisp.Print(exprs[i])
	}
	expect := []string{"(define x 1)", "(quote x)", "x"}
	if diff := cmp.Diff(expect, printed); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}

	_, err = New("test", "(a) (b").ParseProgram()
	var syntaxErr *lisp.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "test:1:7: syntax error: unexpected EOF", syntaxErr.Error())

	exprs, err = New("test", "").ParseProgram()
	assert.NoError(t, err)
	assert.Len(t, exprs, 0)
}

func TestCommentEndsAtom(t *testing.T) {
	exprs, err := New("test", "a;b\n(c;d\ne)").ParseProgram()
	require.NoError(t, err)
	printed := make([]string, len(exprs))
	for i := range exprs {
		printed[i] = lisp.Print(exprs[i])
	}
	if diff := cmp.Diff([]string{"a", "(c e)"}, printed); diff != "" {
		t.Errorf("program mismatch (-want +got):\n%s", diff)
	}

	v, err := ReadExpression("12;34")
	require.NoError(t, err)
	assert.Equal(t, lisp.Number(12), v)
}

func TestParserCursor(t *testing.T) {
	p := New("test", "(a b) c  d")
	assert.Equal(t, 0, p.Offset())
	v, err := p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, "(a b)", lisp.Print(v))
	assert.Equal(t, 5, p.Offset())
	v, err = p.ParseExpression()
	require.NoError(t, err)
	assert.Equal(t, lisp.Sym("c"), v)
	assert.Equal(t, 7, p.Offset())
	assert.False(t, p.AtEOF())
	_, err = p.ParseExpression()
	require.NoError(t, err)
	assert.True(t, p.AtEOF())
}

func TestReader(t *testing.T) {
	r := NewReader()
	exprs, err := r.Read("test", strings.NewReader("1 (2) '3"))
	require.NoError(t, err)
	assert.Len(t, exprs, 3)
}

func TestReaderLoad(t *testing.T) {
	env := lisp.NewEnv(nil)
	require.NoError(t, lisp.InitializeUserEnv(env, lisp.WithReader(NewReader())))
	v, err := env.LoadString("test", `
; sum the integers below n
(define sum (lambda (n) (if (< n 1) 0 (+ n (sum (- n 1))))))
(sum 100)
`)
	require.NoError(t, err)
	assert.Equal(t, lisp.Number(5050), v)

	_, err = env.LoadString("test", "(sum")
	var syntaxErr *lisp.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
