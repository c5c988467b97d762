package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilisp/tilisp/symbol"
)

func TestNil(t *testing.T) {
	var _nil LVal
	require.Equal(t, LNil, _nil.Type)
	assert.True(t, IsNil(_nil))
	v := Nil()
	require.Equal(t, LNil, v.Type)
	assert.True(t, IsList(v))
	assert.True(t, IsTrue(v), "the empty list is truthy")
}

func TestNumber(t *testing.T) {
	for _, x := range []float64{
		0, 1, -1, 0.5, 102.32, 1e300, -1e-300,
	} {
		v := Number(x)
		require.Equal(t, LNumber, v.Type, "input: %v", x)
		y, ok := GetNumber(v)
		assert.True(t, ok, "input: %v", x)
		assert.Equal(t, x, y, "input: %v", x)
	}
	_, ok := GetNumber(True())
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	b, ok := GetBool(True())
	assert.True(t, ok)
	assert.True(t, b)
	b, ok = GetBool(False())
	assert.True(t, ok)
	assert.False(t, b)
	_, ok = GetBool(Number(0))
	assert.False(t, ok)

	assert.Equal(t, True(), Bool(true))
	assert.Equal(t, False(), Bool(false))

	assert.False(t, IsTrue(False()))
	for _, v := range []LVal{True(), Number(0), Nil(), Sym("f"), Expr(False())} {
		assert.True(t, IsTrue(v), "value: %v", v)
	}
}

func TestSymbol(t *testing.T) {
	for _, x := range []symbol.ID{
		0, 1, 1000,
	} {
		v := Symbol(x)
		require.Equal(t, LSymbol, v.Type, "input: %v", x)
		y, ok := GetSymbol(v)
		assert.True(t, ok, "input: %v", x)
		assert.Equal(t, x, y, "input: %v", x)
	}
	v := Sym("vas")
	id, ok := GetSymbol(v)
	assert.True(t, ok)
	assert.Equal(t, symbol.Intern("vas"), id)
}

func TestEqual(t *testing.T) {
	car := Primitive(PrimCAR)
	for i, test := range []struct {
		a, b  LVal
		equal bool
	}{
		{Nil(), Nil(), true},
		{Number(1), Number(1), true},
		{Number(1), Number(2), false},
		{Number(math.NaN()), Number(math.NaN()), false},
		{True(), True(), true},
		{True(), False(), false},
		{Sym("a"), Sym("a"), true},
		{Sym("a"), Sym("b"), false},
		{Nil(), False(), false},
		{Expr(Number(1), Expr(Number(2))), Expr(Number(1), Expr(Number(2))), true},
		{Expr(Number(1), Number(2)), Expr(Number(1)), false},
		{Expr(Number(1)), Expr(Number(1), Number(2)), false},
		{car, car, true},
		{car, Primitive(PrimCAR), false},
	} {
		assert.Equal(t, test.equal, Equal(test.a, test.b), "test %d: %v = %v", i, test.a, test.b)
	}
}

func TestLTypeString(t *testing.T) {
	assert.Equal(t, "pair", LCons.String())
	assert.Equal(t, "procedure", LProc.String())
	assert.Equal(t, "invalid", LType(200).String())
}
