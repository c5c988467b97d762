package lisp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitiveTable(t *testing.T) {
	ids := DefaultPrimitives()
	assert.Len(t, ids, 9)
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	assert.Equal(t, []string{"car", "cdr", "cons", "+", "-", "*", "/", "<", ">"}, names)
	assert.Equal(t, 1, PrimCAR.Arity())
	assert.Equal(t, 1, PrimCDR.Arity())
	assert.Equal(t, 2, PrimCons.Arity())
	assert.Equal(t, 2, PrimDiv.Arity())
	assert.Equal(t, "PrimitiveID(200)", PrimitiveID(200).String())
}

func TestPrimitiveCall(t *testing.T) {
	list := Expr(Number(1), Number(2))
	for i, test := range []struct {
		id     PrimitiveID
		args   []LVal
		expect LVal
	}{
		{PrimCAR, []LVal{list}, Number(1)},
		{PrimCDR, []LVal{list}, Expr(Number(2))},
		{PrimCDR, []LVal{Expr(Number(2))}, Nil()},
		{PrimCons, []LVal{Number(0), list}, Expr(Number(0), Number(1), Number(2))},
		{PrimCons, []LVal{Number(0), Nil()}, Expr(Number(0))},
		{PrimAdd, []LVal{Number(1), Number(2)}, Number(3)},
		{PrimSub, []LVal{Number(1), Number(2)}, Number(-1)},
		{PrimMul, []LVal{Number(3), Number(2)}, Number(6)},
		{PrimDiv, []LVal{Number(1), Number(4)}, Number(0.25)},
		{PrimDiv, []LVal{Number(1), Number(0)}, Number(math.Inf(1))},
		{PrimLess, []LVal{Number(1), Number(2)}, True()},
		{PrimLess, []LVal{Number(2), Number(2)}, False()},
		{PrimGreater, []LVal{Number(3), Number(2)}, True()},
		{PrimGreater, []LVal{Number(2), Number(3)}, False()},
	} {
		v, err := primitives[test.id].call(test.args)
		if assert.NoError(t, err, "test %d", i) {
			assert.True(t, Equal(test.expect, v), "test %d: %v != %v", i, test.expect, v)
		}
	}
}

func TestPrimitiveTypeErrors(t *testing.T) {
	for i, test := range []struct {
		id   PrimitiveID
		args []LVal
		msg  string
	}{
		{PrimCAR, []LVal{Nil()}, "car: argument is the empty list"},
		{PrimCDR, []LVal{Number(1)}, "cdr: argument is not a pair: number"},
		{PrimCons, []LVal{Number(1), Number(2)}, "cons: second argument is not a list: number"},
		{PrimAdd, []LVal{Sym("a"), Number(2)}, "+: first argument is not a number: symbol"},
		{PrimLess, []LVal{Number(1), True()}, "<: second argument is not a number: boolean"},
	} {
		_, err := primitives[test.id].call(test.args)
		var typeErr *TypeError
		if assert.ErrorAs(t, err, &typeErr, "test %d", i) {
			assert.Equal(t, test.msg, typeErr.Error(), "test %d", i)
		}
	}
}

func TestPrimitiveArity(t *testing.T) {
	_, err := primitives[PrimAdd].call([]LVal{Number(1)})
	var arityErr *ArityError
	if assert.ErrorAs(t, err, &arityErr) {
		assert.Equal(t, "+: expected 2 operands (got 1)", arityErr.Error())
	}
}
