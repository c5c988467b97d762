package lisp

import "fmt"

// PrimitiveID identifies one of the built-in procedures.  The set of
// primitives is closed.
type PrimitiveID uint8

// Possible PrimitiveID values
const (
	PrimCAR PrimitiveID = iota
	PrimCDR
	PrimCons
	PrimAdd
	PrimSub
	PrimMul
	PrimDiv
	PrimLess
	PrimGreater

	numPrimitives
)

// String returns the name the primitive is bound to in a user environment.
func (id PrimitiveID) String() string {
	if id >= numPrimitives {
		return fmt.Sprintf("PrimitiveID(%d)", uint8(id))
	}
	return primitives[id].name
}

// Arity returns the number of operands the primitive takes.
func (id PrimitiveID) Arity() int {
	if id >= numPrimitives {
		return 0
	}
	return primitives[id].arity()
}

// DefaultPrimitives returns every primitive, in PrimitiveID order.
func DefaultPrimitives() []PrimitiveID {
	ids := make([]PrimitiveID, numPrimitives)
	for i := range ids {
		ids[i] = PrimitiveID(i)
	}
	return ids
}

type unaryFunc func(v LVal) (LVal, error)
type binaryFunc func(a, b LVal) (LVal, error)

// primitive holds exactly one non-nil handler.  The handler's type fixes the
// arity of the primitive.
type primitive struct {
	name   string
	unary  unaryFunc
	binary binaryFunc
}

var primitives = [numPrimitives]primitive{
	PrimCAR:     {name: "car", unary: builtinCAR},
	PrimCDR:     {name: "cdr", unary: builtinCDR},
	PrimCons:    {name: "cons", binary: builtinCons},
	PrimAdd:     {name: "+", binary: arithmetic("+", func(x, y float64) float64 { return x + y })},
	PrimSub:     {name: "-", binary: arithmetic("-", func(x, y float64) float64 { return x - y })},
	PrimMul:     {name: "*", binary: arithmetic("*", func(x, y float64) float64 { return x * y })},
	PrimDiv:     {name: "/", binary: arithmetic("/", func(x, y float64) float64 { return x / y })},
	PrimLess:    {name: "<", binary: comparison("<", func(x, y float64) bool { return x < y })},
	PrimGreater: {name: ">", binary: comparison(">", func(x, y float64) bool { return x > y })},
}

func (p *primitive) arity() int {
	if p.unary != nil {
		return 1
	}
	return 2
}

func (p *primitive) call(args []LVal) (LVal, error) {
	if len(args) != p.arity() {
		return Nil(), &ArityError{Op: p.name, Want: p.arity(), Got: len(args)}
	}
	if p.unary != nil {
		return p.unary(args[0])
	}
	return p.binary(args[0], args[1])
}

func builtinCAR(v LVal) (LVal, error) {
	if IsNil(v) {
		return Nil(), typeErrorf("car", "argument is the empty list")
	}
	car, ok := GetCAR(v)
	if !ok {
		return Nil(), typeErrorf("car", "argument is not a pair: %v", v.Type)
	}
	return car, nil
}

func builtinCDR(v LVal) (LVal, error) {
	if IsNil(v) {
		return Nil(), typeErrorf("cdr", "argument is the empty list")
	}
	cdr, ok := GetCDR(v)
	if !ok {
		return Nil(), typeErrorf("cdr", "argument is not a pair: %v", v.Type)
	}
	return cdr, nil
}

// builtinCons only builds proper lists.  The tail must already be a list.
func builtinCons(head, tail LVal) (LVal, error) {
	if tail.Type != LNil && tail.Type != LCons {
		return Nil(), typeErrorf("cons", "second argument is not a list: %v", tail.Type)
	}
	return Cons(head, tail), nil
}

func numericArgs(op string, a, b LVal) (float64, float64, error) {
	x, ok := GetNumber(a)
	if !ok {
		return 0, 0, typeErrorf(op, "first argument is not a number: %v", a.Type)
	}
	y, ok := GetNumber(b)
	if !ok {
		return 0, 0, typeErrorf(op, "second argument is not a number: %v", b.Type)
	}
	return x, y, nil
}

func arithmetic(op string, fn func(x, y float64) float64) binaryFunc {
	return func(a, b LVal) (LVal, error) {
		x, y, err := numericArgs(op, a, b)
		if err != nil {
			return Nil(), err
		}
		return Number(fn(x, y)), nil
	}
}

func comparison(op string, fn func(x, y float64) bool) binaryFunc {
	return func(a, b LVal) (LVal, error) {
		x, y, err := numericArgs(op, a, b)
		if err != nil {
			return Nil(), err
		}
		return Bool(fn(x, y)), nil
	}
}
