package lisp

import (
	"fmt"
	"math"

	"github.com/tilisp/tilisp/symbol"
)

// LType is the type tag of an LVal.
type LType uint8

// Possible LType values
const (
	// LNil is the empty list.  The zero LVal is a valid LNil value.
	LNil LType = iota
	// LSymbol is a symbolic name.
	// Schema:
	// 	Data: symbol.ID value
	LSymbol
	// LNumber is a double precision number.
	// Schema:
	// 	Data: math.Float64bits value
	LNumber
	// LBool is a truth literal.
	// Schema:
	// 	Data: 0x0 if false and 0x1 otherwise
	LBool
	// LCons is a container that forms a linked list terminated by LNil.
	// Schema:
	// 	Native: *ConsData
	LCons
	// LProc is a primitive procedure or a closure.
	// Schema:
	// 	Native: *Proc
	LProc

	numTypes
)

var typeStrings = [numTypes]string{
	LNil:    "nil",
	LSymbol: "symbol",
	LNumber: "number",
	LBool:   "boolean",
	LCons:   "pair",
	LProc:   "procedure",
}

func (t LType) String() string {
	if t >= numTypes {
		return "invalid"
	}
	return typeStrings[t]
}

// LVal is a lisp value.  The zero LVal is a valid LNil value.
type LVal struct {
	Type   LType
	Data   uint64
	Native interface{}
}

// Nil returns an LNil value, the empty list.
func Nil() LVal {
	return LVal{}
}

// IsNil returns true if v is the empty list.
func IsNil(v LVal) bool {
	return v.Type == LNil
}

// Number returns an LNumber value.
func Number(x float64) LVal {
	return LVal{
		Type: LNumber,
		Data: math.Float64bits(x),
	}
}

// GetNumber returns the float64 value from v.
// GetNumber returns false if v is not LNumber.
func GetNumber(v LVal) (float64, bool) {
	if v.Type != LNumber {
		return 0, false
	}
	return math.Float64frombits(v.Data), true
}

// Bool returns an LBool with the truth value of ok.
func Bool(ok bool) LVal {
	if ok {
		return True()
	}
	return False()
}

// True returns the #t value.
func True() LVal {
	return LVal{
		Type: LBool,
		Data: 1,
	}
}

// False returns the #f value.
func False() LVal {
	return LVal{Type: LBool}
}

// GetBool returns the truth value of v.
// GetBool returns false as its second value if v is not LBool.
func GetBool(v LVal) (bool, bool) {
	if v.Type != LBool {
		return false, false
	}
	return v.Data != 0, true
}

// IsTrue returns true iff v is any value other than #f.
func IsTrue(v LVal) bool {
	return !(v.Type == LBool && v.Data == 0)
}

// Symbol returns an LSymbol value
func Symbol(id symbol.ID) LVal {
	return LVal{
		Type: LSymbol,
		Data: uint64(id),
	}
}

// Sym interns name and returns it as an LSymbol value.
func Sym(name string) LVal {
	return Symbol(symbol.Intern(name))
}

// GetSymbol extracts the symbol.ID from v.  GetSymbol returns false if v is
// not a LSymbol.
func GetSymbol(v LVal) (symbol.ID, bool) {
	if v.Type != LSymbol {
		return 0, false
	}
	return symbol.ID(v.Data), true
}

// Equal returns true if v1 and v2 are structurally identical.  Procedures are
// only equal to themselves.
func Equal(v1 LVal, v2 LVal) bool {
	if v1.Type != v2.Type {
		return false
	}
	switch v1.Type {
	case LNil:
		return true
	case LSymbol, LBool:
		return v1.Data == v2.Data
	case LNumber:
		x1, _ := GetNumber(v1)
		x2, _ := GetNumber(v2)
		return x1 == x2
	case LCons:
		return consVal(v1).equal(consVal(v2))
	case LProc:
		return v1.Native.(*Proc) == v2.Native.(*Proc)
	default:
		return false
	}
}

// String returns the printed representation of v.
func (v LVal) String() string {
	return Print(v)
}

// GoString makes %#v output readable in test failures.
func (v LVal) GoString() string {
	return fmt.Sprintf("lisp.LVal{%v %s}", v.Type, Print(v))
}
