package lisp

import "fmt"

// ConsData is the container that backs LCons values.
type ConsData struct {
	CAR LVal
	CDR LVal
}

func makeCons(data *ConsData) LVal {
	return LVal{
		Type:   LCons,
		Native: data,
	}
}

// Cons returns a new LCons value from head and tail.  If tail is a list then
// Cons returns a list as well.  Cons does not check tail; the cons primitive
// does.
// 	(cons head tail)
func Cons(head, tail LVal) LVal {
	return makeCons(&ConsData{
		CAR: head,
		CDR: tail,
	})
}

// GetCAR returns the head of v.  GetCAR returns false if v is not LCons.
func GetCAR(v LVal) (LVal, bool) {
	if v.Type != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CAR, true
}

// GetCDR returns the tail of v.  GetCDR returns false if v is not LCons.
func GetCDR(v LVal) (LVal, bool) {
	if v.Type != LCons {
		return Nil(), false
	}
	return v.Native.(*ConsData).CDR, true
}

// Expr returns a proper list containing the elements of v.
func Expr(v ...LVal) LVal {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// IsList returns true if v is LNil or a chain of LCons cells terminated by
// LNil.
func IsList(v LVal) bool {
	_, ok := ListLen(v)
	return ok
}

// ListLen performs an efficient iteration of list v to compute its length.
// ListLen returns false if v is not a proper list.
func ListLen(v LVal) (int, bool) {
	n := 0
	for !IsNil(v) {
		if v.Type != LCons {
			return n, false
		}
		v = v.Native.(*ConsData).CDR
		n++
	}
	return n, true
}

// ListSlice collects the elements of list v into a slice.  ListSlice returns
// false if v is not a proper list.
func ListSlice(v LVal) ([]LVal, bool) {
	var s []LVal
	it := NewListIterator(v)
	for it.Next() {
		s = append(s, it.Value())
	}
	return s, it.Err() == nil
}

// ConsVal wraps LCons values and provides convenience methods.
type ConsVal struct {
	v    LVal
	data *ConsData
}

func consVal(v LVal) ConsVal {
	return ConsVal{v: v, data: v.Native.(*ConsData)}
}

// GetCons returns a ConsVal for v.
// GetCons returns false if v is not LCons.
func GetCons(v LVal) (ConsVal, bool) {
	if v.Type != LCons {
		return ConsVal{}, false
	}
	return consVal(v), true
}

// LVal returns an LVal containing the cons data.
func (v ConsVal) LVal() LVal {
	return v.v
}

// CAR returns the head of list v.
func (v ConsVal) CAR() LVal {
	return v.data.CAR
}

// CDR returns the tail of list v.
func (v ConsVal) CDR() LVal {
	return v.data.CDR
}

func (v ConsVal) equal(v2 ConsVal) bool {
	for {
		if !Equal(v.data.CAR, v2.data.CAR) {
			return false
		}
		if v.data.CDR.Type != LCons || v2.data.CDR.Type != LCons {
			return Equal(v.data.CDR, v2.data.CDR)
		}
		v, v2 = consVal(v.data.CDR), consVal(v2.data.CDR)
	}
}

// ListBuilder constructs a proper list by appending elements to its end.
type ListBuilder struct {
	front LVal
	back  *ConsData
}

// List returns a cons list with the elements appended so far.  If Append is
// called after List the value returned by List will be modified.
func (b *ListBuilder) List() LVal {
	return b.front
}

// Append adds elements to the end of the cons list.
func (b *ListBuilder) Append(v ...LVal) {
	for i := range v {
		data := &ConsData{v[i], Nil()}
		if b.back == nil {
			b.front = makeCons(data)
		} else {
			b.back.CDR = makeCons(data)
		}
		b.back = data
	}
}

// ListIterator iterates through cons lists
type ListIterator struct {
	v    LVal
	rest LVal
	err  error
}

// NewListIterator returns a ListIterator that will iterate through list v.
func NewListIterator(v LVal) *ListIterator {
	return &ListIterator{
		v:    Nil(),
		rest: v,
	}
}

// Value returns the iteration's current value.  Value will return LNil if Next
// has not been called.
func (it *ListIterator) Value() LVal {
	return it.v
}

// Rest returns any items remaining to be iterated over
func (it *ListIterator) Rest() LVal {
	return it.rest
}

// Next advances the iterator to the next list element.  Next returns false if
// iteration terminated, either because the list had no more elements or
// because an non-list value was encountered.
func (it *ListIterator) Next() bool {
	if IsNil(it.rest) || it.err != nil {
		return false
	}
	if it.rest.Type != LCons {
		it.err = fmt.Errorf("not a list: %v", it.rest.Type)
		return false
	}
	data := it.rest.Native.(*ConsData)
	it.v = data.CAR
	it.rest = data.CDR
	return true
}

// Err returns a non-nil error if the iteration encountered a non-list value
// terminating the cons chain.
func (it *ListIterator) Err() error {
	return it.err
}
