package lisp

import "fmt"

// SourceLocation describes a position in source text.  The parser's
// token.Location implements SourceLocation.
type SourceLocation interface {
	String() string
}

// SyntaxError is returned by a Reader when source text is malformed or
// incomplete.
type SyntaxError struct {
	Loc SourceLocation
	Msg string
	// Incomplete is true when the text ended while an expression was still
	// open.  A REPL can read more input and try again.
	Incomplete bool
}

func (err *SyntaxError) Error() string {
	if err.Loc == nil {
		return "syntax error: " + err.Msg
	}
	return fmt.Sprintf("%v: syntax error: %s", err.Loc, err.Msg)
}

// UnboundVariableError is returned when a symbol has no binding in the
// reachable environment chain.
type UnboundVariableError struct {
	Name string
}

func (err *UnboundVariableError) Error() string {
	return "unbound variable: " + err.Name
}

// TypeError is returned when a special form or primitive receives an operand
// of the wrong kind.
type TypeError struct {
	Op  string
	Msg string
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", err.Op, err.Msg)
}

func typeErrorf(op string, format string, v ...interface{}) error {
	return &TypeError{Op: op, Msg: fmt.Sprintf(format, v...)}
}

// ArityError is returned when a special form or procedure receives the wrong
// number of operands.
type ArityError struct {
	Op   string
	Want int
	Got  int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("%s: expected %d %s (got %d)", err.Op, err.Want, plural(err.Want, "operand"), err.Got)
}

func plural(n int, s string) string {
	if n == 1 {
		return s
	}
	return s + "s"
}

// StackOverflowError is returned when procedure application would grow the
// call stack past its configured maximum height.
type StackOverflowError struct {
	Height int
}

func (err *StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow: maximum stack height %d exceeded", err.Height)
}

// EvalError is the error returned by LEnv.Eval.  It wraps one of the error
// kinds above and records the call stack at the point of failure.
type EvalError struct {
	Err   error
	Stack *CallStack
}

func (err *EvalError) Error() string {
	return err.Err.Error()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}
