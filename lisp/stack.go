package lisp

import (
	"fmt"
	"io"
)

// DefaultMaxHeight is the default maximum height of a CallStack.
const DefaultMaxHeight = 10000

// CallStack is a procedure call stack.  Because evaluation is directly
// recursive the stack mirrors the Go stack and exists to bound recursion and
// to describe where an error happened.
type CallStack struct {
	Frames []CallFrame
	// MaxHeight is the largest number of frames the stack may hold.  A
	// non-positive MaxHeight disables the limit.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	// Name is the name of the called procedure, or "lambda" for an anonymous
	// closure.
	Name string
	// Primitive is true when the called procedure is a primitive.
	Primitive bool
}

// Copy creates a copy of the current stack so that it can be attached to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes f onto s.  Push returns a StackOverflowError and leaves s
// unchanged if the push would exceed s.MaxHeight.
func (s *CallStack) Push(f CallFrame) error {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return &StackOverflowError{Height: s.MaxHeight}
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// Pop removes the top CallFrame from the stack and returns it.  Pop panics if
// the stack is empty.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// Reset discards all frames.  It is used to recover after a top-level
// evaluation is abandoned.
func (s *CallStack) Reset() {
	for i := range s.Frames {
		s.Frames[i] = CallFrame{}
	}
	s.Frames = s.Frames[:0]
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		mod := ""
		if f.Primitive {
			mod = " [primitive]"
		}
		_n, err := fmt.Fprintf(w, "%sheight %d: %s%s\n", indent, i, f.Name, mod)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
