package lisp

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tilisp/tilisp/symbol"
)

// FramePolicy determines where a closure binds its parameters when it is
// applied.
type FramePolicy uint8

const (
	// FrameFresh binds parameters in a new frame for every application.  The
	// new frame's parent is the frame in which the lambda was evaluated.
	FrameFresh FramePolicy = iota
	// FrameShared creates one frame when the lambda is evaluated and binds
	// the parameters of every application into that same frame.  Recursive
	// and re-entrant calls overwrite each other's parameters.  It exists for
	// compatibility with programs written against interpreters that behave
	// this way.
	FrameShared
)

func (p FramePolicy) String() string {
	switch p {
	case FrameFresh:
		return "fresh"
	case FrameShared:
		return "shared"
	default:
		return fmt.Sprintf("FramePolicy(%d)", uint8(p))
	}
}

// Runtime is the state shared by every environment descending from a root
// environment.
type Runtime struct {
	Reader        Reader
	Stack         *CallStack
	Stderr        io.Writer
	Logger        *log.Logger
	ClosureFrames FramePolicy
}

// StandardRuntime returns a new Runtime with a bounded call stack, output to
// os.Stderr and a logger that discards its output.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{MaxHeight: DefaultMaxHeight},
		Stderr: os.Stderr,
		Logger: log.New(io.Discard, "[lisp] ", 0),
	}
}

// LEnv is a lexical environment frame.  LEnv contains local symbol bindings
// and a parent environment.  LEnv is in the scope of its parent's bindings.
// Parents are shared; any number of closures may reference the same frame.
type LEnv struct {
	parent   *LEnv
	root     *LEnv
	bindings bindings
	Runtime  *Runtime
}

// NewEnv returns a new, empty environment.  If parent is nil a root LEnv with
// a StandardRuntime will be returned.  Otherwise the returned environment
// shares the runtime of parent.
func NewEnv(parent *LEnv) *LEnv {
	env := &LEnv{parent: parent}
	if parent != nil {
		env.root = parent.Root()
		env.Runtime = parent.Runtime
	} else {
		env.Runtime = StandardRuntime()
	}
	return env
}

// InitializeUserEnv binds the primitive procedures in env and applies config
// to it.  Env should be a root environment.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	for id := PrimitiveID(0); id < numPrimitives; id++ {
		env.Define(symbol.Intern(id.String()), Primitive(id))
	}
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}

// Parent returns the enclosing environment of env, or nil if env is a root.
func (env *LEnv) Parent() *LEnv {
	return env.parent
}

// Root returns the global environment env descends from.
func (env *LEnv) Root() *LEnv {
	if env.root != nil {
		return env.root
	}
	return env
}

// Len returns the number of local binding entries in env, including entries
// shadowed by a later definition of the same name.
func (env *LEnv) Len() int {
	return len(env.bindings.pairs)
}

// Define binds id to v in env as its newest entry.  Define does not look at
// enclosing environments.  An earlier binding of id in env is shadowed, not
// overwritten.
func (env *LEnv) Define(id symbol.ID, v LVal) {
	env.bindings.add(id, v)
}

// Lookup returns the value bound to id, searching env's entries newest-first
// and then each enclosing environment out to the root.
func (env *LEnv) Lookup(id symbol.ID) (LVal, bool) {
	for e := env; e != nil; e = e.parent {
		v, ok := e.bindings.get(id)
		if ok {
			return v, true
		}
	}
	return Nil(), false
}

// Extend returns a new child of env that binds each name in formals to the
// corresponding element of args.
func (env *LEnv) Extend(formals []symbol.ID, args []LVal) (*LEnv, error) {
	child := NewEnv(env)
	err := child.bindAll("lambda", formals, args)
	if err != nil {
		return nil, err
	}
	return child, nil
}

func (env *LEnv) bindAll(op string, formals []symbol.ID, args []LVal) error {
	if len(formals) != len(args) {
		return &ArityError{Op: op, Want: len(formals), Got: len(args)}
	}
	for i := range formals {
		env.Define(formals[i], args[i])
	}
	return nil
}

// Load reads every expression in r using the runtime's Reader and evaluates
// them in order in env.  Load returns the value of the last expression, or
// the empty list if there were none.
func (env *LEnv) Load(name string, r io.Reader) (LVal, error) {
	if env.Runtime.Reader == nil {
		return Nil(), fmt.Errorf("no reader for the environment runtime")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return Nil(), err
	}
	result := Nil()
	for _, expr := range exprs {
		result, err = env.Eval(expr)
		if err != nil {
			return Nil(), err
		}
	}
	return result, nil
}

// LoadString is like Load but reads expressions from source.
func (env *LEnv) LoadString(name string, source string) (LVal, error) {
	return env.Load(name, strings.NewReader(source))
}

type bindingPair struct {
	name  symbol.ID
	value LVal
}

// bindings is an append-only sequence of entries with an index of the newest
// entry for each name.
type bindings struct {
	pairs []bindingPair
	index map[symbol.ID]int
}

func (s *bindings) add(name symbol.ID, v LVal) {
	if s.index == nil {
		s.index = make(map[symbol.ID]int)
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{name, v})
}

func (s *bindings) get(name symbol.ID) (LVal, bool) {
	i, ok := s.index[name]
	if !ok {
		return Nil(), false
	}
	return s.pairs[i].value, true
}
