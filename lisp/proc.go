package lisp

import "github.com/tilisp/tilisp/symbol"

// Proc is the data behind LProc values.  A Proc is either a primitive,
// identified by a PrimitiveID, or a closure.
type Proc struct {
	prim PrimitiveID
	// closure is false for primitives, in which case the remaining fields
	// are unused.
	closure bool
	name    string
	// shared is true if the closure binds its parameters directly in Env
	// (FrameShared).  Otherwise each application extends Env.
	shared  bool
	Formals []symbol.ID
	Body    LVal
	Env     *LEnv
}

// Primitive returns an LProc value for the primitive procedure id.
func Primitive(id PrimitiveID) LVal {
	return LVal{
		Type:   LProc,
		Native: &Proc{prim: id},
	}
}

// Lambda returns an anonymous closure with the given formal parameters and
// body expression.  Env is the environment the closure was created in; how it
// is used to bind parameters is determined by policy.
func Lambda(formals []symbol.ID, body LVal, env *LEnv, policy FramePolicy) LVal {
	proc := &Proc{
		closure: true,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
	if policy == FrameShared {
		proc.shared = true
		proc.Env = NewEnv(env)
	}
	return LVal{
		Type:   LProc,
		Native: proc,
	}
}

// GetProc extracts the Proc from v.  GetProc returns false if v is not LProc.
func GetProc(v LVal) (*Proc, bool) {
	if v.Type != LProc {
		return nil, false
	}
	return v.Native.(*Proc), true
}

// IsPrimitive returns true if p is a primitive procedure.
func (p *Proc) IsPrimitive() bool {
	return !p.closure
}

// PrimitiveID returns the identifier of a primitive procedure.  PrimitiveID
// returns false if p is a closure.
func (p *Proc) PrimitiveID() (PrimitiveID, bool) {
	return p.prim, !p.closure
}

// Name returns the name of p.  Closures are named by the first define that
// binds them, or "lambda" if they were never bound.
func (p *Proc) Name() string {
	if !p.closure {
		return p.prim.String()
	}
	if p.name == "" {
		return LambdaSymbol
	}
	return p.name
}

// Arity returns the number of operands p must be applied to.
func (p *Proc) Arity() int {
	if !p.closure {
		return primitives[p.prim].arity()
	}
	return len(p.Formals)
}

// frame returns the environment in which the closure body is evaluated for an
// application to args.
func (p *Proc) frame(args []LVal) (*LEnv, error) {
	if p.shared {
		err := p.Env.bindAll(p.Name(), p.Formals, args)
		if err != nil {
			return nil, err
		}
		return p.Env, nil
	}
	return p.Env.Extend(p.Formals, args)
}
