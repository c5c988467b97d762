package lisp

import "errors"

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Any error returned is an *EvalError wrapping one of the package's
// error kinds.
func (env *LEnv) Eval(v LVal) (LVal, error) {
	result, err := env.eval(v)
	if err != nil {
		return Nil(), env.Runtime.annotate(err)
	}
	return result, nil
}

func (env *LEnv) eval(v LVal) (LVal, error) {
	switch v.Type {
	case LSymbol:
		id, _ := GetSymbol(v)
		val, ok := env.Lookup(id)
		if !ok {
			return Nil(), &UnboundVariableError{Name: id.String()}
		}
		return val, nil
	case LNil, LNumber, LBool, LProc:
		return v, nil
	case LCons:
		return env.evalCons(consVal(v))
	default:
		return Nil(), typeErrorf("eval", "cannot evaluate value of type %v", v.Type)
	}
}

// evalCons evaluates the non-empty list expr, either as a special form or as
// a procedure application.
func (env *LEnv) evalCons(expr ConsVal) (LVal, error) {
	if id, ok := GetSymbol(expr.CAR()); ok {
		if op, ok := specialOps[id]; ok {
			args, ok := ListSlice(expr.CDR())
			if !ok {
				return Nil(), typeErrorf(op.name, "operands do not form a list")
			}
			if len(args) != op.nargs {
				return Nil(), &ArityError{Op: op.name, Want: op.nargs, Got: len(args)}
			}
			return op.fn(env, args)
		}
	}
	f, err := env.eval(expr.CAR())
	if err != nil {
		return Nil(), err
	}
	proc, ok := GetProc(f)
	if !ok {
		return Nil(), typeErrorf("apply", "not a procedure: %s", Print(f))
	}
	operands, ok := ListSlice(expr.CDR())
	if !ok {
		return Nil(), typeErrorf(proc.Name(), "operands do not form a list")
	}
	return env.apply(proc, operands)
}

// apply evaluates operands in env, left to right, and invokes proc with the
// results.
func (env *LEnv) apply(proc *Proc, operands []LVal) (LVal, error) {
	if len(operands) != proc.Arity() {
		return Nil(), &ArityError{Op: proc.Name(), Want: proc.Arity(), Got: len(operands)}
	}
	args := make([]LVal, len(operands))
	for i := range operands {
		var err error
		args[i], err = env.eval(operands[i])
		if err != nil {
			return Nil(), err
		}
	}

	stack := env.Runtime.Stack
	err := stack.Push(CallFrame{Name: proc.Name(), Primitive: proc.IsPrimitive()})
	if err != nil {
		env.Runtime.Logger.Printf("aborting evaluation: %v", err)
		return Nil(), env.Runtime.annotate(err)
	}
	defer stack.Pop()

	var result LVal
	if proc.IsPrimitive() {
		result, err = primitives[proc.prim].call(args)
	} else {
		var frame *LEnv
		frame, err = proc.frame(args)
		if err == nil {
			result, err = frame.eval(proc.Body)
		}
	}
	if err != nil {
		return Nil(), env.Runtime.annotate(err)
	}
	return result, nil
}

// annotate wraps err in an EvalError recording the current call stack unless
// err already carries a stack from a deeper frame.
func (r *Runtime) annotate(err error) error {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvalError{Err: err, Stack: r.Stack.Copy()}
}
