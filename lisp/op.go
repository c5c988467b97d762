package lisp

import "github.com/tilisp/tilisp/symbol"

// specialOp is a syntactic form evaluated by its own rule instead of by
// evaluating operands and applying a procedure.
type specialOp struct {
	name  string
	nargs int
	fn    func(env *LEnv, args []LVal) (LVal, error)
}

// specialOps is keyed by the symbol at the head of a form.  Special forms are
// recognized before variable lookup, so a binding cannot shadow them.
var specialOps map[symbol.ID]*specialOp

func init() {
	specialOps = map[symbol.ID]*specialOp{
		symDefine: {DefineSymbol, 2, opDefine},
		symQuote:  {QuoteSymbol, 1, opQuote},
		symIf:     {IfSymbol, 3, opIf},
		symLambda: {LambdaSymbol, 2, opLambda},
	}
}

// (define name expr)
func opDefine(env *LEnv, args []LVal) (LVal, error) {
	name, ok := GetSymbol(args[0])
	if !ok {
		return Nil(), typeErrorf(DefineSymbol, "first operand is not a symbol: %v", args[0].Type)
	}
	v, err := env.eval(args[1])
	if err != nil {
		return Nil(), err
	}
	if proc, ok := GetProc(v); ok && !proc.IsPrimitive() && proc.name == "" {
		proc.name = name.String()
	}
	env.Define(name, v)
	env.Runtime.Logger.Printf("define %s", name.String())
	return args[0], nil
}

// (quote expr)
func opQuote(env *LEnv, args []LVal) (LVal, error) {
	return args[0], nil
}

// (if test-form then-form else-form)
func opIf(env *LEnv, args []LVal) (LVal, error) {
	test, err := env.eval(args[0])
	if err != nil {
		return Nil(), err
	}
	if IsTrue(test) {
		return env.eval(args[1])
	}
	return env.eval(args[2])
}

// (lambda (formal ...) body)
func opLambda(env *LEnv, args []LVal) (LVal, error) {
	formals, ok := ListSlice(args[0])
	if !ok {
		return Nil(), typeErrorf(LambdaSymbol, "formal parameters are not a list: %v", args[0].Type)
	}
	ids := make([]symbol.ID, len(formals))
	for i, v := range formals {
		id, ok := GetSymbol(v)
		if !ok {
			return Nil(), typeErrorf(LambdaSymbol, "formal parameter is not a symbol: %s", Print(v))
		}
		ids[i] = id
	}
	return Lambda(ids, args[1], env, env.Runtime.ClosureFrames), nil
}
