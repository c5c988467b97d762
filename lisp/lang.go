package lisp

import "github.com/tilisp/tilisp/symbol"

// Names of the special forms.
const (
	DefineSymbol = "define"
	QuoteSymbol  = "quote"
	IfSymbol     = "if"
	LambdaSymbol = "lambda"
)

// NilSymbol is the literal that reads as the empty list.
const NilSymbol = "nil"

var specialSymbols = symbol.InternAll(
	DefineSymbol,
	QuoteSymbol,
	IfSymbol,
	LambdaSymbol,
)

var (
	symDefine = specialSymbols[0]
	symQuote  = specialSymbols[1]
	symIf     = specialSymbols[2]
	symLambda = specialSymbols[3]
)

// Quote returns the expression (quote v).
func Quote(v LVal) LVal {
	return Expr(Symbol(symQuote), v)
}
