package lisptest

import (
	"testing"

	"github.com/tilisp/tilisp/lisp"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"closures", TestSequence{
			{"(define f (lambda (x) (lambda (y) (+ x y))))", "f"},
			{"((f 4) 3)", "7"},
			{"(define add10 (f 10))", "add10"},
			{"(add10 1)", "11"},
			{"((f 4) 3)", "7"},
			{"(add10 2)", "12"},
			{"x", "unbound variable: x"},
		}},
		{"lexical scope", TestSequence{
			{"(define x 1)", "x"},
			{"(define get-x (lambda () x))", "get-x"},
			{"(define shadow (lambda (x) (get-x)))", "shadow"},
			{"(shadow 2)", "1"},
			{"(define x 3)", "x"},
			{"(get-x)", "3"},
		}},
		{"local define", TestSequence{
			{"(define g (lambda (n) ((lambda (ignored) local) (define local (* n 2)))))", "g"},
			{"(g 4)", "8"},
			{"local", "unbound variable: local"},
		}},
		{"recursion", TestSequence{
			{"(define fact (lambda (n) (if (< n 2) 1 (* n (fact (- n 1))))))", "fact"},
			{"(fact 10)", "3628800"},
			{"(define sum (lambda (n) (if (< n 1) 0 (+ (sum (- n 1)) n))))", "sum"},
			{"(sum 4)", "10"},
		}},
		{"higher order", TestSequence{
			{"(define twice (lambda (f) (lambda (x) (f (f x)))))", "twice"},
			{"((twice (lambda (x) (* x x))) 3)", "81"},
		}},
	}
	RunTestSuite(t, tests)
}

func TestSharedFrames(t *testing.T) {
	r := &Runner{Config: []lisp.Config{lisp.WithClosureFrames(lisp.FrameShared)}}
	r.Run(t, TestSuite{
		{"shared frame aliasing", TestSequence{
			{"(define sum (lambda (n) (if (< n 1) 0 (+ (sum (- n 1)) n))))", "sum"},
			{"(sum 4)", "0"},
			{"(define sum2 (lambda (n) (if (< n 1) 0 (+ n (sum2 (- n 1))))))", "sum2"},
			{"(sum2 4)", "10"},
		}},
		{"shared frame closures", TestSequence{
			{"(define f (lambda (x) (lambda (y) (+ x y))))", "f"},
			{"((f 4) 3)", "7"},
			{"(define add10 (f 10))", "add10"},
			{"(define add1 (f 1))", "add1"},
			{"(add10 1)", "2"},
		}},
	})
}

func TestStackBound(t *testing.T) {
	r := &Runner{Config: []lisp.Config{lisp.WithMaximumStackHeight(100)}}
	r.Run(t, TestSuite{
		{"overflow", TestSequence{
			{"(define loop (lambda (n) (loop (+ n 1))))", "loop"},
			{"(loop 0)", "stack overflow: maximum stack height 100 exceeded"},
			{"(+ 1 1)", "2"},
		}},
	})
}
