// Package lisptest runs table driven tests of lisp source text.
package lisptest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tilisp/tilisp/lisp"
	"github.com/tilisp/tilisp/parser"
	"github.com/tilisp/tilisp/parser/rdparser"
)

// Runner is a test runner.
type Runner struct {
	// Config is applied to every test environment after the reader is set.
	Config []lisp.Config
}

// NewEnv returns a new, isolated root environment with the primitive
// procedures bound.
func (r *Runner) NewEnv() (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	conf := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, r.Config...)
	err := lisp.InitializeUserEnv(env, conf...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

// RunTestFile loads the file at path in a new environment and checks the
// printed value of its last expression against result.
func (r *Runner) RunTestFile(t *testing.T, path string, result string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	env, err := r.NewEnv()
	if err != nil {
		t.Error(err)
		return
	}
	v, err := env.Load(filepath.Base(path), bytes.NewReader(source))
	if err != nil {
		t.Errorf("%s: %v", path, err)
		if stack := errorStack(err); stack != nil {
			var buf bytes.Buffer
			stack.DebugPrint(&buf)
			t.Error(buf.String())
		}
		return
	}
	if lisp.Print(v) != result {
		t.Errorf("%s: expected result %s (got %s)", path, result, lisp.Print(v))
	}
}

// Run runs tests in isolated environments created by r.
func (r *Runner) Run(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := r.NewEnv()
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			v, err := rdparser.New(test.Name, expr.Expr).ParseProgram()
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: more than one expression parsed (%d)", i, test.Name, j, len(v))
				continue
			}
			result := evalString(env, v[0])
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// evalString returns the printed value of expr, or the error message if
// evaluation fails.
func evalString(env *lisp.LEnv, expr lisp.LVal) string {
	v, err := env.Eval(expr)
	if err != nil {
		return err.Error()
	}
	return lisp.Print(v)
}

func errorStack(err error) *lisp.CallStack {
	evalErr, ok := err.(*lisp.EvalError)
	if !ok {
		return nil
	}
	return evalErr.Stack
}

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result, or the error message
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	var r Runner
	r.Run(t, tests)
}
