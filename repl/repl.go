// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/tilisp/tilisp/history"
	"github.com/tilisp/tilisp/internal/logutil"
	"github.com/tilisp/tilisp/lisp"
	"github.com/tilisp/tilisp/parser/rdparser"
)

var logger = logutil.GetLogger("[repl] ")

// Options controls a REPL session.
type Options struct {
	// Prompt is displayed before each new expression.  Continuation lines
	// get a blank prompt of the same width.
	Prompt string
	// History stores complete inputs.  History may be nil.
	History *history.Store
	// HistorySize is the number of stored entries preloaded into the line
	// editor.
	HistorySize int
	Stdout      io.Writer
	Stderr      io.Writer
}

func (opts *Options) stdout() io.Writer {
	if opts.Stdout == nil {
		return os.Stdout
	}
	return opts.Stdout
}

func (opts *Options) stderr() io.Writer {
	if opts.Stderr == nil {
		return os.Stderr
	}
	return opts.Stderr
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// session evaluates complete inputs in env and reports the results.
type session struct {
	env    *lisp.LEnv
	parser *rdparser.Interactive
	opts   *Options
	// saved is called with every complete input.
	saved func(input string)
}

func newSession(env *lisp.LEnv, opts *Options) *session {
	return &session{
		env:    env,
		parser: rdparser.NewInteractive("stdin"),
		opts:   opts,
	}
}

func (s *session) handleLine(line string) {
	exprs, err := s.parser.Feed(line)
	if input := s.parser.Input(); input != "" {
		s.save(input)
	}
	if err != nil {
		errln(s.opts.stderr(), err)
		return
	}
	for _, expr := range exprs {
		v, err := s.env.Eval(expr)
		if err != nil {
			errln(s.opts.stderr(), err)
			s.env.Runtime.Stack.Reset()
			return
		}
		fmt.Fprintln(s.opts.stdout(), lisp.Print(v))
	}
}

func (s *session) save(input string) {
	if s.saved != nil {
		s.saved(input)
	}
	if s.opts.History == nil {
		return
	}
	_, err := s.opts.History.Add(input)
	if err != nil {
		logger.Printf("failed to save history: %v", err)
	}
}

// finish reports input left incomplete at the end of the stream.
func (s *session) finish() {
	if s.parser.IsParsing() {
		errln(s.opts.stderr(), "error: incomplete expression discarded at end of input")
		s.parser.Reset()
	}
}

// RunStream evaluates lines read from r without prompting.  Each result is
// printed to opts.Stdout and each error to opts.Stderr.  Errors do not stop
// the loop.
func RunStream(env *lisp.LEnv, r io.Reader, opts Options) error {
	s := newSession(env, &opts)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.handleLine(scanner.Text())
	}
	s.finish()
	return scanner.Err()
}

// RunRepl runs an interactive session on the terminal using a line editor.
func RunRepl(env *lisp.LEnv, opts Options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 opts.Prompt,
		HistoryLimit:           opts.HistorySize,
		DisableAutoSaveHistory: true,
		Stdout:                 opts.Stdout,
		Stderr:                 opts.Stderr,
	})
	if err != nil {
		return fmt.Errorf("line editor: %w", err)
	}
	defer rl.Close()

	loadHistory(rl, opts.History, opts.HistorySize)

	s := newSession(env, &opts)
	s.saved = func(input string) {
		err := rl.SaveHistory(input)
		if err != nil {
			logger.Printf("failed to add line editor history: %v", err)
		}
	}
	for {
		rl.SetPrompt(s.parser.Prompt(opts.Prompt))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			s.parser.Reset()
			continue
		}
		if err == io.EOF {
			s.finish()
			return nil
		}
		if err != nil {
			return err
		}
		s.handleLine(line)
	}
}

func loadHistory(rl *readline.Instance, store *history.Store, n int) {
	if store == nil || n <= 0 {
		return
	}
	entries, err := store.Last(n)
	if err != nil {
		logger.Printf("failed to load history: %v", err)
		return
	}
	for _, entry := range entries {
		err := rl.SaveHistory(entry.Text)
		if err != nil {
			logger.Printf("failed to load history entry %d: %v", entry.Seq, err)
			return
		}
	}
	logger.Printf("loaded %d history entries", len(entries))
}

func errln(w io.Writer, v ...interface{}) {
	if len(v) > 0 {
		if _, ok := v[0].(error); ok {
			v = append([]interface{}{"error:"}, v...)
		}
	}
	fmt.Fprintln(w, v...)
}
