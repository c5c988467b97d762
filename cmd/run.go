package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilisp/tilisp/lisp"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.
Evaluation stops at the first error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcs, err := runReadSources(args)
		if err != nil {
			return err
		}
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		env, err := newEnv(c, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		for _, src := range srcs {
			err := runSource(env, src, cmd.OutOrStdout())
			if err != nil {
				var evalErr *lisp.EvalError
				if errors.As(err, &evalErr) {
					evalErr.Stack.DebugPrint(env.Runtime.Stderr)
				}
				return err
			}
		}
		return nil
	},
}

type runSourceText struct {
	name string
	text string
}

func runReadSources(args []string) ([]runSourceText, error) {
	srcs := make([]runSourceText, len(args))
	if runExpression {
		for i := range args {
			srcs[i] = runSourceText{fmt.Sprintf("expression%d", i+1), args[i]}
		}
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = runSourceText{path, string(b)}
	}
	return srcs, nil
}

// runSource reads src with the environment's Reader, the same path used by
// LEnv.Load, and evaluates each expression in turn.
func runSource(env *lisp.LEnv, src runSourceText, w io.Writer) error {
	exprs, err := env.Runtime.Reader.Read(src.name, strings.NewReader(src.text))
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v, err := env.Eval(expr)
		if err != nil {
			return err
		}
		if runPrint {
			fmt.Fprintln(w, lisp.Print(v))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
