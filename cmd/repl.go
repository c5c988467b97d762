package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilisp/tilisp/history"
	"github.com/tilisp/tilisp/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  When standard input is a terminal lines
are edited with a line editor and inputs are saved in the history database.
Otherwise lines are read from standard input without prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func runRepl(cmd *cobra.Command) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	env, err := newEnv(c, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := repl.Options{
		Prompt:      c.Prompt,
		HistorySize: c.HistorySize,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}
	if !repl.IsTerminal(os.Stdin) {
		return repl.RunStream(env, cmd.InOrStdin(), opts)
	}
	if path := c.HistoryPath(); path != "" {
		store, err := history.Open(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: history disabled:", err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}
	return repl.RunRepl(env, opts)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
