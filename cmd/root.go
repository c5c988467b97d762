package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilisp/tilisp/config"
	"github.com/tilisp/tilisp/internal/logutil"
	"github.com/tilisp/tilisp/lisp"
	"github.com/tilisp/tilisp/parser"
)

var (
	cfgFile      string
	sharedFrames bool
	maxDepth     int
	logFile      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tilisp",
	Short: "A minimal lisp interpreter",
	Long: `A minimal lisp interpreter with numbers, booleans, lists, closures and
the special forms define, quote, if and lambda.

Without a subcommand an interactive session is started.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logutil.SetOutputFile(logFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "",
		"Config file (default is $HOME/"+config.DefaultFile+")")
	flags.BoolVar(&sharedFrames, "shared-frames", false,
		"Reuse one parameter frame for every call of a closure")
	flags.IntVar(&maxDepth, "max-depth", lisp.DefaultMaxHeight,
		"Maximum call stack height (must be positive)")
	flags.StringVar(&logFile, "log-file", "",
		"Append debug logs to a file")
}

// loadConfig reads the config file and overrides its values with flags given
// on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("shared-frames") {
		c.SharedFrames = sharedFrames
	}
	if flags.Changed("max-depth") {
		c.MaxDepth = maxDepth
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newEnv returns an initialized root environment for c which writes
// diagnostics to stderr.
func newEnv(c *config.Config, stderr io.Writer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	conf := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStderr(stderr),
		lisp.WithLogger(logutil.GetLogger("[lisp] ")),
	}
	conf = append(conf, c.LispConfig()...)
	err := lisp.InitializeUserEnv(env, conf...)
	if err != nil {
		return nil, err
	}
	return env, nil
}
