// Package config loads the command line tool's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tilisp/tilisp/lisp"
)

// DefaultFile is the configuration file used when none is given, relative to
// the user's home directory.
const DefaultFile = ".tilisp.yaml"

// Config holds REPL and evaluator settings.  Every key in the file is
// optional.
type Config struct {
	// Prompt is displayed when the REPL waits for a new expression.
	Prompt string `yaml:"prompt"`
	// History is the path of the history database.  An empty path disables
	// persistent history.
	History string `yaml:"history"`
	// HistorySize is the number of entries loaded into the line editor.
	HistorySize int `yaml:"history_size"`
	// MaxDepth bounds the call stack.  It must be positive.
	MaxDepth int `yaml:"max_depth"`
	// SharedFrames makes closures reuse one parameter frame for every
	// call.
	SharedFrames bool `yaml:"shared_frames"`
}

// Default returns the configuration used in the absence of a file.
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		History:     "~/.tilisp_history.db",
		HistorySize: 500,
		MaxDepth:    lisp.DefaultMaxHeight,
	}
}

// DefaultPath returns the path of the configuration file in the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFile
	}
	return filepath.Join(home, DefaultFile)
}

// Load reads the configuration file at path over the defaults.  A missing
// file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(ExpandHome(path))
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	err = yaml.Unmarshal(b, c)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate returns an error if c holds a value the evaluator cannot run with.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive (got %d)", c.MaxDepth)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative (got %d)", c.HistorySize)
	}
	return nil
}

// HistoryPath returns the expanded history path, or an empty string if
// history is disabled.
func (c *Config) HistoryPath() string {
	return ExpandHome(c.History)
}

// FramePolicy returns the closure frame policy selected by c.
func (c *Config) FramePolicy() lisp.FramePolicy {
	if c.SharedFrames {
		return lisp.FrameShared
	}
	return lisp.FrameFresh
}

// LispConfig returns the evaluator configuration described by c.
func (c *Config) LispConfig() []lisp.Config {
	return []lisp.Config{
		lisp.WithMaximumStackHeight(c.MaxDepth),
		lisp.WithClosureFrames(c.FramePolicy()),
	}
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
