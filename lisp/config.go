package lisp

import (
	"io"
	"log"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// WithMaximumStackHeight returns a Config that will prevent an execution
// environment from allowing the call stack to grow beyond n frames.  A
// non-positive n removes the limit.
func WithMaximumStackHeight(n int) Config {
	return func(env *LEnv) error {
		env.Runtime.Stack.MaxHeight = n
		return nil
	}
}

// WithClosureFrames returns a Config that selects how closures bind their
// parameters.  See FramePolicy.
func WithClosureFrames(policy FramePolicy) Config {
	return func(env *LEnv) error {
		env.Runtime.ClosureFrames = policy
		return nil
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that makes the runtime log definitions and
// aborted evaluations to logger.  The default logger discards everything.
func WithLogger(logger *log.Logger) Config {
	return func(env *LEnv) error {
		env.Runtime.Logger = logger
		return nil
	}
}
