package domain

import (
	"fmt"
	"strings"
	"time"
)

// Command is a single external process invocation.
type Command struct {
	// Name is the executable, resolved against the overlaid PATH when not absolute.
	Name string

	// Args are the arguments passed to the executable.
	Args []string

	// Env overlays the inherited environment. Keys in Env win over the process environment,
	// except PATH, which is prepended to the inherited PATH.
	Env map[string]string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Stdin is fed to the process when non-empty.
	Stdin []byte
}

// NewCommand builds a Command from an argv slice.
func NewCommand(argv ...string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	return Command{Name: argv[0], Args: argv[1:]}
}

// String renders the command line for logs and error context, with URL credentials removed.
func (c Command) String() string {
	return StripUserinfo(strings.Join(append([]string{c.Name}, c.Args...), " "))
}

// ProcessResult is the captured outcome of a finished process.
type ProcessResult struct {
	// Output is the combined stdout and stderr.
	Output string

	// ExitCode is the process exit status, -1 when it did not exit normally.
	ExitCode int

	// Duration is the wall-clock time the process ran.
	Duration time.Duration
}

// SubprocessError is returned when an external process exits unsuccessfully.
// The captured output is the only observable contract of the failing tool.
type SubprocessError struct {
	// Output is the combined stdout and stderr of the process.
	Output string

	// Command is the invoked command line.
	Command string

	// Duration is the elapsed wall-clock time.
	Duration time.Duration

	// Exit describes how the process ended (e.g. "exit status 1", "signal: killed").
	Exit string

	// Cause is the earlier failure this one was raised while handling, if any.
	Cause error
}

// Error returns the captured output, which is what classifiers match against.
func (e *SubprocessError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Exit)
	}
	return e.Output
}

// Unwrap returns the cause.
func (e *SubprocessError) Unwrap() error {
	return e.Cause
}
