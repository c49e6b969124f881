// internal/runutil/runutil.go
package runutil

import (
	"context"

	"github.com/pkg/errors"

	"pangfa-core/contract"
	"pangfa-core/gfa"
	"pangfa/internal/transform"
	"pangfa/internal/writers"
)

// Exit codes shared by every subcommand.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags/arguments, malformed input, unknown names
	ExitRuntime     = 3 // I/O failure, unresolvable mapping
	ExitInterrupted = 130
)

// UsageError marks an error caused by how the command was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a *UsageError; nil stays nil.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCode maps a run error to the process exit status. A broken pipe is
// a normal way for a downstream reader to stop us and counts as success.
func ExitCode(err error) int {
	var ue *UsageError
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, gfa.ErrFormat), errors.Is(err, gfa.ErrNotFound), errors.Is(err, transform.ErrTable):
		return ExitUsage
	case errors.Is(err, gfa.ErrIO), errors.Is(err, contract.ErrCycle):
		return ExitRuntime
	}
	return ExitRuntime
}

// EffectiveLogLevel returns the level to log at: --quiet keeps errors only.
func EffectiveLogLevel(level string, quiet bool) string {
	if quiet {
		return "error"
	}
	if level == "" {
		return "info"
	}
	return level
}
