// Package appshell wires a command's Run function to the process: signals,
// os.Args and the exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitInterrupted is returned when a run is cut short by SIGINT/SIGTERM.
const ExitInterrupted = 130

func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	code := Normalize(ctx, run(ctx, argv, os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}

// Normalize maps a clean exit of a cancelled run to ExitInterrupted.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return ExitInterrupted
	}
	return code
}
