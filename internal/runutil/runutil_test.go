package runutil

import (
	"context"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/pkg/errors"

	"pangfa-core/contract"
	"pangfa-core/gfa"
	"pangfa/internal/transform"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"epipe", &gfa.IOError{Op: "write", Err: syscall.EPIPE}, ExitOK},
		{"closed pipe", errors.Wrap(io.ErrClosedPipe, "flush"), ExitOK},
		{"cancel", errors.Wrap(context.Canceled, "pass 1"), ExitInterrupted},
		{"usage", Usage(errors.New("accepts 1 arg")), ExitUsage},
		{"format", &gfa.FormatError{Line: 2, Kind: gfa.KindLink, Reason: "x"}, ExitUsage},
		{"not found", &gfa.NotFoundError{What: "path", Name: "p"}, ExitUsage},
		{"table", &transform.TableError{Path: "names.tsv", Line: 3, Reason: "want 2 columns"}, ExitUsage},
		{"io", &gfa.IOError{Op: "open", Path: "x", Err: os.ErrNotExist}, ExitRuntime},
		{"cycle", &contract.CycleError{ID: 4, Revisited: 4}, ExitRuntime},
		{"other", errors.New("boom"), ExitRuntime},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("%s: want %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestUsageNil(t *testing.T) {
	if Usage(nil) != nil {
		t.Fatalf("Usage(nil) must stay nil")
	}
}

func TestEffectiveLogLevel(t *testing.T) {
	if got := EffectiveLogLevel("debug", true); got != "error" {
		t.Fatalf("quiet: want error, got %s", got)
	}
	if got := EffectiveLogLevel("", false); got != "info" {
		t.Fatalf("empty: want info, got %s", got)
	}
	if got := EffectiveLogLevel("warn", false); got != "warn" {
		t.Fatalf("want warn, got %s", got)
	}
}
