package appshell

import (
	"context"
	"testing"
)

func TestNormalize(t *testing.T) {
	if got := Normalize(context.Background(), 0); got != 0 {
		t.Fatalf("live context: want 0, got %d", got)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := Normalize(ctx, 0); got != ExitInterrupted {
		t.Fatalf("cancelled: want %d, got %d", ExitInterrupted, got)
	}
	if got := Normalize(ctx, 3); got != 3 {
		t.Fatalf("cancelled with error code: want 3, got %d", got)
	}
}
