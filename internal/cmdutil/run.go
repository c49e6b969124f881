package cmdutil

import (
	"context"

	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
)

// RunStream reads src, applies visit to every record and streams the kept
// results via send. It returns the number of kept outputs and the first
// error encountered (including context cancellation).
func RunStream[T any](
	ctx context.Context,
	src gfa.Source,
	visit func(gfa.Record) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEach(ctx, src, func(r gfa.Record) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
