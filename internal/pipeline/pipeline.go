// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"pangfa-core/contract"
	"pangfa-core/gfa"
)

// Config controls a contraction run.
type Config struct {
	ComplementEdges bool // classify with implied reverse-complement edges
	DryRun          bool // stop after the first pass; nothing is emitted
}

// Result summarizes a contraction run.
type Result struct {
	Records int // records read in the first pass
	Emitted int // records passed to emit in the second pass
	Plan    *contract.Plan
	Stats   contract.RewriteStats
}

// ForEach streams the records of src to fn, checking ctx between records.
func ForEach(ctx context.Context, src gfa.Source, fn func(gfa.Record) error) error {
	return gfa.ForEach(src, func(r gfa.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(r)
	})
}

// Contract runs both passes over src and sends the rewritten records to
// emit in input order.
func Contract(ctx context.Context, cfg Config, src gfa.Source, emit func(gfa.Record) error) (*Result, error) {
	eng := contract.NewEngine(contract.Options{ComplementEdges: cfg.ComplementEdges})
	res := &Result{}

	// Pass 1: adjacency, classification, resolution, merge.
	if err := ForEach(ctx, src, func(r gfa.Record) error {
		eng.Observe(r)
		res.Records++
		return nil
	}); err != nil {
		return nil, err
	}
	plan, err := eng.Contract()
	if err != nil {
		return nil, err
	}
	res.Plan = plan
	if cfg.DryRun {
		return res, nil
	}

	// Pass 2: rewrite against the resolved mapping.
	rw, err := eng.Rewriter()
	if err != nil {
		return nil, err
	}
	seen := 0
	err = ForEach(ctx, src, func(r gfa.Record) error {
		seen++
		out, keep, err := rw.Rewrite(r)
		if err != nil || !keep {
			return err
		}
		res.Emitted++
		return emit(out)
	})
	res.Stats = rw.Stats
	if err != nil {
		return res, err
	}
	if seen != res.Records {
		return res, &gfa.IOError{Op: "reread", Path: src.Name(),
			Err: errors.Errorf("second pass read %d records, first pass %d", seen, res.Records)}
	}
	return res, nil
}
