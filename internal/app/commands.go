// internal/app/commands.go
package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pangfa-core/contract"
	"pangfa-core/gfa"
	"pangfa/internal/cli"
	"pangfa/internal/config"
	"pangfa/internal/pipeline"
	"pangfa/internal/report"
	"pangfa/internal/rgfa"
	"pangfa/internal/runutil"
	"pangfa/internal/transform"
	"pangfa/internal/writers"
)

const inputArg = "<graph.gfa | ->"

func newSpuriousCmd(s *session) *cobra.Command {
	var o cli.Spurious
	cmd := &cobra.Command{
		Use:   "spurious " + inputArg,
		Short: "Contract spurious breakpoints",
		Long: `Merge chains of segments joined by an unbranched link into single
segments, then rewrite links, paths and walks to the merged ids. The
smallest id of a chain survives.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := gfa.FileSource(args[0])
			cfg := pipeline.Config{ComplementEdges: s.cfg.Contract.ComplementEdges, DryRun: o.DryRun}
			rw := s.records()
			res, err := pipeline.Contract(cmd.Context(), cfg, src, rw.Write)
			if err != nil {
				return err
			}
			s.logPlan(res)
			if o.DryRun {
				if err := s.writePlan(res.Plan); err != nil {
					return err
				}
			}
			if o.Report != "" {
				rep := writers.ContractionReport(src.Name(), o.DryRun, res)
				if err := writers.WriteReportFile(o.Report, rep); err != nil {
					return err
				}
				s.log.Debug("report written", zap.String("path", o.Report))
			}
			return nil
		},
	}
	cli.RegisterSpurious(cmd.Flags(), &o)
	s.bind(config.KeyComplementEdges, cmd.Flags().Lookup("complement-edges"))
	return cmd
}

func (s *session) logPlan(res *pipeline.Result) {
	p := res.Plan
	s.log.Info("contraction",
		zap.Int("records", res.Records),
		zap.Int("candidates", len(p.Candidates)),
		zap.Int("merges", len(p.Merges)),
		zap.Int("skipped", len(p.Skipped)),
		zap.Int("rounds", p.Rounds))
	for _, sk := range p.Skipped {
		s.log.Debug("candidate skipped",
			zap.Uint64("first", uint64(sk.First)),
			zap.Uint64("second", uint64(sk.Second)),
			zap.String("reason", sk.Reason))
	}
	st := res.Stats
	if st.Segments > 0 {
		s.log.Info("rewrite",
			zap.Int("segments", st.Segments),
			zap.Int("absorbed", st.AbsorbedSegments),
			zap.Int("self_links", st.SelfLinks),
			zap.Int("circular_links", st.CircularLinks),
			zap.Int("duplicate_links", st.DuplicateLinks),
			zap.Int("dropped_steps", st.DroppedSteps))
	}
	for _, name := range st.EmptyTraversals {
		s.log.Warn("traversal dropped: no steps left", zap.String("name", name))
	}
}

// writePlan prints one row per candidate with the merge outcome.
func (s *session) writePlan(p *contract.Plan) error {
	t, err := s.table()
	if err != nil {
		return err
	}
	status := make(map[contract.PairKey][]any, len(p.Candidates))
	for _, m := range p.Merges {
		status[m.Key()] = []any{m.Survivor, "merged"}
	}
	for _, sk := range p.Skipped {
		status[sk.Key()] = []any{"*", sk.Reason}
	}
	if err := t.Header("First", "Second", "Strand", "Survivor", "Status"); err != nil {
		return err
	}
	for _, c := range p.Candidates {
		row := append([]any{c.First, c.Second, c.Strand}, status[c.Key()]...)
		if err := t.Row(row...); err != nil {
			return err
		}
	}
	return t.Close()
}

// reportCmd builds a subcommand that writes one table about its input.
func reportCmd(s *session, use, short string, run func(ctx context.Context, src gfa.Source, t writers.Table) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " " + inputArg,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := s.table()
			if err != nil {
				return err
			}
			if err := run(cmd.Context(), gfa.FileSource(args[0]), t); err != nil {
				return err
			}
			return t.Close()
		},
	}
}

func newIndexCmd(s *session) *cobra.Command {
	return reportCmd(s, "index", "Report path and walk lengths by strand", report.Index)
}

func newLengthsCmd(s *session) *cobra.Command {
	return reportCmd(s, "lengths", "Report segment lengths", report.Lengths)
}

func newOffsetsCmd(s *session) *cobra.Command {
	return reportCmd(s, "offsets", "Report per-step offsets along every path", report.Offsets)
}

func newAnchorsCmd(s *session) *cobra.Command {
	var o cli.Anchors
	cmd := reportCmd(s, "anchors", "Count the paths crossing each segment",
		func(ctx context.Context, src gfa.Source, t writers.Table) error {
			return report.Anchors(ctx, src, s.cfg.Anchors.Rank, t)
		})
	cli.RegisterAnchors(cmd.Flags(), &o)
	s.bind(config.KeyAnchorRank, cmd.Flags().Lookup("anchor"))
	return cmd
}

func newShareCmd(s *session) *cobra.Command {
	var o cli.Share
	cmd := reportCmd(s, "share", "Find segments shared by some paths and avoided by others",
		func(ctx context.Context, src gfa.Source, t writers.Table) error {
			o.Sensitivity = s.cfg.Share.Sensitivity
			if err := o.Validate(); err != nil {
				return runutil.Usage(err)
			}
			opt := report.ShareOptions{Include: o.Include, Exclude: o.Exclude, Sensitivity: o.Sensitivity}
			return report.Share(ctx, src, opt, t)
		})
	cli.RegisterShare(cmd.Flags(), &o)
	s.bind(config.KeySensitivity, cmd.Flags().Lookup("sensitivity"))
	return cmd
}

func newRenameCmd(s *session) *cobra.Command {
	var o cli.Rename
	cmd := &cobra.Command{
		Use:   "rename " + inputArg,
		Short: "Rename paths from a two-column table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return runutil.Usage(err)
			}
			names, err := transform.LoadNames(o.Table)
			if err != nil {
				return err
			}
			s.log.Debug("rename table loaded", zap.Int("entries", len(names)))
			n, err := transform.Rename(cmd.Context(), gfa.FileSource(args[0]), names, s.records().Write)
			if err != nil {
				return err
			}
			s.log.Info("rename", zap.Int("records", n))
			return nil
		},
	}
	cli.RegisterRename(cmd.Flags(), &o)
	return cmd
}

func newMaskCmd(s *session) *cobra.Command {
	var o cli.Mask
	cmd := &cobra.Command{
		Use:   "mask " + inputArg,
		Short: "Remove paths and the segments only they use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return runutil.Usage(err)
			}
			st, err := transform.Mask(cmd.Context(), gfa.FileSource(args[0]), o.Paths, s.records().Write)
			if err != nil {
				return err
			}
			s.log.Info("mask",
				zap.Int("traversals", st.Traversals),
				zap.Int("segments", st.Segments),
				zap.Int("links", st.Links))
			return nil
		},
	}
	cli.RegisterMask(cmd.Flags(), &o)
	return cmd
}

func newOptimizeCmd(s *session) *cobra.Command {
	var o cli.Optimize
	cmd := &cobra.Command{
		Use:   "optimize " + inputArg,
		Short: "Renumber segments contiguously from 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err := o.Validate(); err != nil {
				return runutil.Usage(err)
			}
			fh, err := os.Create(o.MappingOut)
			if err != nil {
				return &gfa.IOError{Op: "create", Path: o.MappingOut, Err: err}
			}
			defer func() {
				if cerr := fh.Close(); cerr != nil && err == nil {
					err = &gfa.IOError{Op: "close", Path: o.MappingOut, Err: cerr}
				}
			}()
			st, err := transform.Optimize(cmd.Context(), gfa.FileSource(args[0]), fh, s.records().Write)
			if err != nil {
				return err
			}
			s.log.Info("optimize", zap.Int("segments", st.Segments), zap.Int("dropped_links", st.DroppedLinks))
			return nil
		},
	}
	cli.RegisterOptimize(cmd.Flags(), &o)
	return cmd
}

func newConcatCmd(s *session) *cobra.Command {
	var o cli.Concat
	cmd := &cobra.Command{
		Use:     "concatenate " + inputArg,
		Aliases: []string{"concat"},
		Short:   "Append a second graph with renumbered segments",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args[0]); err != nil {
				return runutil.Usage(err)
			}
			st, err := transform.Concatenate(cmd.Context(),
				gfa.FileSource(args[0]), gfa.FileSource(o.Second), s.records().Write)
			if err != nil {
				return err
			}
			s.log.Info("concatenate", zap.Int("renumbered", st.Segments), zap.Int("dropped_links", st.DroppedLinks))
			return nil
		},
	}
	cli.RegisterConcat(cmd.Flags(), &o)
	return cmd
}

func newConvertCmd(s *session) *cobra.Command {
	var o cli.Convert
	cmd := &cobra.Command{
		Use:   "convert " + inputArg,
		Short: "Convert to rGFA against a reference path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return runutil.Usage(err)
			}
			st, err := rgfa.Convert(cmd.Context(), gfa.FileSource(args[0]), o.Reference, s.records().Write)
			if err != nil {
				return err
			}
			if st.Unplaced > 0 {
				s.log.Warn("segments not reachable from the reference", zap.Int("unplaced", st.Unplaced))
			}
			s.log.Info("convert", zap.Int("placed", st.Placed))
			return nil
		},
	}
	cli.RegisterConvert(cmd.Flags(), &o)
	return cmd
}
