// internal/cli/options.go
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Global holds flags shared by every subcommand.
type Global struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Quiet      bool
	Pretty     bool
}

func RegisterGlobal(fs *pflag.FlagSet, o *Global) {
	fs.StringVar(&o.ConfigFile, "config", "", "YAML config file (env PANGFA_* overrides it)")
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	fs.StringVar(&o.LogFormat, "log-format", "console", "log format: console | json")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVar(&o.Pretty, "pretty", false, "render reports as aligned tables instead of TSV")
}

// Spurious configures breakpoint contraction.
type Spurious struct {
	DryRun          bool
	Report          string
	ComplementEdges bool
}

func RegisterSpurious(fs *pflag.FlagSet, o *Spurious) {
	fs.BoolVarP(&o.DryRun, "dry-run", "n", false, "list contraction candidates instead of rewriting the graph")
	fs.StringVar(&o.Report, "report", "", "write a contraction report (.json, .yaml or .yml)")
	fs.BoolVar(&o.ComplementEdges, "complement-edges", false, "also treat every link as its reverse-complement edge when classifying")
}

// Anchors configures the anchor report. Rank < 0 disables the filter.
type Anchors struct {
	Rank int
}

func RegisterAnchors(fs *pflag.FlagSet, o *Anchors) {
	fs.IntVarP(&o.Rank, "anchor", "a", -1, "only report nodes within N of the highest rank (-1 = all)")
}

// Share configures the shared-node report.
type Share struct {
	Include     []string
	Exclude     []string
	Sensitivity float64
}

func RegisterShare(fs *pflag.FlagSet, o *Share) {
	fs.StringSliceVarP(&o.Include, "include", "i", nil, "paths a node must be crossed by (repeatable)")
	fs.StringSliceVarP(&o.Exclude, "exclude", "e", nil, "paths a node must avoid (repeatable)")
	fs.Float64VarP(&o.Sensitivity, "sensitivity", "s", 1.0, "required include ratio; 1-s is the tolerated exclude ratio")
}

func (o Share) Validate() error {
	if len(o.Include) == 0 && len(o.Exclude) == 0 {
		return errors.New("provide at least one --include or --exclude path")
	}
	if o.Sensitivity < 0 || o.Sensitivity > 1 {
		return errors.Errorf("--sensitivity must be within [0, 1], got %g", o.Sensitivity)
	}
	return nil
}

// Rename configures path renaming.
type Rename struct {
	Table string
}

func RegisterRename(fs *pflag.FlagSet, o *Rename) {
	fs.StringVarP(&o.Table, "rename", "r", "", "two-column TSV: old path name, new path name [*]")
}

func (o Rename) Validate() error {
	if o.Table == "" {
		return errors.New("--rename is required")
	}
	return nil
}

// Mask configures traversal masking.
type Mask struct {
	Paths []string
}

func RegisterMask(fs *pflag.FlagSet, o *Mask) {
	fs.StringSliceVarP(&o.Paths, "mask", "M", nil, "path or walk (sample#hap#seqid) to remove (repeatable) [*]")
}

func (o Mask) Validate() error {
	if len(o.Paths) == 0 {
		return errors.New("at least one --mask path is required")
	}
	return nil
}

// Optimize configures id compaction.
type Optimize struct {
	MappingOut string
}

func RegisterOptimize(fs *pflag.FlagSet, o *Optimize) {
	fs.StringVarP(&o.MappingOut, "optimize", "O", "", "file receiving the old\\tnew id mapping [*]")
}

func (o Optimize) Validate() error {
	if o.MappingOut == "" {
		return errors.New("--optimize is required")
	}
	return nil
}

// Concat configures graph concatenation.
type Concat struct {
	Second string
}

func RegisterConcat(fs *pflag.FlagSet, o *Concat) {
	fs.StringVarP(&o.Second, "concat", "c", "", "GFA file appended after the input [*]")
}

func (o Concat) Validate(input string) error {
	if o.Second == "" {
		return errors.New("--concat is required")
	}
	if o.Second == "-" && input == "-" {
		return errors.New("stdin can be read only once")
	}
	return nil
}

// Convert configures rGFA conversion.
type Convert struct {
	Reference string
}

func RegisterConvert(fs *pflag.FlagSet, o *Convert) {
	fs.StringVarP(&o.Reference, "rgfa", "R", "", "reference path (rank 0) [*]")
}

func (o Convert) Validate() error {
	if o.Reference == "" {
		return errors.New("--rgfa reference path is required")
	}
	return nil
}
