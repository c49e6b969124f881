// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"pangfa-core/gfa"
	"pangfa/internal/cli"
	"pangfa/internal/cmdutil"
	"pangfa/internal/config"
	"pangfa/internal/runutil"
	"pangfa/internal/version"
	"pangfa/internal/writers"
)

// session carries what every subcommand of one run shares.
type session struct {
	out    *bufio.Writer
	stderr io.Writer
	v      *viper.Viper
	global cli.Global
	cfg    *config.Config
	log    *zap.Logger
	rw     *writers.RecordWriter
	ran    bool // set once argument parsing is over
}

// RunContext executes one pangfa invocation and returns its exit status.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	s := &session{out: outw, stderr: stderr, v: config.NewViper(), log: zap.NewNop()}

	root := newRoot(s)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(parent)
	if s.rw != nil && err == nil {
		s.log.Debug("records written", zap.Int("count", s.rw.Count()))
	}
	if ferr := writers.IgnoreBrokenPipe(outw.Flush()); err == nil && ferr != nil {
		err = &gfa.IOError{Op: "write", Path: "-", Err: ferr}
	}
	if err != nil && !s.ran {
		err = runutil.Usage(err)
	}
	code := runutil.ExitCode(err)
	if err != nil && code != runutil.ExitOK {
		_, _ = fmt.Fprintf(stderr, "pangfa: %v\n", err)
		var ue *runutil.UsageError
		if errors.As(err, &ue) && cmd != nil {
			_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	_ = s.log.Sync()
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRoot(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "pangfa",
		Short: "Pangenome GFA toolkit",
		Long: `pangfa rewrites and reports on GFA pangenome graphs.

'pangfa spurious' contracts spurious breakpoints: chains of segments that
are always traversed together are merged into one segment, and links,
paths and walks are rewritten to match. The other subcommands report on
or transform paths and segments. Inputs may be plain or gzip-compressed;
'-' reads stdin.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s.ran = true
			return s.setup()
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return runutil.Usage(err) })

	pf := root.PersistentFlags()
	cli.RegisterGlobal(pf, &s.global)
	s.bind(config.KeyLogLevel, pf.Lookup("log-level"))
	s.bind(config.KeyLogFormat, pf.Lookup("log-format"))
	s.bind(config.KeyPretty, pf.Lookup("pretty"))

	root.AddCommand(
		newSpuriousCmd(s),
		newIndexCmd(s),
		newLengthsCmd(s),
		newOffsetsCmd(s),
		newAnchorsCmd(s),
		newShareCmd(s),
		newRenameCmd(s),
		newMaskCmd(s),
		newOptimizeCmd(s),
		newConcatCmd(s),
		newConvertCmd(s),
	)
	return root
}

// bind makes an explicitly set flag override key. Flags are registered
// in code, so a missing flag is a programming error.
func (s *session) bind(key string, f *pflag.Flag) {
	if err := s.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// setup loads configuration and builds the logger.
func (s *session) setup() error {
	cfg, err := config.Load(s.v, s.global.ConfigFile)
	if err != nil {
		return runutil.Usage(err)
	}
	s.cfg = cfg
	level := runutil.EffectiveLogLevel(cfg.Log.EffectiveLevel(), s.global.Quiet)
	log, err := cmdutil.NewLogger(s.stderr, level, cfg.Log.EffectiveFormat())
	if err != nil {
		return runutil.Usage(err)
	}
	s.log = log
	for _, w := range cfg.Validate() {
		s.log.Warn("config", zap.String("warning", w))
	}
	return nil
}

// table opens a report table on stdout in the configured format.
func (s *session) table() (writers.Table, error) {
	return writers.NewTable(writers.TableFormat(s.cfg.Output.Pretty), s.out)
}

// records returns the GFA writer on stdout.
func (s *session) records() *writers.RecordWriter {
	if s.rw == nil {
		s.rw = writers.NewRecordWriter(s.out)
	}
	return s.rw
}
