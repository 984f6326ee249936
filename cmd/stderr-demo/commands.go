package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/stderr"
)

// exitCode lets a command end the process with a specific status without
// printing an error.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

type rootOptions struct {
	configPath string
	logFile    string
	label      string
	width      int
	quiet      bool
	debug      bool
	trace      bool
	silly      bool
	dev        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "stderr-demo",
		Short:         "Demonstrate terminal logging, boxes, tables and traces",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with quiet/debug/dev/trace/silly settings")
	flags.StringVar(&opts.logFile, "log-file", "", "also write records as JSON lines to this file")
	flags.StringVar(&opts.label, "label", "", "prefix every message with [label]")
	flags.IntVar(&opts.width, "width", 0, "terminal width (default: detected)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print errors")
	flags.BoolVar(&opts.debug, "debug", false, "show debug messages")
	flags.BoolVar(&opts.trace, "trace", false, "show trace messages")
	flags.BoolVar(&opts.silly, "silly", false, "show magic and silly messages")
	flags.BoolVar(&opts.dev, "dev", false, "show devlog messages")

	cmd.AddCommand(
		newLogCmd(opts),
		newBannerCmd(opts),
		newBoxCmd(opts),
		newTableCmd(opts),
		newColumnsCmd(opts),
		newFlagsCmd(opts),
		newTraceCmd(opts),
		newContextCmd(opts),
		newConfirmCmd(opts),
	)
	return cmd
}

// logger builds a Logger from the config file, the environment and the
// command-line flags, in increasing priority.
func (o *rootOptions) logger(cmd *cobra.Command) (*stderr.Logger, func(), error) {
	cfg, err := stderr.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	f := cmd.Flags()
	if f.Changed("quiet") {
		cfg.Quiet = o.quiet
	}
	if f.Changed("debug") {
		cfg.Debug = o.debug
	}
	if f.Changed("trace") {
		cfg.Trace = o.trace
	}
	if f.Changed("silly") {
		cfg.Silly = o.silly
	}
	if f.Changed("dev") {
		cfg.Dev = o.dev
	}

	options := []stderr.Option{
		stderr.WithConfig(cfg),
		stderr.WithWriter(cmd.ErrOrStderr()),
		stderr.WithInput(cmd.InOrStdin()),
		stderr.WithLabel(o.label),
		stderr.WithWidth(o.width),
	}
	cleanup := func() {}
	if o.logFile != "" {
		file, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		z := zerolog.New(file).With().Timestamp().Logger()
		options = append(options, stderr.WithMirror(z))
		cleanup = func() { _ = file.Close() }
	}
	return stderr.New(options...), cleanup, nil
}

// run wraps a command body with logger construction and cleanup.
func (o *rootOptions) run(fn func(cmd *cobra.Command, l *stderr.Logger, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		l, cleanup, err := o.logger(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(cmd, l, args)
	}
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log LEVEL MESSAGE...",
		Short: "Write a leveled message",
		Args:  cobra.MinimumNArgs(2),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			level, err := stderr.ParseLevel(args[0])
			if err != nil {
				return err
			}
			l.Log(level, strings.Join(args[1:], " "))
			return nil
		}),
	}
}

func newBannerCmd(opts *rootOptions) *cobra.Command {
	var fill string
	cmd := &cobra.Command{
		Use:   "banner TEXT...",
		Short: "Center text across the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			r := []rune(fill)
			if len(r) != 1 {
				return fmt.Errorf("fill must be a single character, got %q", fill)
			}
			return l.Banner(strings.Join(args, " "), r[0])
		}),
	}
	cmd.Flags().StringVar(&fill, "fill", "=", "fill character")
	return cmd
}

func newBoxCmd(opts *rootOptions) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "box TEXT...",
		Short: "Draw text in a box; each argument is one line",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			s, err := stderr.ParseBorderStyle(style)
			if err != nil {
				return err
			}
			return l.Box(strings.Join(args, "\n"), s)
		}),
	}
	cmd.Flags().StringVar(&style, "style", "light", "border style: light, heavy or double")
	return cmd
}

func newTableCmd(opts *rootOptions) *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "table HEADER ROW...",
		Short: "Print rows as an aligned table; cells are split on --sep",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			rows := make([][]string, len(args))
			for i, arg := range args {
				rows[i] = strings.Split(arg, sep)
			}
			return l.SimpleTable(rows)
		}),
	}
	cmd.Flags().StringVar(&sep, "sep", ",", "cell separator")
	return cmd
}

func newColumnsCmd(opts *rootOptions) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "columns ITEM...",
		Short: "Lay items out in columns",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			return l.Columns(args, n)
		}),
	}
	cmd.Flags().IntVarP(&n, "cols", "n", 4, "items per row")
	return cmd
}

func newFlagsCmd(opts *rootOptions) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "flags MASK LABEL...",
		Short: "Show a bitmask as a flag table (MASK accepts 0b, 0o and 0x prefixes)",
		Args:  cobra.MinimumNArgs(2),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			mask, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid mask %q: %w", args[0], err)
			}
			s, err := stderr.ParseBorderStyle(style)
			if err != nil {
				return err
			}
			return stderr.PrintFlagTable(l, mask, args[1:], s)
		}),
	}
	cmd.Flags().StringVar(&style, "style", "light", "border style: light, heavy or double")
	return cmd
}

type traceConfig struct {
	Path    string   `yaml:"path"`
	Formats []string `yaml:"formats"`
}

func newTraceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Run a traced sample workload (enable with --trace or TRACE_MODE)",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, _ []string) error {
			parseConfig(l)
			if err := l.TraceFn("validate_database_url", "checking database connection"); err != nil {
				return err
			}
			if err := l.TraceFn("validate_database_url", "connection successful"); err != nil {
				return err
			}
			l.TraceFound("3 cached entries")
			l.TraceAdd("entry added")
			l.TraceDone("cache warmed")
			l.ResetTraceState()
			parseConfig(l)
			l.Okay("trace demo complete")
			return nil
		}),
	}
}

func parseConfig(l *stderr.Logger) {
	s := l.TraceScope("parse_config")
	defer s.End()
	s.Step("reading config file")
	s.StepDebug("loaded", traceConfig{Path: "app.yaml", Formats: []string{"yaml", "toml"}})
}

func newContextCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "context CTX...",
		Short: "Switch through contexts; repeated contexts print no banner",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			for _, ctx := range args {
				if err := l.SetContext(ctx); err != nil {
					return err
				}
				l.Info("working in " + ctx)
			}
			return nil
		}),
	}
}

func newConfirmCmd(opts *rootOptions) *cobra.Command {
	var (
		boxed bool
		style string
	)
	cmd := &cobra.Command{
		Use:   "confirm PROMPT...",
		Short: "Ask a y/n/q question; exits 0 for yes, 1 for no, 2 for quit",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.run(func(_ *cobra.Command, l *stderr.Logger, args []string) error {
			s, err := stderr.ParseBorderStyle(style)
			if err != nil {
				return err
			}
			answer, err := l.ConfirmBuilder(strings.Join(args, " ")).Boxed(boxed).Style(s).Ask()
			if err != nil {
				return err
			}
			switch answer {
			case stderr.Yes:
				return nil
			case stderr.No:
				return exitCode(1)
			default:
				return exitCode(2)
			}
		}),
	}
	cmd.Flags().BoolVar(&boxed, "boxed", false, "draw the prompt in a box")
	cmd.Flags().StringVar(&style, "style", "light", "border style: light, heavy or double")
	return cmd
}
