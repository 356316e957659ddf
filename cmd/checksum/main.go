package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/checksum/internal/config"
	"github.com/bamsammich/checksum/internal/digest"
	"github.com/bamsammich/checksum/internal/engine"
	"github.com/bamsammich/checksum/internal/event"
	"github.com/bamsammich/checksum/internal/platform"
	"github.com/bamsammich/checksum/internal/stats"
	"github.com/bamsammich/checksum/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// usageError marks command-line misuse; it exits with code 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// sizeFlag is a pflag.Value accepting human-readable positive sizes ("128K").
// A non-zero max rejects larger values.
type sizeFlag struct {
	n   int64
	max int64
}

func (f *sizeFlag) String() string {
	if f.n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", f.n)
}

func (*sizeFlag) Type() string { return "size" }

func (f *sizeFlag) Set(val string) error {
	n, err := config.ParseSize(val)
	if err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("size must be positive: %q", val)
	}
	if f.max > 0 && n > f.max {
		return fmt.Errorf("size %q exceeds the maximum of %s", val, ui.FormatBytes(f.max))
	}
	f.n = n
	return nil
}

// algorithmFlag is a pflag.Value restricted to the registered digests.
type algorithmFlag struct {
	name string
}

func (f *algorithmFlag) String() string { return f.name }
func (*algorithmFlag) Type() string     { return "name" }

func (f *algorithmFlag) Set(val string) error {
	val = strings.ToLower(strings.TrimSpace(val))
	for _, name := range digest.Algorithms() {
		if name == val {
			f.name = val
			return nil
		}
	}
	return fmt.Errorf("unknown algorithm %q (supported: %s)", val, strings.Join(digest.Algorithms(), ", "))
}

type options struct {
	recursive   bool
	verbose     bool
	quiet       bool
	noProgress  bool
	showVersion bool
	logFile     string
	algorithm   algorithmFlag
	bufferSize  sizeFlag
	bwLimit     sizeFlag
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", root.Name(), err)
		return exitCode(err)
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		algorithm:  algorithmFlag{name: digest.Default},
		bufferSize: sizeFlag{max: platform.MaxChunkSize},
	}

	rootCmd := &cobra.Command{
		Use:   "checksum [flags] <path>",
		Short: "Compute a checksum of a file or, recursively, of a directory tree",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				return nil
			}
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(stdout, "checksum %s\n", version)
				return nil
			}
			return execute(cmd, args[0], opts, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "print version and exit")
	rootCmd.Flags().
		BoolVarP(&opts.recursive, "recursive", "r", false, "checksum all child files and folders recursively")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print every path while calculating size")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the hash")
	rootCmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the progress display")
	rootCmd.Flags().VarP(&opts.algorithm, "algorithm", "a",
		"hash algorithm ("+strings.Join(digest.Algorithms(), ", ")+")")
	rootCmd.Flags().Var(&opts.bufferSize, "buffer-size",
		"read size per chunk, e.g. 64K (default: 4x the file system block size)")
	rootCmd.Flags().Var(&opts.bwLimit, "bwlimit", "limit read throughput per second, e.g. 50M")
	rootCmd.Flags().StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

func execute(cmd *cobra.Command, path string, opts *options, stdout, stderr io.Writer) error {
	// Load optional config file.
	cfg, cfgErr := config.Load()

	if err := applyConfigDefaults(cmd.Flags(), cfg.Defaults, opts); err != nil {
		return err
	}

	// Configure logging.
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelInfo
	}
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel})
	var logHandler slog.Handler = textHandler
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	logger := slog.New(logHandler)

	if cfgErr != nil {
		logger.Warn("failed to load config", "path", config.Path(), "error", cfgErr)
	}

	tracker := stats.NewTracker()

	presenter := ui.NewPresenter(ui.Config{
		Writer:     stderr,
		Stats:      tracker,
		Width:      barWidth(ui.TermWidth(stderr)),
		IsTTY:      ui.IsTTY(stderr),
		Quiet:      opts.quiet,
		NoProgress: opts.noProgress,
	})

	logger.Info("starting checksum",
		"path", path,
		"recursive", opts.recursive,
		"algorithm", opts.algorithm.name,
		"buffer_size", opts.bufferSize.n,
		"bwlimit", opts.bwLimit.n,
	)

	result := engine.Run(engine.Config{
		Path:      path,
		Recursive: opts.recursive,
		Algorithm: opts.algorithm.name,
		ChunkSize: int(opts.bufferSize.n),
		BWLimit:   opts.bwLimit.n,
		Events:    &eventPrinter{out: stdout, verbose: opts.verbose, quiet: opts.quiet, logger: logger},
		Reporter:  presenter,
		Stats:     tracker,
	})
	if result.Err != nil {
		logger.Debug("checksum failed", "kind", engine.Kind(result.Err), "error", result.Err)
		return result.Err
	}

	fmt.Fprintf(stdout, "Hash: %s\n", result.Digest)

	if opts.verbose && !opts.quiet {
		fmt.Fprintln(stderr, ui.CompletionSummary(result.Stats))
	}
	return nil
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(flags *pflag.FlagSet, defaults config.DefaultsConfig, opts *options) error {
	if !flags.Changed("algorithm") && defaults.Algorithm != nil {
		if err := opts.algorithm.Set(*defaults.Algorithm); err != nil {
			return usagef("config algorithm: %w", err)
		}
	}
	if !flags.Changed("verbose") && defaults.Verbose != nil {
		opts.verbose = *defaults.Verbose
	}
	if !flags.Changed("no-progress") && defaults.NoProgress != nil {
		opts.noProgress = *defaults.NoProgress
	}
	if !flags.Changed("buffer-size") && defaults.BufferSize != nil {
		if err := opts.bufferSize.Set(*defaults.BufferSize); err != nil {
			return usagef("config buffer_size: %w", err)
		}
	}
	if !flags.Changed("bwlimit") && defaults.BWLimit != nil {
		if err := opts.bwLimit.Set(*defaults.BWLimit); err != nil {
			return usagef("config bwlimit: %w", err)
		}
	}
	return nil
}

func barWidth(termWidth int) int {
	return min(max(termWidth-60, 10), 40)
}

// eventPrinter writes the user-facing lines for run events and records
// every event in the debug log.
type eventPrinter struct {
	out     io.Writer
	verbose bool
	quiet   bool
	logger  *slog.Logger
}

func (p *eventPrinter) Emit(ev event.Event) {
	attrs := []slog.Attr{slog.String("type", ev.Type.String())}
	if ev.State != "" {
		attrs = append(attrs, slog.String("state", ev.State))
	}
	if ev.Path != "" {
		attrs = append(attrs, slog.String("path", ev.Path))
	}
	if ev.Size > 0 {
		attrs = append(attrs, slog.Int64("size", ev.Size))
	}
	if ev.Type == event.EstimateComplete {
		attrs = append(attrs, slog.Int64("total", ev.Total))
	}
	if ev.Digest != "" {
		attrs = append(attrs, slog.String("digest", ev.Digest))
	}
	if ev.Error != nil {
		attrs = append(attrs, slog.String("error", ev.Error.Error()))
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "checksum.event", attrs...)

	switch ev.Type {
	case event.PathVisited:
		if p.verbose && !p.quiet {
			fmt.Fprintf(p.out, "Calculating size: %s\n", ev.Path)
		}
	case event.EstimateComplete:
		if !p.quiet {
			fmt.Fprintf(p.out, "Bytes to hash: %d\n", ev.Total)
		}
	}
}
