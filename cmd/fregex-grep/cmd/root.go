package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the parsed command line.
type options struct {
	patterns     []string
	patternsFile string
	first        bool
	line         bool
	original     bool
	engine       string
	color        string
	watch        bool
	logLevel     string
}

// newRootCmd builds the command. Each call returns an independent command,
// tests rely on that.
func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "fregex-grep [flags] [file ...]",
		Short: "fregex-grep - print the offsets of pattern matches",
		Long: "Searches files, or standard input when no file is given, and prints\n" +
			"the (start, end) byte offsets of every non-overlapping match.\n" +
			"Several patterns are searched as one set: each match is the leftmost\n" +
			"match of any pattern, the first listed pattern winning ties.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, opts.logLevel)
			if err != nil {
				return exitError{code: 2, err: err}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSearch(ctx, cmd, opts, args, logger)
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Pattern to search for (repeatable)")
	f.StringVar(&opts.patternsFile, "patterns-file", "", "YAML file with a list of patterns")
	f.BoolVar(&opts.first, "first", false, "Stop after the first match of each input")
	f.BoolVar(&opts.line, "line", false, "Search each line independently")
	f.BoolVar(&opts.original, "original", false, "Run the plain regex engine without literal acceleration")
	f.StringVar(&opts.engine, "engine", "stdlib", "Regex engine: stdlib, re2")
	f.StringVar(&opts.color, "color", "auto", "Color output: auto, always, never")
	f.BoolVar(&opts.watch, "watch", false, "Search files again whenever they change")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	return cmd
}

// newLogger writes human-readable logs to the command's stderr.
func newLogger(cmd *cobra.Command, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}
