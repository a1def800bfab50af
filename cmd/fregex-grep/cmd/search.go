package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/fregex"
	"github.com/coregx/fregex/meta"
)

// found is one match, with its text copied out of the input.
type found struct {
	start, end int
	text       string
}

// result holds the matches of one input.
type result struct {
	name    string
	matches []found
}

func noRelease() error { return nil }

// buildMatcher compiles the patterns as a single Regex or as a set.
func buildMatcher(opts *options, patterns []string, logger zerolog.Logger) (fregex.Matcher, error) {
	engine, err := meta.ParseEngineKind(opts.engine)
	if err != nil {
		return nil, err
	}
	config := fregex.DefaultConfig()
	config.Engine = engine
	config.EnableHeuristics = !opts.original
	config.Logger = logger

	if len(patterns) == 1 {
		re, err := fregex.CompileWithConfig(patterns[0], config)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("strategy", re.Strategy().String()).Str("reason", re.Reason()).Msg("compiled")
		return re, nil
	}
	set, err := fregex.CompileMultiWithConfig(patterns, config)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("patterns", len(patterns)).Str("strategy", set.Strategy().String()).Msg("compiled")
	return set, nil
}

// searchText returns the match locations in text. With line set, each line
// is searched on its own and offsets stay relative to text. With first set,
// at most one location is returned.
func searchText(m fregex.Matcher, text []byte, line, first bool) [][]int {
	n := -1
	if first {
		n = 1
	}
	if !line {
		return m.FindAllIndex(text, n)
	}

	var locs [][]int
	for lo := 0; lo <= len(text); {
		hi := len(text)
		if i := bytes.IndexByte(text[lo:], '\n'); i >= 0 {
			hi = lo + i
		}
		for _, loc := range m.FindAllIndex(text[lo:hi], n) {
			locs = append(locs, []int{lo + loc[0], lo + loc[1]})
			if first {
				return locs
			}
		}
		lo = hi + 1
	}
	return locs
}

func collect(name string, text []byte, locs [][]int) result {
	r := result{name: name, matches: make([]found, len(locs))}
	for i, loc := range locs {
		r.matches[i] = found{start: loc[0], end: loc[1], text: string(text[loc[0]:loc[1]])}
	}
	return r
}

func searchFile(m fregex.Matcher, path string, opts *options) (result, error) {
	data, release, err := readInput(path)
	if err != nil {
		return result{}, err
	}
	defer release()
	return collect(path, data, searchText(m, data, opts.line, opts.first)), nil
}

// searchFiles searches every path concurrently with one shared matcher and
// returns the results in argument order.
func searchFiles(ctx context.Context, m fregex.Matcher, paths []string, opts *options) ([]result, error) {
	results := make([]result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := searchFile(m, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSearch(ctx context.Context, cmd *cobra.Command, opts *options, paths []string, logger zerolog.Logger) error {
	patterns, err := collectPatterns(opts)
	if err != nil {
		return exitError{code: 2, err: err}
	}
	m, err := buildMatcher(opts, patterns, logger)
	if err != nil {
		return exitError{code: 2, err: err}
	}

	out := cmd.OutOrStdout()
	p := newPrinter(out, resolveColor(opts.color, out), len(paths) > 1)

	var results []result
	if len(paths) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return exitError{code: 2, err: fmt.Errorf("read stdin: %w", err)}
		}
		results = []result{collect("", data, searchText(m, data, opts.line, opts.first))}
	} else {
		results, err = searchFiles(ctx, m, paths, opts)
		if err != nil {
			return exitError{code: 2, err: err}
		}
	}

	total := 0
	for _, r := range results {
		if err := p.print(r); err != nil {
			return exitError{code: 2, err: err}
		}
		total += len(r.matches)
	}
	logger.Debug().Int("inputs", len(results)).Int("matches", total).Msg("search done")

	if opts.watch && len(paths) > 0 {
		return watchFiles(ctx, paths, func(path string) error {
			r, err := searchFile(m, path, opts)
			if err != nil {
				return err
			}
			return p.print(r)
		}, logger)
	}
	if total == 0 {
		return exitError{code: 1}
	}
	return nil
}
