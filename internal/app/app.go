package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpuzzles/internal/ctxlog"
	"github.com/katalvlaran/gridpuzzles/internal/input"
)

// solver computes the results of one puzzle from its input lines.
type solver func(ctx context.Context, cfg *Config, lines []string) ([]int64, error)

var solvers = map[string]solver{
	PuzzlePatrol:     solvePatrol,
	PuzzleWordsearch: solveWordsearch,
	PuzzlePageorder:  solvePageorder,
	PuzzleReports:    solveReports,
	PuzzleListdist:   solveListdist,
	PuzzleMulscan:    solveMulscan,
}

// App owns the result stream and the logger of a single run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp builds an App writing results to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger}
}

// Run reads the puzzle input from in, solves it and prints the results.
// Nothing is written to the result stream when solving fails.
func (a *App) Run(ctx context.Context, cfg *Config, in io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger.With("puzzle", cfg.Puzzle, "part", cfg.Part)

	lines, err := input.ReadLines(in)
	if err != nil {
		return err
	}
	logger.Debug("Input read.", "lines", len(lines))

	solve, ok := solvers[cfg.Puzzle]
	if !ok {
		return fmt.Errorf("no solver registered for puzzle %q", cfg.Puzzle)
	}
	results, err := solve(ctx, cfg, lines)
	if err != nil {
		logger.Error("Puzzle failed.", "error", err)
		return fmt.Errorf("%s: %w", cfg.Puzzle, err)
	}

	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintln(&sb, r)
	}
	if _, err := io.WriteString(a.outW, sb.String()); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	logger.Info("Puzzle solved.", "results", results)
	return nil
}
