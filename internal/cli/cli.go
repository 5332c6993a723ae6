package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpuzzles/internal/app"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean reporting that the program should exit cleanly (help), or an
// ExitError with code 2 for usage problems.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("puzzle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
puzzle - solve a grid or list puzzle read from standard input.

Usage:
  puzzle [options] [PUZZLE] < input.txt

Arguments:
  PUZZLE
    One of: %s

Options:
`, strings.Join(app.Puzzles, ", "))
		flagSet.PrintDefaults()
	}

	puzzleFlag := flagSet.String("puzzle", "", "Puzzle to solve.")
	pFlag := flagSet.String("p", "", "Puzzle to solve (shorthand).")
	partFlag := flagSet.Int("part", 1, "Puzzle part: 1 or 2.")
	wordFlag := flagSet.String("word", "", "Word for the wordsearch puzzle. Defaults to XMAS (part 1) or MAS (part 2).")
	metricFlag := flagSet.String("metric", app.MetricBoth, "Patrol output: 'both', 'steps' or 'distinct'.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Patrol transition budget. 0 derives it from the board size.")
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Flags given explicitly win over the configuration file.
	locked := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { locked[f.Name] = true })

	cfg := app.Config{
		Part:       *partFlag,
		Word:       *wordFlag,
		Metric:     *metricFlag,
		MaxSteps:   *maxStepsFlag,
		ConfigPath: *configFlag,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
	}
	switch {
	case *puzzleFlag != "":
		cfg.Puzzle = *puzzleFlag
	case *pFlag != "":
		cfg.Puzzle = *pFlag
	case flagSet.NArg() > 0:
		cfg.Puzzle = flagSet.Arg(0)
	}

	if cfg.ConfigPath != "" {
		fc, err := app.LoadFile(cfg.ConfigPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		fc.Apply(&cfg, locked)
		slog.Debug("Configuration file applied.", "path", cfg.ConfigPath)
	}

	if cfg.Puzzle == "" {
		slog.Debug("No puzzle selected, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	cfg.Metric = strings.ToLower(cfg.Metric)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
