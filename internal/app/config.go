package app

import (
	"errors"
	"fmt"
	"slices"
)

// Puzzle names accepted by Config.Puzzle.
const (
	PuzzlePatrol     = "patrol"
	PuzzleWordsearch = "wordsearch"
	PuzzlePageorder  = "pageorder"
	PuzzleReports    = "reports"
	PuzzleListdist   = "listdist"
	PuzzleMulscan    = "mulscan"
)

// Patrol metrics accepted by Config.Metric.
const (
	MetricBoth     = "both"
	MetricSteps    = "steps"
	MetricDistinct = "distinct"
)

// Puzzles lists every solver name in display order.
var Puzzles = []string{
	PuzzleListdist, PuzzleReports, PuzzleMulscan,
	PuzzleWordsearch, PuzzlePageorder, PuzzlePatrol,
}

// Config holds everything a run needs.
type Config struct {
	Puzzle     string // solver name, one of Puzzles
	Part       int    // 1 or 2
	Word       string // wordsearch target; empty selects the part default
	Metric     string // patrol output: both, steps or distinct
	MaxSteps   int    // patrol transition budget; 0 derives it from the board
	ConfigPath string // optional HCL file

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy with defaults filled in.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Puzzle == "" {
		return nil, errors.New("puzzle is a required configuration field and cannot be empty")
	}
	if !slices.Contains(Puzzles, cfg.Puzzle) {
		return nil, fmt.Errorf("unknown puzzle %q: must be one of %v", cfg.Puzzle, Puzzles)
	}
	if cfg.Part == 0 {
		cfg.Part = 1
	}
	if cfg.Part != 1 && cfg.Part != 2 {
		return nil, fmt.Errorf("invalid part %d: must be 1 or 2", cfg.Part)
	}
	if cfg.Metric == "" {
		cfg.Metric = MetricBoth
	}
	switch cfg.Metric {
	case MetricBoth, MetricSteps, MetricDistinct:
	default:
		return nil, fmt.Errorf("invalid metric %q: must be 'both', 'steps' or 'distinct'", cfg.Metric)
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("invalid max-steps %d: must not be negative", cfg.MaxSteps)
	}
	return &cfg, nil
}
