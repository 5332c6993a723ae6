package app

import (
	"context"
	"strings"

	"github.com/katalvlaran/gridpuzzles/grid"
	"github.com/katalvlaran/gridpuzzles/internal/ctxlog"
	"github.com/katalvlaran/gridpuzzles/listdist"
	"github.com/katalvlaran/gridpuzzles/mulscan"
	"github.com/katalvlaran/gridpuzzles/pageorder"
	"github.com/katalvlaran/gridpuzzles/patrol"
	"github.com/katalvlaran/gridpuzzles/reports"
	"github.com/katalvlaran/gridpuzzles/wordsearch"
)

// Default words per wordsearch part.
const (
	defaultStraightWord = "XMAS"
	defaultCrossWord    = "MAS"
)

// solvePatrol prints the step count and/or the distinct visited count.
func solvePatrol(ctx context.Context, cfg *Config, lines []string) ([]int64, error) {
	board, err := patrol.ParseBoard(lines)
	if err != nil {
		return nil, err
	}
	res, err := patrol.Run(board,
		patrol.WithLogger(ctxlog.FromContext(ctx)),
		patrol.WithMaxSteps(cfg.MaxSteps),
	)
	if err != nil {
		return nil, err
	}
	switch cfg.Metric {
	case MetricSteps:
		return []int64{int64(res.Steps)}, nil
	case MetricDistinct:
		return []int64{int64(res.Distinct)}, nil
	}
	return []int64{int64(res.Steps), int64(res.Distinct)}, nil
}

// solveWordsearch counts straight matches for part 1 and crosses for part 2.
func solveWordsearch(ctx context.Context, cfg *Config, lines []string) ([]int64, error) {
	g, err := grid.Import(lines)
	if err != nil {
		return nil, err
	}
	mode, word := wordsearch.Straight, defaultStraightWord
	if cfg.Part == 2 {
		mode, word = wordsearch.Cross, defaultCrossWord
	}
	if cfg.Word != "" {
		word = cfg.Word
	}
	ctxlog.FromContext(ctx).Debug("Searching.", "word", word, "mode", mode.String(),
		"width", g.Width(), "height", g.Height())
	n, err := wordsearch.Search(g, word, mode)
	if err != nil {
		return nil, err
	}
	return []int64{int64(n)}, nil
}

// solvePageorder sums middles of ordered updates, or of repaired ones.
func solvePageorder(_ context.Context, cfg *Config, lines []string) ([]int64, error) {
	m, err := pageorder.Parse(lines)
	if err != nil {
		return nil, err
	}
	if cfg.Part == 1 {
		return []int64{int64(m.SumOrderedMiddles())}, nil
	}
	sum, err := m.SumRepairedMiddles()
	if err != nil {
		return nil, err
	}
	return []int64{int64(sum)}, nil
}

// solveReports counts safe reports; part 2 applies the dampener.
func solveReports(_ context.Context, cfg *Config, lines []string) ([]int64, error) {
	n, err := reports.CountSafe(lines, cfg.Part == 2)
	if err != nil {
		return nil, err
	}
	return []int64{int64(n)}, nil
}

// solveListdist returns the total distance, or the similarity for part 2.
func solveListdist(_ context.Context, cfg *Config, lines []string) ([]int64, error) {
	left, right, err := listdist.ParsePairs(lines)
	if err != nil {
		return nil, err
	}
	if cfg.Part == 2 {
		return []int64{int64(listdist.Similarity(left, right))}, nil
	}
	d, err := listdist.TotalDistance(left, right)
	if err != nil {
		return nil, err
	}
	return []int64{int64(d)}, nil
}

// solveMulscan treats the whole input as one stream, lines concatenated.
func solveMulscan(_ context.Context, cfg *Config, lines []string) ([]int64, error) {
	text := strings.Join(lines, "")
	sum := mulscan.Sum
	if cfg.Part == 2 {
		sum = mulscan.SumConditional
	}
	v, err := sum(text)
	if err != nil {
		return nil, err
	}
	return []int64{v}, nil
}
