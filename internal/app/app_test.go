package app_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpuzzles/grid"
	"github.com/katalvlaran/gridpuzzles/internal/app"
	"github.com/katalvlaran/gridpuzzles/patrol"
)

const patrolInput = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

const wordInput = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func runApp(t *testing.T, cfg app.Config, in string) (string, string, error) {
	t.Helper()
	c, err := app.NewConfig(cfg)
	require.NoError(t, err)
	var out, logs bytes.Buffer
	err = app.NewApp(&out, &logs, c).Run(context.Background(), c, strings.NewReader(in))
	return out.String(), logs.String(), err
}

// TestRun_Puzzles checks every solver against its sample input.
func TestRun_Puzzles(t *testing.T) {
	cases := []struct {
		name string
		cfg  app.Config
		in   string
		want string
	}{
		{"patrol both", app.Config{Puzzle: app.PuzzlePatrol}, patrolInput, "44\n41\n"},
		{"patrol distinct", app.Config{Puzzle: app.PuzzlePatrol, Metric: app.MetricDistinct}, patrolInput, "41\n"},
		{"patrol steps", app.Config{Puzzle: app.PuzzlePatrol, Metric: app.MetricSteps}, patrolInput, "44\n"},
		{"wordsearch straight", app.Config{Puzzle: app.PuzzleWordsearch}, wordInput, "18\n"},
		{"wordsearch cross", app.Config{Puzzle: app.PuzzleWordsearch, Part: 2}, wordInput, "9\n"},
		{"wordsearch custom", app.Config{Puzzle: app.PuzzleWordsearch, Word: "SAMX"}, wordInput, "18\n"},
		{"wordsearch even cross", app.Config{Puzzle: app.PuzzleWordsearch, Part: 2, Word: "XMAS"}, wordInput, "0\n"},
		{"reports", app.Config{Puzzle: app.PuzzleReports}, "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n", "2\n"},
		{"reports dampened", app.Config{Puzzle: app.PuzzleReports, Part: 2}, "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n", "4\n"},
		{"listdist", app.Config{Puzzle: app.PuzzleListdist}, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n", "11\n"},
		{"listdist similarity", app.Config{Puzzle: app.PuzzleListdist, Part: 2}, "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n", "31\n"},
		{"mulscan", app.Config{Puzzle: app.PuzzleMulscan}, "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))\n", "161\n"},
		{"mulscan conditional", app.Config{Puzzle: app.PuzzleMulscan, Part: 2}, "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)un\ndo()?mul(8,5))\n", "48\n"},
		{"pageorder", app.Config{Puzzle: app.PuzzlePageorder}, "1|2\n2|3\n\n1,2,3\n3,2,1\n", "2\n"},
		{"pageorder repaired", app.Config{Puzzle: app.PuzzlePageorder, Part: 2}, "1|2\n2|3\n\n1,2,3\n3,1,2,4,5\n", "3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runApp(t, tc.cfg, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestRun_InputErrors prints nothing and surfaces the typed error.
func TestRun_InputErrors(t *testing.T) {
	out, logs, err := runApp(t, app.Config{Puzzle: app.PuzzlePatrol}, "...\n..\n")
	assert.ErrorIs(t, err, grid.ErrRaggedInput)
	assert.Empty(t, out)
	assert.Contains(t, logs, "Puzzle failed.")

	out, _, err = runApp(t, app.Config{Puzzle: app.PuzzlePatrol}, "...\n.x.\n")
	assert.ErrorIs(t, err, patrol.ErrInvalidSymbol)
	assert.Empty(t, out)

	out, _, err = runApp(t, app.Config{Puzzle: app.PuzzlePatrol}, "...\n.#.\n")
	assert.ErrorIs(t, err, patrol.ErrNoActor)
	assert.Empty(t, out)

	_, _, err = runApp(t, app.Config{Puzzle: app.PuzzlePatrol, MaxSteps: 3}, patrolInput)
	assert.ErrorIs(t, err, patrol.ErrStepLimit)
}

// TestRun_DebugLogging emits patrol trace records at debug level.
func TestRun_DebugLogging(t *testing.T) {
	_, logs, err := runApp(t, app.Config{Puzzle: app.PuzzlePatrol, LogLevel: "debug"}, patrolInput)
	require.NoError(t, err)
	assert.Contains(t, logs, "patrol turn")
	assert.Contains(t, logs, "patrol exit")

	_, logs, err = runApp(t, app.Config{Puzzle: app.PuzzlePatrol, LogLevel: "warn"}, patrolInput)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

// TestNewConfig validates names, parts and metrics.
func TestNewConfig(t *testing.T) {
	c, err := app.NewConfig(app.Config{Puzzle: app.PuzzlePatrol})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Part)
	assert.Equal(t, app.MetricBoth, c.Metric)

	for _, bad := range []app.Config{
		{},
		{Puzzle: "sudoku"},
		{Puzzle: app.PuzzlePatrol, Part: 3},
		{Puzzle: app.PuzzlePatrol, Metric: "turns"},
		{Puzzle: app.PuzzlePatrol, MaxSteps: -1},
	} {
		_, err := app.NewConfig(bad)
		assert.Error(t, err, "%+v", bad)
	}
}

// TestNewLogger selects handler and level.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	app.NewLogger("debug", "json", &buf).Debug("hi")
	assert.Contains(t, buf.String(), `"msg":"hi"`)

	buf.Reset()
	app.NewLogger("bogus", "text", &buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
