package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpuzzles/grid"
	"github.com/katalvlaran/gridpuzzles/internal/cli"
)

const board = `....#.....
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

func TestRun_Patrol(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	err := run(strings.NewReader(board), &out, &logs, []string{"-metric", "distinct", "patrol"})
	require.NoError(t, err)
	assert.Equal(t, "41\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	err := run(strings.NewReader(""), &out, &logs, []string{"-h"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	err := run(strings.NewReader(""), &out, &logs, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RaggedInput(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	err := run(strings.NewReader("XMAS\nXM\n"), &out, &logs, []string{"wordsearch"})
	require.ErrorIs(t, err, grid.ErrRaggedInput)
	assert.Empty(t, out.String())
}
