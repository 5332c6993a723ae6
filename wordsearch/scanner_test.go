package wordsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpuzzles/grid"
	"github.com/katalvlaran/gridpuzzles/wordsearch"
)

func xmasRows() []string {
	return []string{
		"MMMSXXMASM",
		"MSAMXMSMSA",
		"AMXSXMAAMM",
		"MSAMASMSMX",
		"XMASAMXAMM",
		"XXAMMXXAMA",
		"SMSMSASXSS",
		"SAXAMASAAA",
		"MAMMMXMMMM",
		"MXMXAXMASX",
	}
}

func crossRows() []string {
	return []string{
		".M.S......",
		"..A..MSMS.",
		".M.S.MAA..",
		"..A.ASMSM.",
		".M.S.M....",
		"..........",
		"S.S.S.S.S.",
		".A.A.A.A..",
		"M.M.M.M.M.",
		"........A.",
	}
}

// alphabetRows lays "abc…z" repeatedly across a 10×10 block.
func alphabetRows() []string {
	const s = "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuv"
	rows := make([]string, 10)
	for y := range rows {
		rows[y] = s[y*10 : y*10+10]
	}
	return rows
}

func mustImport(t testing.TB, rows []string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Import(rows)
	require.NoError(t, err)
	return g
}

// TestCount_Sample is the reference word search.
func TestCount_Sample(t *testing.T) {
	assert.Equal(t, 18, wordsearch.Count(mustImport(t, xmasRows()), "XMAS"))
}

// TestCount_Alphabet exercises rows plus wrapped diagonals.
func TestCount_Alphabet(t *testing.T) {
	g := mustImport(t, alphabetRows())
	for word, want := range map[string]int{
		"abc": 3, "def": 3, "ghi": 3, "jkl": 3, "mno": 3, "pqr": 4, "stu": 3,
	} {
		assert.Equal(t, want, wordsearch.Count(g, word), word)
	}
	for _, word := range []string{"vxw", "uwv", "tvu", "rts", "qsr"} {
		assert.Zero(t, wordsearch.Count(g, word), word)
	}
}

// TestCount_DirectionsIndependent: a palindrome matches once per direction.
func TestCount_DirectionsIndependent(t *testing.T) {
	assert.Equal(t, 2, wordsearch.Count(mustImport(t, []string{"ABA"}), "ABA"))
	// a single character matches in all eight directions
	assert.Equal(t, 8, wordsearch.Count(mustImport(t, []string{"A"}), "A"))
}

// TestCount_NoPlacement returns zero, not an error.
func TestCount_NoPlacement(t *testing.T) {
	g := mustImport(t, []string{"XMAS"})
	assert.Zero(t, wordsearch.Count(g, "XMASX"))
	assert.Zero(t, wordsearch.Count(g, ""))

	n, err := wordsearch.Search(g, "QQ", wordsearch.Straight)
	require.NoError(t, err)
	assert.Zero(t, n)

	empty := mustImport(t, nil)
	assert.Zero(t, wordsearch.Count(empty, "X"))
	assert.Zero(t, wordsearch.CountCross(empty, "X"))
}

// TestMatches_RowMajorOrder checks origin order and compass order.
func TestMatches_RowMajorOrder(t *testing.T) {
	g := mustImport(t, []string{
		"AB.",
		"B.B",
		"..A",
	})
	got := wordsearch.Matches(g, "AB")
	want := []wordsearch.Match{
		{Origin: grid.Position{X: 0, Y: 0}, Dir: grid.Offset{DX: 1, DY: 0}},
		{Origin: grid.Position{X: 0, Y: 0}, Dir: grid.Offset{DX: 0, DY: 1}},
		{Origin: grid.Position{X: 2, Y: 2}, Dir: grid.Offset{DX: 0, DY: -1}},
	}
	assert.Equal(t, want, got)
	assert.Len(t, got, wordsearch.Count(g, "AB"))
}

// TestCountCross_Sample is the reference X search.
func TestCountCross_Sample(t *testing.T) {
	assert.Equal(t, 9, wordsearch.CountCross(mustImport(t, crossRows()), "MAS"))
	assert.Equal(t, 9, wordsearch.CountCross(mustImport(t, xmasRows()), "MAS"))
}

// TestCountCross_Orientations covers all four forward/reverse combinations.
func TestCountCross_Orientations(t *testing.T) {
	for _, rows := range [][]string{
		{"M.S", ".A.", "M.S"},
		{"S.M", ".A.", "S.M"},
		{"M.M", ".A.", "S.S"},
		{"S.S", ".A.", "M.M"},
	} {
		assert.Equal(t, 1, wordsearch.CountCross(mustImport(t, rows), "MAS"), rows)
	}
	assert.Zero(t, wordsearch.CountCross(mustImport(t, []string{"M.M", ".A.", "M.M"}), "MAS"))
}

// TestCountCross_EvenLength always reports zero.
func TestCountCross_EvenLength(t *testing.T) {
	for _, rows := range [][]string{xmasRows(), crossRows(), {"XX", "XX"}} {
		g := mustImport(t, rows)
		assert.Zero(t, wordsearch.CountCross(g, "XMAS"))
		assert.Zero(t, wordsearch.CountCross(g, "XX"))
		n, err := wordsearch.Search(g, "XMAS", wordsearch.Cross)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

// TestCountCross_EdgeCentres skips centres whose diagonals leave the grid.
func TestCountCross_EdgeCentres(t *testing.T) {
	g := mustImport(t, []string{
		"A.S",
		".A.",
		"M.S",
	})
	// only the middle A can be a centre; its "\" diagonal reads AAS
	assert.Zero(t, wordsearch.CountCross(g, "MAS"))
	assert.Equal(t, 2, wordsearch.CountCross(g, "A"))
}

// TestSearch_Errors covers empty words and unknown modes.
func TestSearch_Errors(t *testing.T) {
	g := mustImport(t, xmasRows())
	_, err := wordsearch.Search(g, "", wordsearch.Straight)
	assert.ErrorIs(t, err, wordsearch.ErrEmptyWord)

	_, err = wordsearch.Search(g, "XMAS", wordsearch.Mode(9))
	assert.Error(t, err)

	n, err := wordsearch.Search(g, "XMAS", wordsearch.Straight)
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}

// TestParseMode accepts the two mode names.
func TestParseMode(t *testing.T) {
	m, err := wordsearch.ParseMode("cross")
	require.NoError(t, err)
	assert.Equal(t, wordsearch.Cross, m)
	assert.Equal(t, "straight", wordsearch.Straight.String())

	_, err = wordsearch.ParseMode("spiral")
	assert.Error(t, err)
}
