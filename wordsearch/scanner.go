package wordsearch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpuzzles/grid"
)

// ErrEmptyWord indicates a search for the empty string.
var ErrEmptyWord = errors.New("wordsearch: word must not be empty")

// Mode selects how a word may be laid out in the grid.
type Mode int

const (
	// Straight matches along any of the eight compass directions.
	Straight Mode = iota
	// Cross matches an X of two diagonals sharing a centre cell.
	Cross
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Straight:
		return "straight"
	case Cross:
		return "cross"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "straight" or "cross".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "straight":
		return Straight, nil
	case "cross":
		return Cross, nil
	}
	return 0, fmt.Errorf("wordsearch: unknown mode %q", s)
}

// Match is one straight-line occurrence: the word starts at Origin and
// advances by Dir per character.
type Match struct {
	Origin grid.Position
	Dir    grid.Offset
}

// Search counts word in g using mode.
// Returns ErrEmptyWord for an empty word.
func Search(g *grid.Grid[rune], word string, mode Mode) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}
	switch mode {
	case Straight:
		return Count(g, word), nil
	case Cross:
		return CountCross(g, word), nil
	}
	return 0, fmt.Errorf("wordsearch: unknown mode %s", mode)
}

// Count returns the number of (origin, direction) pairs along which word
// reads in g. An empty word counts zero.
func Count(g *grid.Grid[rune], word string) int {
	n := 0
	scan(g, []rune(word), func(Match) { n++ })
	return n
}

// Matches lists every straight-line occurrence of word. Origins are in
// row-major order; within one origin, directions follow grid.Compass.
func Matches(g *grid.Grid[rune], word string) []Match {
	var out []Match
	scan(g, []rune(word), func(m Match) { out = append(out, m) })
	return out
}

// CountCross returns the number of centre cells where word forms an X.
// Even-length and empty words count zero.
func CountCross(g *grid.Grid[rune], word string) int {
	w := []rune(word)
	if len(w) == 0 || len(w)%2 == 0 {
		return 0
	}
	mid := len(w) / 2
	rev := slices.Clone(w)
	slices.Reverse(rev)

	back := make([]rune, len(w))  // "\" diagonal, top-left to bottom-right
	slash := make([]rune, len(w)) // "/" diagonal, top-right to bottom-left
	n := 0
	g.Each(func(c grid.Position, r rune) bool {
		// 1. Centre must hold the middle character
		if r != w[mid] {
			return true
		}
		// 2. Both diagonals must fit around the centre
		if c.X < mid || c.Y < mid || c.X+mid >= g.Width() || c.Y+mid >= g.Height() {
			return true
		}
		// 3. Read both diagonals top to bottom
		for i := range w {
			back[i], _ = g.At(c.X-mid+i, c.Y-mid+i)
			slash[i], _ = g.At(c.X+mid-i, c.Y-mid+i)
		}
		// 4. Each diagonal independently forwards or reversed
		if readsEither(back, w, rev) && readsEither(slash, w, rev) {
			n++
		}
		return true
	})
	return n
}

// scan visits every origin in row-major order and every compass direction,
// reporting each match to emit.
func scan(g *grid.Grid[rune], w []rune, emit func(Match)) {
	if len(w) == 0 {
		return
	}
	span := len(w) - 1
	g.Each(func(origin grid.Position, r rune) bool {
		if r != w[0] {
			return true
		}
		for _, d := range grid.Compass {
			// the far end decides whether the whole run fits
			if !g.Contains(origin.Add(d.Scale(span))) {
				continue
			}
			if readsAlong(g, origin, d, w) {
				emit(Match{Origin: origin, Dir: d})
			}
		}
		return true
	})
}

// readsAlong reports whether w appears starting at p stepping by d.
// The caller guarantees the run fits inside g.
func readsAlong(g *grid.Grid[rune], p grid.Position, d grid.Offset, w []rune) bool {
	for i := 1; i < len(w); i++ {
		p = p.Add(d)
		r, err := g.Get(p)
		if err != nil || r != w[i] {
			return false
		}
	}
	return true
}

func readsEither(diag, fwd, rev []rune) bool {
	return slices.Equal(diag, fwd) || slices.Equal(diag, rev)
}
