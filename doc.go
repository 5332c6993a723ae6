// Package gridpuzzles is a set of small puzzle solvers built around one
// reusable piece: a bounded, bounds-checked 2-D grid.
//
// What is in here?
//
//	• grid/      : Grid[T]: fixed-size dense container, Import/Export of text rows
//	• patrol/    : actor walking a board, turning right at obstacles until it exits
//	• wordsearch/: word counting along eight directions or as an X of diagonals
//	• pageorder/ : ordering rules checked and repaired by topological sort
//	• reports/   : strictly monotonic level sequences, with a one-level dampener
//	• listdist/  : distance and similarity of two paired integer lists
//	• mulscan/   : mul(a,b) extraction from noisy text, with do()/don't()
//
// Every solver reads its input as text lines and produces plain integers.
// The puzzle command (cmd/puzzle) reads standard input and prints one
// result per line:
//
//	go run ./cmd/puzzle -part 2 wordsearch < letters.txt
//
// Grid coordinates:
//
//	(0,0) ───► x
//	  │
//	  ▼ y
//
// Out-of-range access returns grid.ErrOutOfBounds; nothing panics on bad
// coordinates.
package gridpuzzles
