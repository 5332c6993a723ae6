// Package wordsearch counts occurrences of a word in a character grid.
//
// Two modes are supported:
//
//   - Straight: the word reads along one of eight directions (N, NE, E,
//     SE, S, SW, W, NW) from an origin cell. Each (origin, direction) pair
//     that matches counts once, so a palindrome matches twice per placement.
//   - Cross: two diagonals of len(word) cells share a centre on the word's
//     middle character, and each diagonal independently reads the word
//     forwards or backwards. Each qualifying centre counts once. Words of
//     even length have no centre and always count zero.
//
// Zero matches is a valid result, not an error. The grid is never mutated,
// so a single grid may be searched concurrently.
//
// Complexity (L = len(word)):
//
//   - Straight: O(W×H×8×L) time, O(L) memory.
//   - Cross:    O(W×H×L) time, O(L) memory.
package wordsearch
