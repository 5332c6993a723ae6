// Package grid provides a fixed-size, bounds-checked, dense 2-D container
// for any cell payload type.
//
// What:
//
//   - Grid[T] owns exactly Width×Height cells, addressed by (x, y) with
//     0 ≤ x < Width and 0 ≤ y < Height, stored row-major.
//   - Every in-range coordinate is addressable; there is no "unset" cell.
//     Absence is modelled by T's zero value or an explicit Empty variant.
//   - Import/Export convert between equal-length text rows and Grid[rune].
//   - Step applies an Offset to a Position and re-validates bounds.
//
// Why:
//
//   - Puzzle inputs: character maps, patrol boards, word-search blocks.
//   - One container type shared by every consumer; consumers borrow it.
//
// Complexity:
//
//   - New, Import, Export, Map: O(W×H) time and memory.
//   - At, Ptr, Set, InBounds, Step: O(1).
//   - Each, Find: O(W×H) worst case.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside the declared dimensions.
//   - ErrRaggedInput: imported rows of differing lengths.
//   - ErrNegativeSize: New called with a negative dimension.
//
// Out-of-range access never panics and never clamps; it returns a wrapped
// ErrOutOfBounds so callers can test it with errors.Is.
package grid
