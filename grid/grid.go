package grid

import "fmt"

// Grid is a dense Width×Height container of T values.
// Storage length is fixed at construction; only Set and Ptr mutate cells.
// A Grid is not safe for concurrent mutation; readers may share it freely
// while nobody writes.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a width×height grid with every cell set to T's zero value.
// Zero width or height yields a legal, empty grid.
// Returns ErrNegativeSize if either dimension is negative.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid boundaries.
func (g *Grid[T]) Contains(p Position) bool {
	return g.InBounds(p.X, p.Y)
}

// At returns a copy of the cell at (x,y), or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) (T, error) {
	i, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[i], nil
}

// Ptr returns a pointer to the cell at (x,y) for in-place mutation,
// or ErrOutOfBounds. The pointer stays valid for the grid's lifetime.
// Complexity: O(1).
func (g *Grid[T]) Ptr(x, y int) (*T, error) {
	i, err := g.index(x, y)
	if err != nil {
		return nil, err
	}
	return &g.cells[i], nil
}

// Set stores v at (x,y), or returns ErrOutOfBounds leaving the grid untouched.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// Get is At for a Position.
func (g *Grid[T]) Get(p Position) (T, error) {
	return g.At(p.X, p.Y)
}

// Put is Set for a Position.
func (g *Grid[T]) Put(p Position, v T) error {
	return g.Set(p.X, p.Y, v)
}

// Step returns p+o and true when the result is inside the grid,
// or the zero Position and false otherwise.
// Complexity: O(1).
func (g *Grid[T]) Step(p Position, o Offset) (Position, bool) {
	next := p.Add(o)
	if !g.Contains(next) {
		return Position{}, false
	}
	return next, true
}

// Each calls fn for every cell in row-major order (left to right, top to
// bottom) until fn returns false.
func (g *Grid[T]) Each(fn func(p Position, v T) bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !fn(Position{X: x, Y: y}, g.cells[y*g.width+x]) {
				return
			}
		}
	}
}

// Find returns the first position, in row-major order, whose cell
// satisfies pred.
func (g *Grid[T]) Find(pred func(v T) bool) (Position, bool) {
	var (
		found Position
		ok    bool
	)
	g.Each(func(p Position, v T) bool {
		if pred(v) {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

// Clone returns a deep copy of the cell storage. Cells are copied by value.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Map builds a grid of the same shape by converting every cell with fn,
// visiting cells in row-major order. The first error stops the conversion
// and is returned unchanged.
func Map[T, U any](g *Grid[T], fn func(p Position, v T) (U, error)) (*Grid[U], error) {
	out := &Grid[U]{width: g.width, height: g.height, cells: make([]U, len(g.cells))}
	for i, v := range g.cells {
		u, err := fn(Position{X: i % g.width, Y: i / g.width}, v)
		if err != nil {
			return nil, err
		}
		out.cells[i] = u
	}
	return out, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid[T]) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}
