package grid

import "fmt"

// Position is a cell coordinate. Positions handed out by a Grid are always
// in range for that grid; a Position built by hand must be checked with
// InBounds (or produced by Step) before use.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by o. The result is not bounds-checked.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Offset is a signed displacement between two positions.
type Offset struct {
	DX, DY int
}

// Scale multiplies both components by k.
func (o Offset) Scale(k int) Offset {
	return Offset{DX: o.DX * k, DY: o.DY * k}
}

// Cardinal lists the four orthogonal unit offsets: N, E, S, W.
var Cardinal = []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Compass lists all eight unit offsets clockwise from north:
// N, NE, E, SE, S, SW, W, NW.
var Compass = []Offset{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
