package patrol

import (
	"fmt"

	"github.com/katalvlaran/gridpuzzles/grid"
)

// Direction is one of Up, Right, Down, Left.
// The four constants are the only meaningful values; methods reduce any
// other value modulo 4, so every function over Direction is total.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in turn-right order.
var Directions = [4]Direction{Up, Right, Down, Left}

var (
	deltas  = [4]grid.Offset{{DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: -1, DY: 0}}
	symbols = [4]rune{'^', '>', 'v', '<'}
	names   = [4]string{"Up", "Right", "Down", "Left"}
)

// TurnRight rotates clockwise: Up→Right→Down→Left→Up.
func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

// Delta returns the unit movement vector; y grows downward.
func (d Direction) Delta() grid.Offset {
	return deltas[d&3]
}

// Symbol returns the board character for an actor facing d.
func (d Direction) Symbol() rune {
	return symbols[d&3]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return names[d&3]
}

// ParseDirection maps '^', '>', 'v', '<' to Up, Right, Down, Left.
// Any other rune fails with ErrInvalidSymbol.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case '>':
		return Right, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q is not a direction", ErrInvalidSymbol, r)
}
