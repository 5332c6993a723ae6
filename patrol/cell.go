package patrol

import (
	"fmt"

	"github.com/katalvlaran/gridpuzzles/grid"
)

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// Empty is a free cell. It is the zero Kind, so a fresh grid is all Empty.
	Empty Kind = iota
	// Obstacle blocks movement and forces a turn.
	Obstacle
	// Actor is the patrolling actor; Cell.Dir holds its heading.
	Actor
)

// Cell is one board square. Dir is meaningful only when Kind == Actor.
type Cell struct {
	Kind Kind
	Dir  Direction
}

// EmptyCell returns a free cell.
func EmptyCell() Cell { return Cell{Kind: Empty} }

// ObstacleCell returns a blocking cell.
func ObstacleCell() Cell { return Cell{Kind: Obstacle} }

// ActorCell returns an actor facing d.
func ActorCell(d Direction) Cell { return Cell{Kind: Actor, Dir: d} }

// IsActor reports whether c holds the actor.
func (c Cell) IsActor() bool { return c.Kind == Actor }

// Symbol returns the board character for c.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case Obstacle:
		return '#'
	case Actor:
		return c.Dir.Symbol()
	default:
		return '.'
	}
}

// ParseCell maps a board character to a Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return EmptyCell(), nil
	case '#':
		return ObstacleCell(), nil
	}
	d, err := ParseDirection(r)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q is not a board cell", ErrInvalidSymbol, r)
	}
	return ActorCell(d), nil
}

// ParseBoard imports equal-length rows and converts every character with
// ParseCell. Ragged rows fail with grid.ErrRaggedInput; unknown characters
// fail with ErrInvalidSymbol naming the position.
func ParseBoard(rows []string) (*grid.Grid[Cell], error) {
	raw, err := grid.Import(rows)
	if err != nil {
		return nil, err
	}
	return grid.Map(raw, func(p grid.Position, r rune) (Cell, error) {
		c, err := ParseCell(r)
		if err != nil {
			return Cell{}, fmt.Errorf("at %s: %w", p, err)
		}
		return c, nil
	})
}

// Render returns the board as text rows, the inverse of ParseBoard.
func Render(board *grid.Grid[Cell]) []string {
	return grid.Render(board, Cell.Symbol)
}
