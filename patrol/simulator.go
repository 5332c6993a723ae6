package patrol

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/gridpuzzles/grid"
)

// State is the simulator's lifecycle phase.
type State uint8

const (
	// Running means the actor is on the board.
	Running State = iota
	// Exited is terminal: the actor stepped past the boundary.
	Exited
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Exited {
		return "Exited"
	}
	return "Running"
}

// Outcome reports what a single Step did.
type Outcome uint8

const (
	// Moved: the actor advanced one cell.
	Moved Outcome = iota
	// Turned: an obstacle was ahead; the actor rotated right in place.
	Turned
	// Departed: the next cell was outside the board; the run is over.
	Departed
)

// Result holds the metrics of a completed run.
type Result struct {
	Steps    int // moves, counting revisits
	Distinct int // size of the visited set
	Turns    int // zero-distance rotations
}

// Simulator drives one actor over a board it mutates in place.
type Simulator struct {
	board   *grid.Grid[Cell]
	pos     grid.Position
	dir     Direction
	state   State
	steps   int
	turns   int
	visited map[grid.Position]struct{}
	limit   int
	log     *slog.Logger
}

// New locates the actor on board and prepares a run.
// Returns ErrNoActor when the board has no actor and ErrMultipleActors
// when it has more than one.
// Complexity: O(W×H).
func New(board *grid.Grid[Cell], options ...Option) (*Simulator, error) {
	// 1. Apply options
	opts := defaultSimOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Locate exactly one actor
	var (
		start  grid.Position
		actor  Cell
		actors int
	)
	board.Each(func(p grid.Position, c Cell) bool {
		if c.IsActor() {
			if actors == 0 {
				start, actor = p, c
			}
			actors++
		}
		return true
	})
	switch {
	case actors == 0:
		return nil, ErrNoActor
	case actors > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleActors, actors)
	}
	// 3. Derive the transition budget
	limit := opts.maxSteps
	if limit <= 0 {
		limit = 4 * board.Len()
	}

	return &Simulator{
		board:   board,
		pos:     start,
		dir:     actor.Dir,
		state:   Running,
		visited: make(map[grid.Position]struct{}),
		limit:   limit,
		log:     opts.logger,
	}, nil
}

// Run is New followed by RunToCompletion.
func Run(board *grid.Grid[Cell], options ...Option) (Result, error) {
	sim, err := New(board, options...)
	if err != nil {
		return Result{}, err
	}
	return sim.RunToCompletion()
}

// State returns Running or Exited.
func (s *Simulator) State() State { return s.state }

// Position returns the actor's current cell (its last cell once Exited).
func (s *Simulator) Position() grid.Position { return s.pos }

// Direction returns the actor's heading.
func (s *Simulator) Direction() Direction { return s.dir }

// Steps returns the number of moves so far.
func (s *Simulator) Steps() int { return s.steps }

// Turns returns the number of in-place rotations so far.
func (s *Simulator) Turns() int { return s.turns }

// VisitedCount returns the size of the visited set.
func (s *Simulator) VisitedCount() int { return len(s.visited) }

// Visited returns the visited positions in row-major order.
func (s *Simulator) Visited() []grid.Position {
	out := make([]grid.Position, 0, len(s.visited))
	for p := range s.visited {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Position) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return out
}

// Result snapshots the current metrics.
func (s *Simulator) Result() Result {
	return Result{Steps: s.steps, Distinct: len(s.visited), Turns: s.turns}
}

// Step applies one transition: leave the board, turn right in front of an
// obstacle, or move one cell forward. Stepping an Exited simulator is a
// no-op reporting Departed.
func (s *Simulator) Step() (Outcome, error) {
	if s.state == Exited {
		return Departed, nil
	}
	if err := s.checkBudget(); err != nil {
		return Departed, err
	}
	ahead, cell, ok := s.peek()
	if !ok {
		s.exit()
		return Departed, nil
	}
	if cell.Kind == Obstacle {
		return Turned, s.Turn()
	}
	return Moved, s.moveTo(ahead)
}

// StepUntilBlocked moves forward while the next cell is free and on the
// board, returning the number of moves made by this call. It stops in
// front of an obstacle without turning, or transitions to Exited at the
// boundary.
func (s *Simulator) StepUntilBlocked() (int, error) {
	moved := 0
	for s.state == Running {
		ahead, cell, ok := s.peek()
		if !ok {
			s.exit()
			break
		}
		if cell.Kind == Obstacle {
			break
		}
		if err := s.checkBudget(); err != nil {
			return moved, err
		}
		if err := s.moveTo(ahead); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}

// Turn rotates the actor right in place. The position does not change.
func (s *Simulator) Turn() error {
	if s.state == Exited {
		return nil
	}
	s.dir = s.dir.TurnRight()
	s.turns++
	s.log.Debug("patrol turn", "pos", s.pos.String(), "dir", s.dir.String(), "steps", s.steps)
	return s.board.Put(s.pos, ActorCell(s.dir))
}

// RunToCompletion alternates StepUntilBlocked with a right turn until the
// actor leaves the board, then returns the run's metrics.
func (s *Simulator) RunToCompletion() (Result, error) {
	for s.state == Running {
		if _, err := s.StepUntilBlocked(); err != nil {
			return s.Result(), err
		}
		if s.state == Exited {
			break
		}
		if err := s.checkBudget(); err != nil {
			return s.Result(), err
		}
		if err := s.Turn(); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), nil
}

// Trail renders the board with every visited cell marked 'X' and the actor
// drawn on top while it is still on the board.
func (s *Simulator) Trail() []string {
	return grid.Render(s.trailGrid(), func(r rune) rune { return r })
}

func (s *Simulator) trailGrid() *grid.Grid[rune] {
	out, _ := grid.Map(s.board, func(p grid.Position, c Cell) (rune, error) {
		if _, ok := s.visited[p]; ok && !c.IsActor() {
			return 'X', nil
		}
		return c.Symbol(), nil
	})
	return out
}

// peek returns the cell ahead of the actor, or ok=false past the boundary.
func (s *Simulator) peek() (grid.Position, Cell, bool) {
	ahead, ok := s.board.Step(s.pos, s.dir.Delta())
	if !ok {
		return grid.Position{}, Cell{}, false
	}
	cell, err := s.board.Get(ahead)
	if err != nil {
		return grid.Position{}, Cell{}, false
	}
	return ahead, cell, true
}

// moveTo clears the current cell and places the actor at ahead.
func (s *Simulator) moveTo(ahead grid.Position) error {
	if err := s.board.Put(s.pos, EmptyCell()); err != nil {
		return err
	}
	if err := s.board.Put(ahead, ActorCell(s.dir)); err != nil {
		return err
	}
	s.pos = ahead
	s.visited[ahead] = struct{}{}
	s.steps++
	return nil
}

// exit removes the actor from the board and enters the terminal state.
func (s *Simulator) exit() {
	_ = s.board.Put(s.pos, EmptyCell())
	s.state = Exited
	s.log.Debug("patrol exit", "pos", s.pos.String(), "dir", s.dir.String(),
		"steps", s.steps, "distinct", len(s.visited), "turns", s.turns)
}

func (s *Simulator) checkBudget() error {
	if s.steps+s.turns >= s.limit {
		return fmt.Errorf("%w: %d transitions at %s facing %s", ErrStepLimit, s.steps+s.turns, s.pos, s.dir)
	}
	return nil
}
