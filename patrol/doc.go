// Package patrol simulates a single actor walking a bounded grid: it moves
// forward until an obstacle blocks the next cell, turns right in place, and
// carries on until it steps off the grid.
//
// What:
//
//   - Direction: closed four-value cardinal direction with TurnRight and Delta.
//   - Cell: tagged value {Empty, Obstacle, Actor(Direction)} stored in a
//     grid.Grid[Cell].
//   - ParseBoard: text rows ('.', '#', '^', '>', 'v', '<') to a board.
//   - Simulator: step-wise state machine Running(position, direction) → Exited.
//
// Metrics:
//
//   - Steps counts every move, so a revisited cell counts again.
//   - Distinct counts each entered cell once (the visited set). The start
//     cell is included only if the actor walks back onto it.
//   - Turns counts zero-distance rotations.
//
// Steps and Distinct generally differ; both are reported.
//
// Errors:
//
//   - ErrInvalidSymbol: a board character outside the patrol alphabet.
//   - ErrNoActor: the board has no actor cell.
//   - ErrMultipleActors: the board has more than one actor cell.
//   - ErrStepLimit: the run exceeded its transition budget (a loop).
//
// The Simulator owns its board for the duration of a run and does no
// locking; callers must not read the board concurrently with a run.
package patrol
