package patrol

import "errors"

// Sentinel errors for patrol operations.
var (
	// ErrInvalidSymbol indicates a character outside the patrol alphabet.
	ErrInvalidSymbol = errors.New("patrol: invalid symbol")
	// ErrNoActor indicates a board without an actor cell.
	ErrNoActor = errors.New("patrol: no actor on board")
	// ErrMultipleActors indicates a board with more than one actor cell.
	ErrMultipleActors = errors.New("patrol: more than one actor on board")
	// ErrStepLimit indicates the run did not exit within its transition budget.
	ErrStepLimit = errors.New("patrol: step limit exceeded")
)
