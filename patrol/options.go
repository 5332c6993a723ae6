package patrol

import "log/slog"

// Option configures a Simulator.
type Option func(*simOptions)

// simOptions holds tunable settings for a Simulator.
type simOptions struct {
	logger   *slog.Logger // Debug records on turns and exit
	maxSteps int          // transition budget; ≤0 means derive from board size
}

// defaultSimOptions returns a discard logger and a size-derived budget.
func defaultSimOptions() simOptions {
	return simOptions{
		logger:   slog.New(slog.DiscardHandler),
		maxSteps: 0,
	}
}

// WithLogger installs l for Debug tracing. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *simOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxSteps caps the number of transitions (moves plus turns) a run may
// make before failing with ErrStepLimit. n ≤ 0 restores the default of
// 4×Width×Height, which a patrol that eventually exits can never reach.
func WithMaxSteps(n int) Option {
	return func(o *simOptions) {
		o.maxSteps = n
	}
}
