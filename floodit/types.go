package floodit

// Options configures SolveBoard, SolveBoardAsync, and SolveBottomRight.
type Options struct {
	// Admissible selects the heuristic-composition admissible heuristic
	// (true lower bound, slower) over the default weighted heuristic
	// (non-admissible, empirically near-optimal and much faster).
	Admissible bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the weighted-heuristic configuration.
func DefaultOptions() Options {
	return Options{Admissible: false}
}

// WithAdmissible selects the admissible heuristic.
func WithAdmissible() Option {
	return func(o *Options) { o.Admissible = true }
}
