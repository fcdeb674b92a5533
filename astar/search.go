package astar

// Search runs a blocking A* search from start until isEnd holds for some
// expanded node, and returns the reconstructed path. distance(a, b) must
// return the step cost from a to its neighbor b; neighbors(a) enumerates
// a's outgoing steps.
func Search[N any](start N, isEnd func(N) bool, neighbors func(N) []N, distance func(N, N) float64, opts ...Option[N]) ([]N, error) {
	r := newRunner(start, isEnd, neighbors, distance, opts...)

	for {
		done, path, err := r.step()
		if done {
			return path, err
		}
	}
}
