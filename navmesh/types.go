package navmesh

import "errors"

// ErrNilGraph is returned by Build when given a nil graph.
var ErrNilGraph = errors.New("navmesh: graph is nil")

// ErrSourceNotFound is returned by Build when the source vertex is absent
// from the graph.
var ErrSourceNotFound = errors.New("navmesh: source vertex not found")

// ErrNegativeWeight is returned by Build when an edge has a negative
// weight; Dijkstra's relaxation is only correct for non-negative weights.
var ErrNegativeWeight = errors.New("navmesh: negative edge weight encountered")

// ErrUnreachable is returned by PathTo when the target was never reached
// from the mesh's source.
var ErrUnreachable = errors.New("navmesh: target unreachable from source")
