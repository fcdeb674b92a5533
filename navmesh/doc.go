// Package navmesh builds a single-source shortest-path mesh over a blob
// adjacency graph and answers repeated PathTo queries against it without
// re-running the search.
//
// Build runs a single Dijkstra pass, using this module's generic heap.Heap
// as its frontier, from one source vertex, using edge weight as step
// distance. Every PathTo call afterward just walks the resulting
// predecessor chain backward — the mesh amortizes one O((V+E) log V) search
// across however many targets the caller asks about, which is the shape
// package floodit needs for its hard-corner heuristic meshes (built once
// per candidate corner, queried once per search node).
//
// Build has no ReturnPath option: predecessor tracking is always on, since
// a mesh that can't reconstruct paths has no purpose here. There is also no
// MaxDistance or InfEdgeThreshold — blob graphs are small and fully
// non-negative-weighted, so nothing in this module needs to bound
// exploration.
package navmesh
