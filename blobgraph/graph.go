package blobgraph

// Graph is an undirected, weighted, simple graph over string-identified
// vertices, stored as an adjacency list. It has no directed mode and no
// mixed orientation. It does not reject parallel edges or self-loops itself
// (see AddEdge); this module's only graphs are board.Board.BlobGraph's
// blob-adjacency graphs, which never add either.
type Graph struct {
	vertices map[string]bool
	adj      map[string][]Edge
}

// New constructs an empty Graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]bool),
		adj:      make(map[string][]Edge),
	}
}

// AddVertex inserts id if it is not already present. Adding an existing
// vertex is a no-op.
func (g *Graph) AddVertex(id string) {
	g.vertices[id] = true
}

// AddEdge inserts an undirected edge of the given weight between a and b,
// adding either endpoint that isn't already a vertex. Calling AddEdge twice
// for the same pair adds a second parallel edge; callers that want a simple
// graph (board.Board.BlobGraph does) are responsible for deduplicating
// before calling.
func (g *Graph) AddEdge(a, b string, weight int64) {
	g.AddVertex(a)
	g.AddVertex(b)
	g.adj[a] = append(g.adj[a], Edge{To: b, Weight: weight})
	g.adj[b] = append(g.adj[b], Edge{To: a, Weight: weight})
}

// HasVertex reports whether id was added via AddVertex or as an AddEdge
// endpoint.
func (g *Graph) HasVertex(id string) bool {
	return g.vertices[id]
}

// VertexCount returns the number of distinct vertices in the graph.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// Neighbors returns id's incident edges. Returns nil for a vertex with no
// edges, including one that was never added at all.
func (g *Graph) Neighbors(id string) []Edge {
	return g.adj[id]
}

// Edges returns every edge in the graph, each appearing once per direction
// (an edge between a and b appears once rooted at a and once at b) — enough
// for a caller that only needs to scan weights, such as navmesh.Build's
// negative-weight pre-check.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, edges := range g.adj {
		out = append(out, edges...)
	}
	return out
}
