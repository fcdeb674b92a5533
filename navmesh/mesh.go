package navmesh

import (
	"fmt"

	"github.com/bgw/flood-it-game/blobgraph"
	"github.com/bgw/flood-it-game/heap"
)

// Mesh is the result of a single Dijkstra pass from one source vertex.
// It answers PathTo queries by walking cameFrom, never re-searching.
type Mesh struct {
	source   string
	minDist  map[string]int64
	cameFrom map[string]string
}

// Build runs Dijkstra from source over g and returns the resulting mesh.
// Every edge weight in g must be non-negative.
func Build(g *blobgraph.Graph, source string) (*Mesh, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge to %s weight=%d", ErrNegativeWeight, e.To, e.Weight)
		}
	}

	m := &Mesh{
		source:   source,
		minDist:  map[string]int64{source: 0},
		cameFrom: map[string]string{},
	}

	visited := make(map[string]bool, g.VertexCount())
	frontier := heap.New[string]()
	frontier.Put(0, source)

	for frontier.Len() > 0 {
		_, u, err := frontier.PopPair()
		if err != nil {
			return nil, fmt.Errorf("navmesh: %w", err)
		}
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.Neighbors(u) {
			v := e.To
			newDist := m.minDist[u] + e.Weight
			if d, ok := m.minDist[v]; ok && newDist >= d {
				continue
			}
			m.minDist[v] = newDist
			m.cameFrom[v] = u
			frontier.Put(float32(newDist), v)
		}
	}

	return m, nil
}

// DistanceTo returns the shortest-path distance from the mesh's source to
// target, or ErrUnreachable if target was never relaxed.
func (m *Mesh) DistanceTo(target string) (int64, error) {
	d, ok := m.minDist[target]
	if !ok {
		return 0, ErrUnreachable
	}
	return d, nil
}

// PathTo reconstructs the shortest path from the mesh's source to target,
// inclusive of both endpoints. Returns ErrUnreachable if target was never
// relaxed during Build.
func (m *Mesh) PathTo(target string) ([]string, error) {
	if target == m.source {
		return []string{m.source}, nil
	}
	if _, ok := m.minDist[target]; !ok {
		return nil, ErrUnreachable
	}

	var path []string
	for cur := target; cur != m.source; {
		path = append(path, cur)
		prev, ok := m.cameFrom[cur]
		if !ok {
			return nil, ErrUnreachable
		}
		cur = prev
	}
	path = append(path, m.source)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
