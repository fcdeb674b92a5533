// Package blobgraph_test exercises vertex/edge insertion and the queries
// navmesh.Build relies on: neighbor lookup, vertex presence, and the full
// edge list used for weight validation.
package blobgraph_test

import (
	"testing"

	"github.com/bgw/flood-it-game/blobgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Vertex and edge insertion.
// ------------------------------------------------------------------------

func TestAddVertex_IsIdempotent(t *testing.T) {
	g := blobgraph.New()
	g.AddVertex("a")
	g.AddVertex("a")

	require.True(t, g.HasVertex("a"))
	require.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_AddsBothEndpointsAsVertices(t *testing.T) {
	g := blobgraph.New()
	g.AddEdge("a", "b", 3)

	require.True(t, g.HasVertex("a"))
	require.True(t, g.HasVertex("b"))
	require.Equal(t, 2, g.VertexCount())
}

// ------------------------------------------------------------------------
// 2. Adjacency is undirected.
// ------------------------------------------------------------------------

func TestAddEdge_IsUndirected(t *testing.T) {
	g := blobgraph.New()
	g.AddEdge("a", "b", 3)

	assert.Equal(t, []blobgraph.Edge{{To: "b", Weight: 3}}, g.Neighbors("a"))
	assert.Equal(t, []blobgraph.Edge{{To: "a", Weight: 3}}, g.Neighbors("b"))
}

func TestNeighbors_EmptyForUnknownVertex(t *testing.T) {
	g := blobgraph.New()
	assert.Nil(t, g.Neighbors("missing"))
}

// ------------------------------------------------------------------------
// 3. Edges reports the full edge list.
// ------------------------------------------------------------------------

func TestEdges_CoversEveryInsertedEdge(t *testing.T) {
	g := blobgraph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)

	edges := g.Edges()
	// Each undirected edge is stored rooted at both endpoints.
	require.Len(t, edges, 4)

	var weights []int64
	for _, e := range edges {
		weights = append(weights, e.Weight)
	}
	assert.ElementsMatch(t, []int64{1, 1, 2, 2}, weights)
}
