package floodit

import (
	"strconv"

	"github.com/bgw/flood-it-game/board"
	"github.com/bgw/flood-it-game/navmesh"
)

// hardPositions returns the three "hard" target positions for an n×n
// board: top-right, bottom-left, and bottom-right. They're the corners
// farthest from the top-left start cell and the last to typically join its
// blob, which makes them useful anchors for a lower-bound heuristic.
func hardPositions(n int) []int {
	return []int{n - 1, n * (n - 1), n*n - 1}
}

// representativePositions maps each blob identifier in a blobified board
// to one position belonging to it (the first one scanned), so that a path
// of blob IDs can be resolved back to board positions or colors without
// re-flooding anything.
func representativePositions(blobified []uint16) map[uint16]int {
	rep := make(map[uint16]int)
	for p, id := range blobified {
		if _, ok := rep[id]; !ok {
			rep[id] = p
		}
	}
	return rep
}

// cornerMeshes holds one navigation mesh per hard target, all built once
// over the blob-adjacency graph of a single starting board. The mesh keys
// (blob IDs) stay meaningful for the lifetime of a search: the blob-graph
// topology a mesh was built over never changes, only which blobs later
// join the top-left blob.
type cornerMeshes struct {
	blobifiedStart []uint16
	blobRep        map[uint16]int
	targets        []int
	meshes         map[int]*navmesh.Mesh
}

func newCornerMeshes(start board.Board) (*cornerMeshes, error) {
	blobifiedStart := start.BlobifiedBoard()
	g, startBlobOf := start.BlobGraph()
	targets := hardPositions(start.Size())

	meshes := make(map[int]*navmesh.Mesh, len(targets))
	for _, target := range targets {
		mesh, err := navmesh.Build(g, startBlobOf(target))
		if err != nil {
			return nil, err
		}
		meshes[target] = mesh
	}

	return &cornerMeshes{
		blobifiedStart: blobifiedStart,
		blobRep:        representativePositions(blobifiedStart),
		targets:        targets,
		meshes:         meshes,
	}, nil
}

// pathTo returns the blob-ID path (per the fixed starting blobification)
// from the mesh rooted at target to the blob fromBlob belongs to.
func (c *cornerMeshes) pathTo(target int, fromBlob uint16) ([]string, error) {
	return c.meshes[target].PathTo(board.BlobID(fromBlob))
}

func (c *cornerMeshes) colorOf(b board.Board, blobIDStr string) byte {
	id, _ := strconv.ParseUint(blobIDStr, 10, 16)
	return b.At(c.blobRep[uint16(id)])
}

// GetPositionMesh exposes a single hard corner's navigation-mesh path
// closure directly: the returned function maps any board position to the
// sequence of representative positions, from target to pos, that the
// blob-adjacency mesh considers shortest. target is conventionally one of
// the "hard" corner positions, but GetPositionMesh does not enforce that —
// any position works as a mesh root.
func GetPositionMesh(start board.Board, target int) (func(pos int) ([]int, error), error) {
	g, startBlobOf := start.BlobGraph()
	mesh, err := navmesh.Build(g, startBlobOf(target))
	if err != nil {
		return nil, err
	}

	blobified := start.BlobifiedBoard()
	rep := representativePositions(blobified)

	return func(pos int) ([]int, error) {
		path, err := mesh.PathTo(board.BlobID(blobified[pos]))
		if err != nil {
			return nil, err
		}
		out := make([]int, len(path))
		for i, idStr := range path {
			id, _ := strconv.ParseUint(idStr, 10, 16)
			out[i] = rep[uint16(id)]
		}
		return out, nil
	}, nil
}
