package board

import (
	"strconv"

	"github.com/bgw/flood-it-game/blobgraph"
)

// BlobifiedBoard returns a parallel buffer the same length as the board
// where each cell holds a 1-based blob identifier. Identifiers are assigned
// in scanning order: position 0 is swept to N², and whenever an unlabeled
// cell is found its whole blob is flooded with the next unused identifier.
func (b Board) BlobifiedBoard() []uint16 {
	out := make([]uint16, len(b.data))
	var next uint16 = 1

	for p := range b.data {
		if out[p] != 0 {
			continue
		}
		id := next
		next++
		for _, bp := range b.BlobPositions(p) {
			out[bp] = id
		}
	}

	return out
}

// PerimeterBlobs returns the distinct blob identifiers (per BlobifiedBoard)
// among the perimeter blocks of the blob at p, in first-seen order.
func (b Board) PerimeterBlobs(p int) []uint16 {
	blobified := b.BlobifiedBoard()
	var out []uint16
	seen := make(map[uint16]bool)
	for _, pos := range b.PerimeterBlocks(p) {
		id := blobified[pos]
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// BlobCounts returns, for each color present on the board, the number of
// distinct blobs of that color.
func (b Board) BlobCounts() map[byte]int {
	blobified := b.BlobifiedBoard()
	seenBlob := make(map[uint16]bool)
	counts := make(map[byte]int)

	for p, id := range blobified {
		if seenBlob[id] {
			continue
		}
		seenBlob[id] = true
		counts[b.data[p]]++
	}

	return counts
}

// NetBlobCount returns the total number of distinct blobs on the board.
func (b Board) NetBlobCount() int {
	blobified := b.BlobifiedBoard()
	var max uint16
	for _, id := range blobified {
		if id > max {
			max = id
		}
	}
	return int(max)
}

// ColorsSegmented reports whether every color in colors is split across two
// or more distinct blobs.
func (b Board) ColorsSegmented(colors []byte) bool {
	counts := b.BlobCounts()
	for _, c := range colors {
		if counts[c] < 2 {
			return false
		}
	}
	return true
}

// AllBlobsSegmented reports whether every color currently present on the
// board is split across two or more distinct blobs.
func (b Board) AllBlobsSegmented() bool {
	return b.ColorsSegmented(b.Colors())
}

// BlobGraph converts the board into a weighted, undirected *blobgraph.Graph
// whose vertices are blob identifiers (per BlobifiedBoard, formatted as
// decimal strings) and whose edges connect blobs that are adjacent on the
// board, each weighted 1. It is the blob-adjacency substrate package
// navmesh builds navigation meshes over.
//
// startBlobOf returns the vertex ID (per BlobID) of the blob containing
// flat position p, for callers that need to look up a graph vertex from a
// board position without recomputing BlobifiedBoard.
func (b Board) BlobGraph() (g *blobgraph.Graph, startBlobOf func(p int) string) {
	blobified := b.BlobifiedBoard()
	g = blobgraph.New()

	for _, id := range blobified {
		g.AddVertex(BlobID(id))
	}

	seenEdge := make(map[[2]uint16]bool)
	for p, id := range blobified {
		for _, n := range b.AdjacentPositions(p) {
			nid := blobified[n]
			if nid == id {
				continue
			}
			key := [2]uint16{id, nid}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seenEdge[key] {
				continue
			}
			seenEdge[key] = true
			g.AddEdge(BlobID(id), BlobID(nid), 1)
		}
	}

	startBlobOf = func(p int) string {
		return BlobID(blobified[p])
	}

	return g, startBlobOf
}

// BlobID formats a blob identifier as a blobgraph.Graph vertex ID.
func BlobID(id uint16) string {
	return strconv.FormatUint(uint64(id), 10)
}
