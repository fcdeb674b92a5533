// Package floodit_test exercises heuristic construction, the solver entry
// points, and a few concrete scenarios: a filled board already being
// terminal, and the weighted solver staying close to greedy.
package floodit_test

import (
	"testing"
	"time"

	"github.com/bgw/flood-it-game/board"
	"github.com/bgw/flood-it-game/floodit"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Heuristic construction.
// ------------------------------------------------------------------------

func TestAdmissibleHeuristic_ZeroOnFilledBoard(t *testing.T) {
	b, err := board.New(make([]byte, 16))
	require.NoError(t, err)

	h, err := floodit.AdmissibleHeuristic(b)
	require.NoError(t, err)
	require.Equal(t, 0.0, h(b))
}

func TestAdmissibleHeuristic_PositiveOnNonUniformBoard(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	h, err := floodit.AdmissibleHeuristic(b)
	require.NoError(t, err)
	require.Greater(t, h(b), 0.0)
}

func TestWeightedHeuristic_DominatesAdmissibleByTenX(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	admissible, err := floodit.AdmissibleHeuristic(b)
	require.NoError(t, err)
	weighted, err := floodit.WeightedHeuristic(b)
	require.NoError(t, err)

	require.GreaterOrEqual(t, weighted(b), 10*admissible(b))
}

// ------------------------------------------------------------------------
// 2. SolveBoard: filled board solves in one state (zero moves).
// ------------------------------------------------------------------------

func TestSolveBoard_FilledBoardIsAlreadyTerminal(t *testing.T) {
	b, err := board.New(make([]byte, 25))
	require.NoError(t, err)

	path, err := floodit.SolveBoard(b)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.True(t, b.Equal(path[0]))
}

// ------------------------------------------------------------------------
// 3. SolveBoard: a board one move from uniform.
// ------------------------------------------------------------------------

func TestSolveBoard_OneMoveToUniform(t *testing.T) {
	b, err := board.Parse("01\n11")
	require.NoError(t, err)

	path, err := floodit.SolveBoard(b)
	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Equal(t, 1, len(path[len(path)-1].Colors()))
}

func TestSolveBoard_AdmissibleModeReachesUniform(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	path, err := floodit.SolveBoard(b, floodit.WithAdmissible())
	require.NoError(t, err)
	require.True(t, b.Equal(path[0]))
	require.Equal(t, 1, len(path[len(path)-1].Colors()))
}

// ------------------------------------------------------------------------
// 4. Weighted solver length stays close to the greedy walker's.
// ------------------------------------------------------------------------

func TestSolveBoard_WeightedCloseToGreedy(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	weighted, err := floodit.SolveBoard(b)
	require.NoError(t, err)

	greedyPath, err := floodit.SolveBoardGreedy(b, 0)
	require.NoError(t, err)

	require.LessOrEqual(t, len(weighted), len(greedyPath)+5)
}

func TestSolveBoardGreedy_LookAheadStillReachesUniform(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	path, err := floodit.SolveBoardGreedy(b, 1)
	require.NoError(t, err)
	require.Equal(t, 1, len(path[len(path)-1].Colors()))
}

// ------------------------------------------------------------------------
// 5. SolveBottomRight bounds a full solve.
// ------------------------------------------------------------------------

func TestSolveBottomRight_JoinsCorner(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	path, err := floodit.SolveBottomRight(b)
	require.NoError(t, err)

	last := path[len(path)-1]
	joined := false
	for _, p := range last.BlobPositions(0) {
		if p == b.Len()-1 {
			joined = true
		}
	}
	require.True(t, joined)
}

// ------------------------------------------------------------------------
// 6. GetPositionMesh exposes a single corner's path closure.
// ------------------------------------------------------------------------

func TestGetPositionMesh_ResolvesToQueriedBlob(t *testing.T) {
	b, err := board.Parse("0012\n0223\n1332\n1144")
	require.NoError(t, err)

	mesh, err := floodit.GetPositionMesh(b, b.Len()-1)
	require.NoError(t, err)

	path, err := mesh(0)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	blobified := b.BlobifiedBoard()
	require.Equal(t, blobified[0], blobified[path[len(path)-1]])
}

// ------------------------------------------------------------------------
// 7. Async solving completes and matches blocking mode.
// ------------------------------------------------------------------------

func TestSolveBoardAsync_MatchesBlocking(t *testing.T) {
	b, err := board.Parse("01\n11")
	require.NoError(t, err)

	blocking, err := floodit.SolveBoard(b)
	require.NoError(t, err)

	done := make(chan struct{})
	var asyncPath []board.Board
	var asyncErr error

	handle, err := floodit.SolveBoardAsync(b, func(path []board.Board, err error) {
		asyncPath, asyncErr = path, err
		close(done)
	})
	require.NoError(t, err)
	require.NotNil(t, handle)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async solve never completed")
	}
	require.NoError(t, asyncErr)
	require.Equal(t, len(blocking), len(asyncPath))
}
