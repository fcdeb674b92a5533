// Package astar_test exercises blocking search correctness, maxFCost
// pruning, the fast-solver splice, and the cooperative pause/resume driver.
package astar_test

import (
	"sync"
	"testing"
	"time"

	"github.com/bgw/flood-it-game/astar"
	"github.com/stretchr/testify/require"
)

// grid is a tiny 2D graph fixture: nodes are [2]int coordinates on an NxN
// board, connected 4-ways, all step costs 1.
type grid struct{ n int }

func (g grid) neighbors(p [2]int) []([2]int) {
	var out [][2]int
	deltas := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range deltas {
		np := [2]int{p[0] + d[0], p[1] + d[1]}
		if np[0] >= 0 && np[0] < g.n && np[1] >= 0 && np[1] < g.n {
			out = append(out, np)
		}
	}
	return out
}

func manhattan(a, b [2]int) float64 {
	dx := a[0] - b[0]
	if dx < 0 {
		dx = -dx
	}
	dy := a[1] - b[1]
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

func key(p [2]int) string {
	return string(rune('a'+p[0])) + string(rune('a'+p[1]))
}

// ------------------------------------------------------------------------
// 1. Blocking search correctness.
// ------------------------------------------------------------------------

func TestSearch_FindsShortestPathOnGrid(t *testing.T) {
	g := grid{n: 5}
	start := [2]int{0, 0}
	goal := [2]int{4, 4}

	path, err := astar.Search(
		start,
		func(p [2]int) bool { return p == goal },
		g.neighbors,
		func(a, b [2]int) float64 { return 1 },
		astar.WithHeuristic(func(p [2]int) float64 { return manhattan(p, goal) }),
		astar.WithGetKey(key),
	)
	require.NoError(t, err)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	require.Len(t, path, 9) // Manhattan distance 8, inclusive of both ends
}

func TestSearch_NoPathFound(t *testing.T) {
	start := 0
	_, err := astar.Search(
		start,
		func(n int) bool { return n == 99 },
		func(n int) []int { return nil },
		func(a, b int) float64 { return 1 },
	)
	require.ErrorIs(t, err, astar.ErrNoPathFound)
}

func TestSearch_StartIsGoal(t *testing.T) {
	path, err := astar.Search(
		5,
		func(n int) bool { return n == 5 },
		func(n int) []int { return nil },
		func(a, b int) float64 { return 1 },
	)
	require.NoError(t, err)
	require.Equal(t, []int{5}, path)
}

// ------------------------------------------------------------------------
// 2. maxFCost pruning.
// ------------------------------------------------------------------------

func TestSearch_MaxFCostPrunesFarNodes(t *testing.T) {
	g := grid{n: 5}
	start := [2]int{0, 0}
	goal := [2]int{4, 4}

	_, err := astar.Search(
		start,
		func(p [2]int) bool { return p == goal },
		g.neighbors,
		func(a, b [2]int) float64 { return 1 },
		astar.WithGetKey(key),
		astar.WithMaxFCost[[2]int](2),
	)
	require.ErrorIs(t, err, astar.ErrNoPathFound)
}

// ------------------------------------------------------------------------
// 3. fastSolver splice.
// ------------------------------------------------------------------------

func TestSearch_FastSolverSplicesShortcut(t *testing.T) {
	// Linear chain 0-1-2-3-4-5; fastSolver from node 1 claims to reach the
	// goal (5) in cost 1, which must fire since it beats the remaining
	// true distance (4).
	neighbors := func(n int) []int {
		switch n {
		case 0:
			return []int{1}
		case 1:
			return []int{0, 2}
		case 2:
			return []int{1, 3}
		case 3:
			return []int{2, 4}
		case 4:
			return []int{3, 5}
		default:
			return nil
		}
	}

	path, err := astar.Search(
		0,
		func(n int) bool { return n == 5 },
		neighbors,
		func(a, b int) float64 { return 1 },
		// A generous heuristic stands in for the true remaining cost, so
		// the fast-solver's cost=1 claim for node 1 fires (cost <= f - g).
		astar.WithHeuristic(func(n int) float64 { return 5 }),
		astar.WithFastSolver(func(n int) (float64, []int, bool) {
			if n == 1 {
				return 1, []int{1, 5}, true
			}
			return 0, nil, false
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 5}, path)
}

// ------------------------------------------------------------------------
// 4. Cooperative pause/resume.
// ------------------------------------------------------------------------

func TestSearchAsync_RunsToCompletion(t *testing.T) {
	g := grid{n: 4}
	start := [2]int{0, 0}
	goal := [2]int{3, 3}

	var wg sync.WaitGroup
	wg.Add(1)
	var gotPath [][2]int
	var gotErr error

	h := astar.SearchAsync(
		start,
		func(p [2]int) bool { return p == goal },
		g.neighbors,
		func(a, b [2]int) float64 { return 1 },
		astar.WithGetKey(key),
		astar.WithAsyncBlockSize[[2]int](2),
		astar.WithCallback(func(path [][2]int, err error) {
			gotPath, gotErr = path, err
			wg.Done()
		}),
	)
	require.NotNil(t, h)

	waitTimeout(t, &wg, time.Second)
	require.NoError(t, gotErr)
	require.Equal(t, goal, gotPath[len(gotPath)-1])
}

func TestSearchAsync_PauseHaltsBeforeCallback(t *testing.T) {
	g := grid{n: 50}
	start := [2]int{0, 0}
	goal := [2]int{49, 49}

	called := make(chan struct{}, 1)
	h := astar.SearchAsync(
		start,
		func(p [2]int) bool { return p == goal },
		g.neighbors,
		func(a, b [2]int) float64 { return 1 },
		astar.WithGetKey(key),
		astar.WithAsyncBlockSize[[2]int](1),
		astar.WithCallback(func([][2]int, error) { called <- struct{}{} }),
	)
	h.Pause()

	select {
	case <-called:
		t.Fatal("callback fired despite Pause")
	case <-time.After(50 * time.Millisecond):
	}

	h.Resume()
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("search never completed after Resume")
	}
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	c := make(chan struct{})
	go func() {
		wg.Wait()
		close(c)
	}()
	select {
	case <-c:
	case <-time.After(d):
		t.Fatal("timed out waiting for callback")
	}
}
