// Package heap_test exercises Put/PopPair ordering, duplicate-key handling,
// and the EmptyHeap error.
package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bgw/flood-it-game/heap"
	"github.com/stretchr/testify/require"
)

func TestHeap_PopEmpty(t *testing.T) {
	h := heap.New[string]()
	_, _, err := h.PopPair()
	require.ErrorIs(t, err, heap.ErrEmptyHeap)
}

func TestHeap_PopsInAscendingKeyOrder(t *testing.T) {
	h := heap.New[int]()
	keys := []float32{5, 1, 4, 2, 3}
	for i, k := range keys {
		h.Put(k, i)
	}

	var popped []float32
	for h.Len() > 0 {
		k, _, err := h.PopPair()
		require.NoError(t, err)
		popped = append(popped, k)
	}

	require.True(t, sort.SliceIsSorted(popped, func(i, j int) bool { return popped[i] < popped[j] }))
	require.Len(t, popped, len(keys))
}

func TestHeap_DuplicateKeysAllowed(t *testing.T) {
	h := heap.New[string]()
	h.Put(1, "a")
	h.Put(1, "b")
	require.Equal(t, 2, h.Len())

	k1, _, err := h.PopPair()
	require.NoError(t, err)
	k2, _, err := h.PopPair()
	require.NoError(t, err)
	require.Equal(t, float32(1), k1)
	require.Equal(t, float32(1), k2)
}

func TestHeap_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := heap.New[int]()
	const n = 500
	keys := make([]float32, n)
	for i := 0; i < n; i++ {
		keys[i] = float32(rng.Intn(1000))
		h.Put(keys[i], i)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for i := 0; i < n; i++ {
		k, _, err := h.PopPair()
		require.NoError(t, err)
		require.Equal(t, keys[i], k)
	}
}
