package astar

import (
	"runtime"
	"sync"
)

// Handle is the control surface for a cooperative search started by
// SearchAsync: Pause halts the search at the next iteration boundary, Resume
// restarts it from the exact saved state. Resume is idempotent when the
// search isn't paused, and a paused search may be dropped and
// garbage-collected without ever resuming.
type Handle[N any] struct {
	mu     sync.Mutex
	r      *runner[N]
	paused bool
	done   bool
}

// SearchAsync starts a cooperative A* search. opts.Callback (if unset,
// defaults to a no-op) receives the final path or error; opts.AsyncBlockSize
// iterations run per burst before yielding. The search begins running
// immediately in its own goroutine and returns a Handle for pausing it.
func SearchAsync[N any](start N, isEnd func(N) bool, neighbors func(N) []N, distance func(N, N) float64, opts ...Option[N]) *Handle[N] {
	r := newRunner(start, isEnd, neighbors, distance, opts...)
	if r.opts.Callback == nil {
		r.opts.Callback = func([]N, error) {}
	}

	h := &Handle[N]{r: r}
	h.scheduleBurst()
	return h
}

// scheduleBurst launches a goroutine running up to AsyncBlockSize
// iterations, yielding the processor between iterations and, if the burst
// completes without finishing the search and without being paused in the
// meantime, scheduling the next burst.
func (h *Handle[N]) scheduleBurst() {
	go h.runBurst()
}

func (h *Handle[N]) runBurst() {
	for i := 0; i < h.r.opts.AsyncBlockSize; i++ {
		h.mu.Lock()
		if h.paused || h.done {
			h.mu.Unlock()
			return
		}
		h.mu.Unlock()

		done, path, err := h.r.step()
		if done {
			h.mu.Lock()
			h.done = true
			h.mu.Unlock()
			h.r.opts.Callback(path, err)
			return
		}
		runtime.Gosched()
	}

	h.mu.Lock()
	paused := h.paused
	h.mu.Unlock()
	if !paused {
		h.scheduleBurst()
	}
}

// Pause sets a flag that the running burst checks before each iteration:
// the search halts at the next iteration boundary, and no further burst is
// scheduled.
func (h *Handle[N]) Pause() {
	h.mu.Lock()
	h.paused = true
	h.mu.Unlock()
}

// Resume reschedules a burst if the search is paused and not yet finished.
// It is a no-op if the search is already running or already done.
func (h *Handle[N]) Resume() {
	h.mu.Lock()
	if h.done || !h.paused {
		h.mu.Unlock()
		return
	}
	h.paused = false
	h.mu.Unlock()
	h.scheduleBurst()
}
