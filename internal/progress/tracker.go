// Package progress aggregates completion across concurrent installs and owns
// the terminal area the progress display draws into.
package progress

import (
	"sync"
	"sync/atomic"
)

// State is a point-in-time view of a Tracker.
type State struct {
	Completed int
	Total     int
}

// Done reports whether every unit of work has completed.
func (s State) Done() bool {
	return s.Completed >= s.Total
}

// Renderer draws tracker state. The Tracker serializes every call, so
// implementations need no locking of their own.
type Renderer interface {
	Start(total int)
	Tick(state State)
	Println(line string)
	Finish(state State)
}

// Tracker counts completed units of work against a fixed total.
// Advance may be called from any goroutine.
type Tracker struct {
	total     int64
	completed atomic.Int64

	mu       sync.Mutex
	renderer Renderer
	finished bool
}

// Start returns a tracker for total units of work and starts r.
// A negative total is treated as zero; a nil r renders nothing.
func Start(total int, r Renderer) *Tracker {
	if total < 0 {
		total = 0
	}
	if r == nil {
		r = NopRenderer{}
	}
	t := &Tracker{total: int64(total), renderer: r}
	r.Start(total)
	return t
}

// Advance records one completed unit and returns the new state. Calls past
// the total are clamped and leave the state unchanged.
func (t *Tracker) Advance() State {
	for {
		cur := t.completed.Load()
		if cur >= t.total {
			return t.state(cur)
		}
		if t.completed.CompareAndSwap(cur, cur+1) {
			t.render()
			return t.state(cur + 1)
		}
	}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() State {
	return t.state(t.completed.Load())
}

// Println writes line above the progress display.
func (t *Tracker) Println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer.Println(line)
}

// Finish renders the final state and releases the renderer. Later calls are no-ops.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	t.finished = true
	t.renderer.Finish(t.Snapshot())
}

func (t *Tracker) render() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	// Reading under the lock keeps rendered values monotonic.
	t.renderer.Tick(t.Snapshot())
}

func (t *Tracker) state(completed int64) State {
	return State{Completed: int(completed), Total: int(t.total)}
}
