package navigation

import (
	"sync"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
)

// History is the "push path, no reload" side of the browser history.
// The controller calls Push once per programmatic navigation.
type History interface {
	Push(path string)
}

// Locator is implemented by histories that know the location the
// application was started at. The controller seeds its state from it.
type Locator interface {
	Location() string
}

// PopStateFunc receives the path the history moved to.
type PopStateFunc func(path string)

// Mover moves a history cursor without emitting popstate.
type Mover interface {
	Move(delta int) (path string, ok bool)
}

// Sequencer runs a cursor move and the state change it causes as one step,
// ordered against every other navigation. *Controller is a Sequencer.
type Sequencer interface {
	Traverse(m Mover, delta int) (path string, ok bool)
}

// MemoryHistory is an in-process history stack with a cursor, the way a
// browser keeps one per tab. Push drops any forward entries; Back and
// Forward move the cursor and emit popstate to listeners.
//
// The zero value is not usable; create one with NewMemoryHistory.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	cursor    int
	listeners []PopStateFunc
	seq       Sequencer
}

// NewMemoryHistory creates a history whose only entry is start.
// An empty start means the root path.
func NewMemoryHistory(start string) *MemoryHistory {
	if start == "" {
		start = constants.RootPath
	}
	return &MemoryHistory{
		entries: []string{start},
	}
}

// Push adds a new entry after the cursor.
// Called when navigating forward to a new path.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
}

// Back moves the cursor one entry back and emits popstate.
// Returns false if already at the oldest entry.
func (h *MemoryHistory) Back() bool {
	return h.Go(-1)
}

// Forward moves the cursor one entry forward and emits popstate.
// Returns false if already at the newest entry.
func (h *MemoryHistory) Forward() bool {
	return h.Go(1)
}

// Go moves the cursor by delta entries and emits popstate.
// A move that would leave the stack is ignored and returns false.
//
// With a Sequencer set, the move and the sequencer's state change happen
// under the sequencer's lock, so a concurrent Push cannot land in between.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	seq := h.seq
	h.mu.Unlock()

	var (
		path string
		ok   bool
	)
	if seq != nil {
		path, ok = seq.Traverse(h, delta)
	} else {
		path, ok = h.Move(delta)
	}
	if !ok {
		return false
	}

	h.mu.Lock()
	listeners := make([]PopStateFunc, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	// Listeners run without the lock so they may read the history.
	for _, fn := range listeners {
		fn(path)
	}
	return true
}

// Move moves the cursor by delta entries without emitting popstate.
func (h *MemoryHistory) Move(delta int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	target := h.cursor + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		return "", false
	}
	h.cursor = target
	return h.entries[target], true
}

// SetSequencer routes every cursor move through seq. Listeners registered
// with Listen still run, after seq has applied the move.
func (h *MemoryHistory) SetSequencer(seq Sequencer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq = seq
}

// Listen registers fn to be called on every popstate.
func (h *MemoryHistory) Listen(fn PopStateFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Location returns the path at the cursor.
func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

// Len returns the number of entries, including forward ones.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	cpy := make([]string, len(h.entries))
	copy(cpy, h.entries)
	return cpy
}

// CanGoBack returns true if Back would move the cursor.
func (h *MemoryHistory) CanGoBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanGoForward returns true if Forward would move the cursor.
func (h *MemoryHistory) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.entries)-1
}
