package navigation

import (
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/routes"
)

// Observer is called with the new current path after every change.
type Observer func(path string)

// Unsubscribe removes an observer. Calling it more than once is harmless.
type Unsubscribe func()

// Event is the UI event that triggered a navigation, e.g. a link click.
// Its default action (a full page load) must be suppressed.
type Event interface {
	PreventDefault()
}

type subscription struct {
	id uint64
	fn Observer
}

// Controller owns the current path and the two ways it changes:
// Navigate for in-app navigation and OnPopState for history moves.
// Every change notifies all observers, in registration order, exactly once.
type Controller struct {
	history History

	// navMu serializes a mutation together with its notification pass.
	navMu   sync.Mutex
	current *atomic.String

	subMu  sync.Mutex
	subs   []subscription
	nextID *atomic.Uint64
}

// NewController creates a Controller that pushes onto history.
// The current path starts at history's location when it implements Locator
// and reports an absolute path, and at "/" otherwise.
func NewController(history History) *Controller {
	start := constants.RootPath
	if loc, ok := history.(Locator); ok {
		if p := loc.Location(); strings.HasPrefix(p, "/") {
			start = p
		}
	}

	return &Controller{
		history: history,
		current: atomic.NewString(start),
		nextID:  atomic.NewUint64(0),
	}
}

// Current returns the current path. It never blocks.
func (c *Controller) Current() string {
	return c.current.Load()
}

// Navigate pushes path onto the history, makes it current and notifies observers.
func (c *Controller) Navigate(path string) {
	c.navMu.Lock()
	defer c.navMu.Unlock()

	if c.history != nil {
		c.history.Push(path)
	}
	c.setAndNotify(path, "navigate")
}

// Activate handles a link activation: it suppresses the event's default
// action and navigates to path.
func (c *Controller) Activate(evt Event, path string) {
	if evt != nil {
		evt.PreventDefault()
	}
	c.Navigate(path)
}

// OnPopState records that the history moved to path.
// It does not push: the history already points at path.
func (c *Controller) OnPopState(path string) {
	c.navMu.Lock()
	defer c.navMu.Unlock()

	c.setAndNotify(path, "popstate")
}

// Traverse moves m's cursor by delta and records the new path, holding the
// same lock as Navigate across both. Observers are notified before it returns.
func (c *Controller) Traverse(m Mover, delta int) (string, bool) {
	c.navMu.Lock()
	defer c.navMu.Unlock()

	path, ok := m.Move(delta)
	if !ok {
		return "", false
	}
	c.setAndNotify(path, "popstate")
	return path, true
}

// Back moves m one entry back. See Traverse.
func (c *Controller) Back(m Mover) bool {
	_, ok := c.Traverse(m, -1)
	return ok
}

// Forward moves m one entry forward. See Traverse.
func (c *Controller) Forward(m Mover) bool {
	_, ok := c.Traverse(m, 1)
	return ok
}

// setAndNotify must be called with navMu held.
func (c *Controller) setAndNotify(path, trigger string) {
	prev := c.current.Swap(path)
	internal.GetInternalLogger().Debug("Path changed", "from", prev, "to", path, "trigger", trigger)

	c.subMu.Lock()
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.subMu.Unlock()

	for _, s := range subs {
		s.fn(path)
	}
}

// Subscribe registers fn to be called after every change.
// Observers must not call Navigate, OnPopState or Traverse from inside fn.
func (c *Controller) Subscribe(fn Observer) Unsubscribe {
	id := c.nextID.Inc()

	c.subMu.Lock()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// CurrentView resolves the current path against table.
// It is computed on every call so it always reflects the latest path.
func (c *Controller) CurrentView(table *routes.Table) (routes.ViewRef, bool) {
	return table.Resolve(c.Current())
}

// Subscribers returns the number of registered observers.
func (c *Controller) Subscribers() int {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	return len(c.subs)
}
