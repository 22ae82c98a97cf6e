package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/routes"
)

// recordingHistory counts pushes without keeping a cursor.
type recordingHistory struct {
	pushes []string
}

func (h *recordingHistory) Push(path string) {
	h.pushes = append(h.pushes, path)
}

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) observe(path string) {
	o.calls = append(o.calls, path)
}

type clickEvent struct {
	prevented int
}

func (e *clickEvent) PreventDefault() {
	e.prevented++
}

func TestNewController_StartsAtRoot(t *testing.T) {
	c := NewController(&recordingHistory{})
	if c.Current() != "/" {
		t.Errorf("Current() = %q, want /", c.Current())
	}
}

func TestNewController_SeedsFromLocator(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"/about", "/about"},
		{"/", "/"},
		{"", "/"},
	}

	for _, tt := range tests {
		c := NewController(NewMemoryHistory(tt.start))
		if c.Current() != tt.want {
			t.Errorf("start %q: Current() = %q, want %q", tt.start, c.Current(), tt.want)
		}
	}
}

type relativeLocator struct{ recordingHistory }

func (relativeLocator) Location() string { return "about" }

func TestNewController_IgnoresRelativeLocation(t *testing.T) {
	c := NewController(&relativeLocator{})
	if c.Current() != "/" {
		t.Errorf("Current() = %q, want /", c.Current())
	}
}

func TestNavigate_PushesOnceAndNotifiesEachObserverOnce(t *testing.T) {
	h := &recordingHistory{}
	c := NewController(h)
	first, second := &recordingObserver{}, &recordingObserver{}
	c.Subscribe(first.observe)
	c.Subscribe(second.observe)

	c.Navigate("/about")

	if c.Current() != "/about" {
		t.Errorf("Current() = %q, want /about", c.Current())
	}
	if diff := cmp.Diff([]string{"/about"}, h.pushes); diff != "" {
		t.Errorf("pushes mismatch (-want +got):\n%s", diff)
	}
	for i, o := range []*recordingObserver{first, second} {
		if diff := cmp.Diff([]string{"/about"}, o.calls); diff != "" {
			t.Errorf("observer %d calls mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNavigate_HistoryBeforeStateBeforeNotify(t *testing.T) {
	var order []string
	c := NewController(historyFunc(func(path string) {
		order = append(order, "push "+path)
	}))
	c.Subscribe(func(path string) {
		order = append(order, "notify "+path+" current="+c.Current())
	})

	c.Navigate("/a")

	want := []string{"push /a", "notify /a current=/a"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

type historyFunc func(path string)

func (f historyFunc) Push(path string) { f(path) }

func TestOnPopState_DoesNotPush(t *testing.T) {
	h := &recordingHistory{}
	c := NewController(h)
	c.Navigate("/about")
	h.pushes = nil

	o := &recordingObserver{}
	c.Subscribe(o.observe)

	c.OnPopState("/")

	if c.Current() != "/" {
		t.Errorf("Current() = %q, want /", c.Current())
	}
	if len(h.pushes) != 0 {
		t.Errorf("expected no pushes, got %v", h.pushes)
	}
	if diff := cmp.Diff([]string{"/"}, o.calls); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
}

func TestActivate_PreventsDefault(t *testing.T) {
	h := &recordingHistory{}
	c := NewController(h)
	evt := &clickEvent{}

	c.Activate(evt, "/about")

	if evt.prevented != 1 {
		t.Errorf("PreventDefault called %d times, want 1", evt.prevented)
	}
	if len(h.pushes) != 1 || c.Current() != "/about" {
		t.Errorf("activation did not navigate: pushes=%v current=%q", h.pushes, c.Current())
	}

	// A nil event still navigates.
	c.Activate(nil, "/")
	if c.Current() != "/" {
		t.Errorf("Current() = %q, want /", c.Current())
	}
}

func TestSubscribe_RegistrationOrder(t *testing.T) {
	c := NewController(&recordingHistory{})
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.Subscribe(func(string) { order = append(order, i) })
	}

	c.Navigate("/x")

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsubscribe(t *testing.T) {
	c := NewController(&recordingHistory{})
	kept, dropped := &recordingObserver{}, &recordingObserver{}
	c.Subscribe(kept.observe)
	stop := c.Subscribe(dropped.observe)

	c.Navigate("/one")
	stop()
	stop()
	c.Navigate("/two")

	if diff := cmp.Diff([]string{"/one", "/two"}, kept.calls); diff != "" {
		t.Errorf("kept calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/one"}, dropped.calls); diff != "" {
		t.Errorf("dropped calls mismatch (-want +got):\n%s", diff)
	}
	if c.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", c.Subscribers())
	}
}

func TestUnsubscribe_FromInsideObserver(t *testing.T) {
	c := NewController(&recordingHistory{})
	calls := 0
	var stop Unsubscribe
	stop = c.Subscribe(func(string) {
		calls++
		stop()
	})
	after := &recordingObserver{}
	c.Subscribe(after.observe)

	c.Navigate("/a")
	c.Navigate("/b")

	if calls != 1 {
		t.Errorf("self-removing observer called %d times, want 1", calls)
	}
	if len(after.calls) != 2 {
		t.Errorf("later observer called %d times, want 2", len(after.calls))
	}
}

func TestCurrentView_NotCached(t *testing.T) {
	table, err := routes.Build([]routes.Entry{
		{Path: "/", View: "Home"},
		{Path: "/about", View: "About"},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := NewController(&recordingHistory{})
	if v, ok := c.CurrentView(table); !ok || v != "Home" {
		t.Errorf("CurrentView() = %v, %v; want Home, true", v, ok)
	}

	c.Navigate("/about")
	if v, ok := c.CurrentView(table); !ok || v != "About" {
		t.Errorf("CurrentView() = %v, %v; want About, true", v, ok)
	}

	c.OnPopState("/missing")
	if v, ok := c.CurrentView(table); ok || v != nil {
		t.Errorf("CurrentView() = %v, %v; want nil, false", v, ok)
	}
}

func TestController_ConcurrentTriggersAreSerialized(t *testing.T) {
	h := NewMemoryHistory("/")
	c := NewController(h)

	var mu sync.Mutex
	inFlight, maxInFlight, calls := 0, 0, 0
	c.Subscribe(func(string) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		calls++
		mu.Unlock()

		mu.Lock()
		inFlight--
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Navigate("/n")
		}()
		go func() {
			defer wg.Done()
			c.OnPopState("/p")
		}()
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("observer called %d times, want 100", calls)
	}
	if maxInFlight != 1 {
		t.Errorf("observer ran concurrently (max %d in flight)", maxInFlight)
	}
	if h.Len() != 51 {
		t.Errorf("history Len() = %d, want 51", h.Len())
	}
}

func TestTraverse_BackForward(t *testing.T) {
	h := NewMemoryHistory("/")
	c := NewController(h)
	obs := &recordingObserver{}
	c.Subscribe(obs.observe)

	if c.Back(h) {
		t.Fatal("Back at the oldest entry should report false")
	}
	c.Navigate("/a")
	if !c.Back(h) || c.Current() != "/" {
		t.Errorf("after Back Current() = %q, want /", c.Current())
	}
	if !c.Forward(h) || c.Current() != "/a" {
		t.Errorf("after Forward Current() = %q, want /a", c.Current())
	}
	if c.Forward(h) {
		t.Error("Forward at the newest entry should report false")
	}

	if diff := cmp.Diff([]string{"/a", "/", "/a"}, obs.calls); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
	if h.Len() != 2 {
		t.Errorf("traversal must not push; Len() = %d", h.Len())
	}
}

func TestTraverse_NavigateWaitsForHistoryMove(t *testing.T) {
	h := NewMemoryHistory("/")
	c := NewController(h)
	h.SetSequencer(c)
	c.Navigate("/a")

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.Subscribe(func(path string) {
		if path == "/" {
			once.Do(func() {
				close(entered)
				<-release
			})
		}
	})

	backDone := make(chan struct{})
	go func() {
		defer close(backDone)
		h.Back()
	}()
	<-entered

	navDone := make(chan struct{})
	go func() {
		defer close(navDone)
		c.Navigate("/y")
	}()

	select {
	case <-navDone:
		t.Fatal("Navigate completed while a history move was still being applied")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	<-backDone
	<-navDone

	if h.Location() != "/y" || c.Current() != "/y" {
		t.Errorf("history at %q, controller at %q; want both /y", h.Location(), c.Current())
	}
	if diff := cmp.Diff([]string{"/", "/y"}, h.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_ConcurrentWithNavigateStaysInSync(t *testing.T) {
	h := NewMemoryHistory("/")
	c := NewController(h)
	h.SetSequencer(c)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Navigate("/n")
		}()
		go func() {
			defer wg.Done()
			h.Back()
		}()
		go func() {
			defer wg.Done()
			h.Forward()
		}()
	}
	wg.Wait()

	if h.Location() != c.Current() {
		t.Errorf("history at %q, controller at %q", h.Location(), c.Current())
	}
}
