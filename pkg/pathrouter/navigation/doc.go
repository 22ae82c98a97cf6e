// Package navigation holds the router's only mutable state: the current path.
//
// A Controller changes the path in exactly two ways. Navigate is used for
// navigation started inside the application (a link click, a key press): it
// pushes the path onto the History, updates the state and notifies observers.
// OnPopState is used when the history itself moved (back or forward): it
// updates the state and notifies observers, but never pushes.
//
// # Basic Usage
//
//	table, err := routes.Build([]routes.Entry{
//	    {Path: "/", View: homeView},
//	    {Path: "/about", View: aboutView},
//	})
//	if err != nil {
//	    return err
//	}
//
//	history := navigation.NewMemoryHistory("/")
//	nav := navigation.NewController(history)
//	history.SetSequencer(nav)
//
//	stop := nav.Subscribe(func(path string) {
//	    view, ok := nav.CurrentView(table)
//	    if !ok {
//	        render(nil) // nothing matched
//	        return
//	    }
//	    render(view)
//	})
//	defer stop()
//
//	nav.Navigate("/about")
//	history.Back() // emits popstate for "/"
//
// # Ordering
//
// A mutation and the notification pass that follows it run under one lock,
// so observers never see two changes interleaved. Observers may read the
// controller but must not navigate from inside the callback.
//
// A history move is a mutation too. Histories that only report moves after
// the fact (Listen with OnPopState) can race a concurrent Navigate. A
// MemoryHistory with the controller as its Sequencer moves its cursor inside
// Controller.Traverse, under the same lock as Navigate's Push.
package navigation
