package pathrouter

import (
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/navigation"
)

// Props are the attributes a host passes to a component instance.
type Props map[string]string

// Prop names understood by the router components.
const (
	PropTo   = "to"   // Link target path
	PropText = "text" // Link content; overrides the route label
	PropLang = "lang" // Label language for this link
)

// Node is what a component renders: an *Element, a caller's view handle, or nil.
type Node = any

// Component is a renderable unit the router registers with the host.
type Component interface {
	Render(props Props) Node
}

// Element is a host-neutral description of a DOM-like element.
type Element struct {
	Tag     string
	Attrs   map[string]string
	Text    string
	OnClick func(evt navigation.Event)
}

// Click invokes the element's click handler, if any.
func (e *Element) Click(evt navigation.Event) {
	if e.OnClick != nil {
		e.OnClick(evt)
	}
}

// Link renders an anchor to a path. Clicking it navigates in place: the
// click's default action is prevented and the path is pushed onto history.
type Link struct {
	router *Router
}

// Render implements Component.
func (l *Link) Render(props Props) Node {
	to := props[PropTo]

	text := props[PropText]
	if text == "" {
		text = l.router.Label(to, props[PropLang])
	}

	return &Element{
		Tag:   "a",
		Attrs: map[string]string{"href": to},
		Text:  text,
		OnClick: func(evt navigation.Event) {
			if l.router.controller == nil {
				internal.GetInternalLogger().Warn("Link clicked before router init", "to", to)
				if evt != nil {
					evt.PreventDefault()
				}
				return
			}
			l.router.controller.Activate(evt, to)
		},
	}
}

// Outlet renders whatever view the current path resolves to, or nothing.
type Outlet struct {
	router *Router
}

// Render implements Component.
func (o *Outlet) Render(Props) Node {
	view, ok := o.router.CurrentView()
	if !ok {
		return nil
	}
	return view
}
