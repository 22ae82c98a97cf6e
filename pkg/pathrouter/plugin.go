package pathrouter

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
)

// Host is the UI framework the router is installed into.
type Host interface {
	// Provide makes the router reachable from every component instance.
	Provide(router *Router)
	// RegisterComponent makes a component available under name.
	RegisterComponent(name string, component Component)
}

// Plugin installs a Router into a Host. Installing more than once is a no-op.
// The zero value is ready to use.
type Plugin struct {
	mu        sync.Mutex
	installed atomic.Bool // read without mu by Installed
}

// NewPlugin creates a Plugin that has not been installed yet.
func NewPlugin() *Plugin {
	return &Plugin{}
}

// Installed reports whether Install has completed successfully.
func (p *Plugin) Installed() bool {
	return p.installed.Load()
}

// Install initializes router, registers the link and outlet components and
// provides the router to host. Once a call succeeds, later calls return nil
// without touching host or router. A failed call leaves the plugin
// uninstalled, so the next call tries again.
func (p *Plugin) Install(host Host, router *Router) error {
	if host == nil {
		return ErrNoHost
	}
	if router == nil {
		return ErrNoRouter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.installed.Load() {
		internal.GetInternalLogger().Debug("Plugin already installed, ignoring")
		return nil
	}

	if err := router.Init(); err != nil {
		internal.GetInternalLogger().Debug("Plugin install failed", "error", err)
		return err
	}

	host.RegisterComponent(constants.LinkComponentName, &Link{router: router})
	host.RegisterComponent(constants.OutletComponentName, &Outlet{router: router})
	host.Provide(router)
	p.installed.Store(true)

	internal.GetInternalLogger().Debug("Plugin installed")
	return nil
}
