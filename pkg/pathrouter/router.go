package pathrouter

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/labels"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/navigation"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/routes"
)

// PopStateSource is a history that reports back/forward moves.
type PopStateSource interface {
	Listen(fn navigation.PopStateFunc)
}

// SequencedHistory is a history whose cursor moves can be applied by the
// controller under its own lock. navigation.MemoryHistory implements it.
// Init prefers it over PopStateSource.
type SequencedHistory interface {
	SetSequencer(seq navigation.Sequencer)
}

// Router ties a route table to a navigation controller.
// Create one with New; it does nothing until Init runs.
type Router struct {
	options Options

	initOnce sync.Once
	initErr  error

	table      *routes.Table
	controller *navigation.Controller
	history    navigation.History
	localizer  *labels.Localizer
}

// New creates a Router from options and configures logging.
// The route table is not built until Init.
func New(options Options) *Router {
	configureLogging(options)

	if options.History == nil {
		options.History = navigation.NewMemoryHistory("")
	}
	if options.DefaultLanguage == language.Und {
		options.DefaultLanguage = language.English
	}

	return &Router{
		options: options,
		history: options.History,
	}
}

// Init builds the route table, creates the controller and starts listening
// for popstate. It runs once; later calls return the first result.
func (r *Router) Init() error {
	r.initOnce.Do(func() {
		r.initErr = r.init()
	})
	return r.initErr
}

func (r *Router) init() error {
	logger := internal.GetInternalLogger()

	entries := append([]routes.Entry(nil), r.options.Routes...)
	if r.options.RoutesFile != "" {
		fromFile, err := routes.LoadFile(r.options.RoutesFile, r.options.Views)
		if err != nil {
			logger.Error("Failed to load route file", "path", r.options.RoutesFile, "error", err)
			return err
		}
		entries = append(entries, fromFile...)
	}

	table, err := routes.Build(entries)
	if err != nil {
		logger.Error("Invalid route configuration", "error", err)
		return err
	}

	localizer := r.options.Localizer
	if localizer == nil {
		localizer = labels.NewLocalizer(r.options.DefaultLanguage)
	}
	for _, path := range r.options.MessageFiles {
		if err := localizer.LoadFile(path); err != nil {
			return NewInfrastructureError("load_labels", err)
		}
	}

	controller := navigation.NewController(r.history)
	switch src := r.history.(type) {
	case SequencedHistory:
		src.SetSequencer(controller)
	case PopStateSource:
		src.Listen(controller.OnPopState)
	}

	r.table = table
	r.localizer = localizer
	r.controller = controller

	logger.Info("Router initialized", "routes", table.Len(), "current", controller.Current())
	return nil
}

// Initialized reports whether Init completed successfully.
func (r *Router) Initialized() bool {
	return r.controller != nil
}

// Table returns the route table, or nil before Init.
func (r *Router) Table() *routes.Table {
	return r.table
}

// Controller returns the navigation controller, or nil before Init.
func (r *Router) Controller() *navigation.Controller {
	return r.controller
}

// History returns the history the router pushes onto.
func (r *Router) History() navigation.History {
	return r.history
}

// Localizer returns the link label localizer, or nil before Init.
func (r *Router) Localizer() *labels.Localizer {
	return r.localizer
}

// Navigate navigates to path.
func (r *Router) Navigate(path string) error {
	if r.controller == nil {
		return ErrNotInitialized
	}
	r.controller.Navigate(path)
	return nil
}

// Current returns the current path, or "" before Init.
func (r *Router) Current() string {
	if r.controller == nil {
		return ""
	}
	return r.controller.Current()
}

// CurrentView resolves the current path. The boolean is false when no route
// matches or the router is not initialized.
func (r *Router) CurrentView() (routes.ViewRef, bool) {
	if r.controller == nil {
		return nil, false
	}
	return r.controller.CurrentView(r.table)
}

// Subscribe registers fn for path changes.
func (r *Router) Subscribe(fn navigation.Observer) (navigation.Unsubscribe, error) {
	if r.controller == nil {
		return nil, ErrNotInitialized
	}
	return r.controller.Subscribe(fn), nil
}

// Label returns the link text for path in lang: the localized route title
// when there is one, the path otherwise. An empty lang uses Options.Language.
func (r *Router) Label(path, lang string) string {
	if lang == "" {
		lang = r.options.Language
	}
	if lang == "" {
		lang = r.options.DefaultLanguage.String()
	}

	title, ok := r.table.Title(path)
	if !ok || r.localizer == nil {
		return path
	}
	return r.localizer.Label(lang, title, path)
}
