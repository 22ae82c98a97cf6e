// Command pathrouter-demo runs the router inside a line-oriented terminal host.
//
//	pathrouter-demo -routes routes.toml [-messages active.en.toml,...] [-lang de] [-device /dev/input/event3]
//
// Commands read from stdin:
//
//	go <path>   navigate through a link to path
//	back        history back (popstate)
//	forward     history forward (popstate)
//	links       render a link for every route
//	quit        exit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/input"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/navigation"
)

func main() {
	routesFile := flag.String("routes", "routes.toml", "route file (.toml, .yaml or .yml)")
	messages := flag.String("messages", "", "comma-separated TOML message files for link labels")
	lang := flag.String("lang", "", "link label language")
	device := flag.String("device", "", "evdev device for back/forward/home keys")
	start := flag.String("start", "/", "initial location")
	logPath := flag.String("log", "", "log file path")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if err := run(options{
		routesFile: *routesFile,
		messages:   splitList(*messages),
		lang:       *lang,
		device:     *device,
		start:      *start,
		logPath:    *logPath,
		logLevel:   *logLevel,
	}, os.Stdin, os.Stdout); err != nil {
		pathrouter.GetLogger().Error("Exiting", "error", err)
		pathrouter.CloseLogger()
		os.Exit(1)
	}
	pathrouter.CloseLogger()
}

type options struct {
	routesFile string
	messages   []string
	lang       string
	device     string
	start      string
	logPath    string
	logLevel   string
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func run(opts options, in io.Reader, out io.Writer) error {
	history := navigation.NewMemoryHistory(opts.start)
	router := pathrouter.New(pathrouter.Options{
		RoutesFile:   opts.routesFile,
		History:      history,
		MessageFiles: opts.messages,
		Language:     opts.lang,
		LogPath:      opts.logPath,
		LogLevel:     opts.logLevel,
	})

	host := newTerminalHost(out)
	if err := pathrouter.NewPlugin().Install(host, router); err != nil {
		return err
	}

	stop, err := router.Subscribe(func(string) { host.render() })
	if err != nil {
		return err
	}
	defer stop()

	if opts.device != "" {
		src, err := input.Open(opts.device, input.HistoryNavigator{
			History:    history,
			Controller: router.Controller(),
		}, input.Options{})
		if err != nil {
			return pathrouter.NewInfrastructureError("open_input", err)
		}
		defer src.Close()
	}

	host.render()
	return host.loop(in, history)
}

// terminalHost is a Host that renders to a writer. render runs on whichever
// goroutine navigated (stdin loop or input device), so writes go through mu.
type terminalHost struct {
	mu         sync.Mutex
	out        io.Writer
	router     *pathrouter.Router
	components map[string]pathrouter.Component
	prompt     bool
}

func newTerminalHost(out io.Writer) *terminalHost {
	prompt := false
	if f, ok := out.(*os.File); ok {
		prompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &terminalHost{
		out:        out,
		components: make(map[string]pathrouter.Component),
		prompt:     prompt,
	}
}

func (h *terminalHost) Provide(router *pathrouter.Router) {
	h.router = router
}

func (h *terminalHost) RegisterComponent(name string, c pathrouter.Component) {
	h.components[name] = c
}

func (h *terminalHost) printf(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, format, args...)
}

func (h *terminalHost) render() {
	current := h.router.Current()
	view := h.components[constants.OutletComponentName].Render(nil)
	if view == nil {
		h.printf("[%s] (no route)\n", current)
		return
	}
	h.printf("[%s] %v\n", current, view)
}

func (h *terminalHost) link(to string) *pathrouter.Element {
	return h.components[constants.LinkComponentName].Render(pathrouter.Props{pathrouter.PropTo: to}).(*pathrouter.Element)
}

// noopEvent stands in for a click: there is no page load to prevent.
type noopEvent struct{}

func (noopEvent) PreventDefault() {}

func (h *terminalHost) loop(in io.Reader, history *navigation.MemoryHistory) error {
	scanner := bufio.NewScanner(in)
	for {
		if h.prompt {
			h.printf("> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "go":
			if len(fields) != 2 {
				h.printf("usage: go <path>\n")
				continue
			}
			h.link(fields[1]).Click(noopEvent{})
		case "back":
			if !history.Back() {
				h.printf("no earlier entry\n")
			}
		case "forward":
			if !history.Forward() {
				h.printf("no later entry\n")
			}
		case "links":
			for _, path := range h.router.Table().Paths() {
				el := h.link(path)
				h.printf("<%s href=%q>%s</%s>\n", el.Tag, el.Attrs["href"], el.Text, el.Tag)
			}
		case "quit", "exit":
			return nil
		default:
			h.printf("unknown command %q\n", fields[0])
		}
	}
}
