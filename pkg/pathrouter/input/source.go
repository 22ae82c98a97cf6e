// Package input drives navigation from hardware keys read through evdev:
// back and forward move through the history, home navigates to the root.
// Back and forward repeat while held.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/internal"
	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/navigation"
)

// Key values reported by the kernel for EV_KEY events.
const (
	keyReleased    int32 = 0
	keyPressed     int32 = 1
	keyAutoRepeats int32 = 2
)

// DefaultKeymap maps common keyboard, remote and mouse codes to buttons.
var DefaultKeymap = map[evdev.EvCode]Button{
	evdev.KEY_BACK:      ButtonBack,
	evdev.KEY_ESC:       ButtonBack,
	evdev.KEY_BACKSPACE: ButtonBack,
	evdev.BTN_SIDE:      ButtonBack,
	evdev.KEY_FORWARD:   ButtonForward,
	evdev.BTN_EXTRA:     ButtonForward,
	evdev.KEY_HOMEPAGE:  ButtonHome,
}

// EventReader is the part of an evdev device the Source needs.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Navigator acts on a button press.
type Navigator interface {
	Press(button Button)
}

// HistoryNavigator moves a MemoryHistory for back and forward and
// navigates the controller to the root path for home. History must have
// Controller as its sequencer (Router.Init sets this up) so key presses
// stay ordered against navigation from other goroutines.
type HistoryNavigator struct {
	History    *navigation.MemoryHistory
	Controller *navigation.Controller
}

// Press implements Navigator.
func (n HistoryNavigator) Press(button Button) {
	switch button {
	case ButtonBack:
		n.History.Back()
	case ButtonForward:
		n.History.Forward()
	case ButtonHome:
		if n.Controller.Current() != constants.RootPath {
			n.Controller.Navigate(constants.RootPath)
		}
	}
}

// Options configures a Source. Zero values select defaults.
type Options struct {
	Keymap         map[evdev.EvCode]Button
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	PollInterval   time.Duration // How often held buttons are checked for repeats
}

// Source reads key events from a device and presses buttons on a Navigator.
type Source struct {
	dev    EventReader
	nav    Navigator
	keymap map[evdev.EvCode]Button
	held   HeldInput
	poll   time.Duration

	events chan *evdev.InputEvent
	stop   chan struct{}
	wg     sync.WaitGroup

	closeOnce sync.Once
	closeErr  error
}

// Open opens the evdev device at path and starts a Source on it.
func Open(path string, nav Navigator, opts Options) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	if name, err := dev.Name(); err == nil {
		internal.GetInternalLogger().Debug("Input device opened", "path", path, "name", name)
	}
	return NewSource(dev, nav, opts), nil
}

// NewSource starts reading dev in the background.
func NewSource(dev EventReader, nav Navigator, opts Options) *Source {
	if opts.Keymap == nil {
		opts.Keymap = DefaultKeymap
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.DefaultRepeatDelay
	}
	if opts.RepeatInterval <= 0 {
		opts.RepeatInterval = constants.DefaultRepeatInterval
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 20 * time.Millisecond
	}

	s := &Source{
		dev:    dev,
		nav:    nav,
		keymap: opts.Keymap,
		held:   NewHeldInputWithTiming(opts.RepeatDelay, opts.RepeatInterval),
		poll:   opts.PollInterval,
		events: make(chan *evdev.InputEvent, 16),
		stop:   make(chan struct{}),
	}

	s.wg.Add(2)
	go s.read()
	go s.run()
	return s
}

func (s *Source) read() {
	defer s.wg.Done()
	defer close(s.events)

	for {
		evt, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.stop:
			default:
				if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
					internal.GetInternalLogger().Error("Input device read failed", "error", err)
				}
			}
			return
		}

		select {
		case s.events <- evt:
		case <-s.stop:
			return
		}
	}
}

func (s *Source) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case evt, ok := <-s.events:
			if !ok {
				return
			}
			s.handle(evt)
		case <-ticker.C:
			if b := s.held.Update(); b != ButtonNone {
				s.nav.Press(b)
			}
		case <-s.stop:
			return
		}
	}
}

func (s *Source) handle(evt *evdev.InputEvent) {
	if evt == nil || evt.Type != evdev.EV_KEY {
		return
	}
	button, ok := s.keymap[evt.Code]
	if !ok {
		return
	}

	switch evt.Value {
	case keyPressed:
		internal.GetInternalLogger().Debug("Navigation key pressed", "button", button.String())
		s.nav.Press(button)
		if button.Repeats() {
			s.held.SetHeld(button, true)
		}
	case keyReleased:
		s.held.SetHeld(button, false)
	case keyAutoRepeats:
		// Repeats are timed by HeldInput, not the kernel.
	}
}

// Close stops the Source and closes the device.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.closeErr = s.dev.Close()
		s.wg.Wait()
	})
	return s.closeErr
}
