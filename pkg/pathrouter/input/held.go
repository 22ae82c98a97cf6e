package input

import (
	"time"

	"github.com/BrandonKowalski/pathrouter/pkg/pathrouter/constants"
)

// Button is an abstract navigation key, mapped from physical hardware.
type Button int

const (
	ButtonNone Button = iota
	ButtonBack
	ButtonForward
	ButtonHome
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	case ButtonHome:
		return "home"
	default:
		return ""
	}
}

// Repeats reports whether holding the button keeps firing it.
// Home is a one-shot; repeating it would only pile up identical history entries.
func (b Button) Repeats() bool {
	return b == ButtonBack || b == ButtonForward
}

// HeldInput tracks held navigation buttons and handles repeat timing.
type HeldInput struct {
	held struct {
		back, forward bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewHeldInput creates a HeldInput with default timing.
func NewHeldInput() HeldInput {
	return NewHeldInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewHeldInputWithTiming creates a HeldInput with custom timing.
func NewHeldInputWithTiming(delay, interval time.Duration) HeldInput {
	return HeldInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state of a button.
// Returns true if the button is one that repeats.
func (h *HeldInput) SetHeld(button Button, held bool) bool {
	switch button {
	case ButtonBack:
		h.held.back = held
	case ButtonForward:
		h.held.forward = held
	default:
		return false
	}

	if held {
		// A fresh press restarts the delay before the first repeat.
		h.lastRepeatTime = h.now()
	}
	if !held {
		h.hasRepeated = false
	}
	return true
}

// IsHeld returns true if any repeating button is currently held.
func (h *HeldInput) IsHeld() bool {
	return h.held.back || h.held.forward
}

// HeldButton returns the currently held button.
// If both are held, back wins.
func (h *HeldInput) HeldButton() Button {
	if h.held.back {
		return ButtonBack
	}
	if h.held.forward {
		return ButtonForward
	}
	return ButtonNone
}

// Update checks if a repeat should fire based on timing.
// Call it periodically. It returns the button to act on, or ButtonNone.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (h *HeldInput) Update() Button {
	now := h.now()
	if !h.IsHeld() {
		h.lastRepeatTime = now
		h.hasRepeated = false
		return ButtonNone
	}

	threshold := h.repeatInterval
	if !h.hasRepeated {
		threshold = h.repeatDelay
	}

	if now.Sub(h.lastRepeatTime) >= threshold {
		h.lastRepeatTime = now
		h.hasRepeated = true
		return h.HeldButton()
	}

	return ButtonNone
}

// Reset clears all held buttons and timing state.
func (h *HeldInput) Reset() {
	h.held.back = false
	h.held.forward = false
	h.hasRepeated = false
	h.lastRepeatTime = h.now()
}
