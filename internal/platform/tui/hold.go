package tui

import "github.com/vovakirdan/starfall/internal/core"

// DefaultHoldTicks is used when no hold window is configured. At 60 ticks per
// second it outlasts the usual terminal auto-repeat delay.
const DefaultHoldTicks = 30

// KeyHold turns press events into held keys. Terminals report presses and
// auto-repeats but never releases, so a key counts as down for a window of
// ticks after its last press.
type KeyHold struct {
	window int
	last   map[core.Action]int
}

// NewKeyHold creates a tracker holding keys for window ticks.
func NewKeyHold(window int) *KeyHold {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &KeyHold{window: window, last: make(map[core.Action]int)}
}

// Press records a press of a at tick. Pressing one direction releases the
// opposite one.
func (h *KeyHold) Press(a core.Action, tick int) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = tick
}

// Apply sets every action still held at tick on f.
func (h *KeyHold) Apply(f *core.InputFrame, tick int) {
	for a, at := range h.last {
		if tick-at < h.window {
			f.Set(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Reset releases every key.
func (h *KeyHold) Reset() {
	clear(h.last)
}
