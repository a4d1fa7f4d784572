package tui

import (
	"github.com/vovakirdan/tui-blaster/internal/config"
	"github.com/vovakirdan/tui-blaster/internal/core"
)

// HoldTracker rebuilds held-key state from terminal key presses.
//
// Terminals deliver auto-repeat presses but never a key-up, so a key counts
// as held while repeats keep arriving and as released once it has been
// silent for timeout ticks. Fire can instead run in toggle mode, where each
// press alternates between starting a charge and releasing it.
type HoldTracker struct {
	mode    config.FireMode
	timeout int
	idle    map[core.Action]int // Held actions -> ticks since the last repeat
	toggled bool                // Fire is down in toggle mode
}

// NewHoldTracker creates a tracker. A non-positive timeout is treated as one tick.
func NewHoldTracker(mode config.FireMode, timeout int) *HoldTracker {
	return &HoldTracker{
		mode:    mode,
		timeout: max(1, timeout),
		idle:    make(map[core.Action]int),
	}
}

// Observe records one key press (or repeat) for a held action.
// Fire transitions are appended to frame as they happen.
func (h *HoldTracker) Observe(a core.Action, frame *core.InputFrame) {
	if a == core.ActionFire && h.mode == config.FireToggle {
		if h.toggled {
			frame.Release(a)
		} else {
			frame.Press(a)
		}
		h.toggled = !h.toggled
		return
	}

	if _, held := h.idle[a]; !held && a == core.ActionFire {
		frame.Press(a)
	}
	h.idle[a] = 0
}

// Tick runs once per frame before the game steps. Held actions are asserted
// on frame; actions silent for longer than the timeout are dropped, and a
// dropped fire key produces a release.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	for a, n := range h.idle {
		if n >= h.timeout {
			delete(h.idle, a)
			if a == core.ActionFire {
				frame.Release(a)
			}
			continue
		}
		frame.Set(a)
		h.idle[a] = n + 1
	}
}

// Held reports whether the action is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	if a == core.ActionFire && h.mode == config.FireToggle {
		return h.toggled
	}
	_, ok := h.idle[a]
	return ok
}

// Reset forgets all held keys without emitting releases. Used when the
// game drops its charge on its own (overcharge, game over, restart).
func (h *HoldTracker) Reset() {
	clear(h.idle)
	h.toggled = false
}
