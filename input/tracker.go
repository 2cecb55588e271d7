// Package input turns terminal key events into per-frame player intents.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

// Terminals report presses and autorepeats but never releases
// A held action stays down until no repeat arrives within its window
const (
	// HoldInitial covers the gap before the terminal's autorepeat starts
	HoldInitial = 550 * time.Millisecond
	// HoldRepeat covers the gap between autorepeat events
	HoldRepeat = 120 * time.Millisecond
)

// held tracks one continuous action
type held struct {
	until time.Time
}

// press opens a hold on the first event and extends it on repeats, never shortening it
func (h *held) press(now time.Time) {
	if !now.Before(h.until) {
		h.until = now.Add(HoldInitial)
		return
	}
	if next := now.Add(HoldRepeat); next.After(h.until) {
		h.until = next
	}
}

func (h *held) down(now time.Time) bool {
	return now.Before(h.until)
}

func (h *held) release() {
	h.until = time.Time{}
}

// Tracker accumulates key events between frames
// Left and Right are continuous; Fire, Up, Down, Select and Pause fire once per press
// Not safe for concurrent use; feed it from the goroutine that ticks the game
type Tracker struct {
	keys  *KeyTable
	clock engine.Clock

	left, right held

	// Edge-triggered, cleared by Frame
	fire, up, down, sel, pause bool

	quit bool
}

// NewTracker creates a tracker; nil keys uses the defaults
func NewTracker(keys *KeyTable, clock engine.Clock) *Tracker {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Tracker{keys: keys, clock: clock}
}

// HandleKey records a key event and returns the action it resolved to
func (t *Tracker) HandleKey(ev *tcell.EventKey) Action {
	a := t.keys.Lookup(ev)
	t.Press(a)
	return a
}

// Press records one occurrence of an action
func (t *Tracker) Press(a Action) {
	now := t.clock.Now()

	switch a {
	case ActionLeft:
		t.right.release()
		t.left.press(now)
	case ActionRight:
		t.left.release()
		t.right.press(now)
	case ActionFire:
		t.fire = true
	case ActionUp:
		t.up = true
	case ActionDown:
		t.down = true
	case ActionSelect:
		t.sel = true
	case ActionPause:
		t.pause = true
	case ActionQuit:
		t.quit = true
	}
}

// Frame returns the intents for the frame starting now and clears edge-triggered ones
func (t *Tracker) Frame() engine.Input {
	now := t.clock.Now()

	in := engine.Input{
		Left:   t.left.down(now),
		Right:  t.right.down(now),
		Fire:   t.fire,
		Up:     t.up,
		Down:   t.down,
		Select: t.sel,
		Pause:  t.pause,
	}

	t.clearEdges()
	return in
}

// Quit reports whether a quit key was pressed
func (t *Tracker) Quit() bool {
	return t.quit
}

// Reset drops all held and pending intents, used when the screen loses focus
func (t *Tracker) Reset() {
	t.left.release()
	t.right.release()
	t.clearEdges()
}

func (t *Tracker) clearEdges() {
	t.fire, t.up, t.down, t.sel, t.pause = false, false, false, false, false
}
