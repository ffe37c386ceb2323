package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// HoldTracker turns terminal key events into per-tick input frames
// Terminals report presses and auto-repeats but never releases, so an intent
// stays held until its deadline passes without another event
type HoldTracker struct {
	keys *KeyTable

	firstHold time.Duration
	repeat    time.Duration

	deadline [core.IntentCount]time.Time
	pending  [core.IntentCount]bool
}

// NewHoldTracker creates a tracker over the given bindings
func NewHoldTracker(keys *KeyTable) *HoldTracker {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &HoldTracker{
		keys:      keys,
		firstHold: parameter.KeyFirstHoldTimeout,
		repeat:    parameter.KeyHoldTimeout,
	}
}

// Observe records one key event at time now
// Returns false when the key is not bound
func (t *HoldTracker) Observe(ev *tcell.EventKey, now time.Time) bool {
	intent, ok := t.keys.Resolve(ev)
	if !ok {
		return false
	}

	if t.heldAt(intent, now) {
		// Auto-repeat: extend, no new edge
		if d := now.Add(t.repeat); d.After(t.deadline[intent]) {
			t.deadline[intent] = d
		}
		return true
	}

	t.pending[intent] = true
	t.deadline[intent] = now.Add(t.firstHold)
	return true
}

// Frame builds the input frame for a tick at time now and consumes pending edges
func (t *HoldTracker) Frame(now time.Time) core.InputFrame {
	var f core.InputFrame
	for i := core.Intent(0); i < core.IntentCount; i++ {
		if t.pending[i] {
			f.Press(i)
			t.pending[i] = false
			continue
		}
		if t.heldAt(i, now) {
			f.Hold(i)
		}
	}
	return f
}

// Release drops every hold, used when focus or mode changes make stale holds wrong
func (t *HoldTracker) Release() {
	for i := range t.deadline {
		t.deadline[i] = time.Time{}
		t.pending[i] = false
	}
}

func (t *HoldTracker) heldAt(i core.Intent, now time.Time) bool {
	return !t.deadline[i].IsZero() && now.Before(t.deadline[i])
}
