package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlight-reaver/core"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]core.Intent

	// Printable keys, matched case-insensitively
	Runes map[rune]core.Intent
}

// DefaultKeyTable returns the default bindings: arrows or WASD, space to shoot, Enter, Esc
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Intent{
			tcell.KeyUp:     core.IntentMoveUp,
			tcell.KeyDown:   core.IntentMoveDown,
			tcell.KeyLeft:   core.IntentMoveLeft,
			tcell.KeyRight:  core.IntentMoveRight,
			tcell.KeyEnter:  core.IntentConfirm,
			tcell.KeyEscape: core.IntentCancel,
		},
		Runes: map[rune]core.Intent{
			'w': core.IntentMoveUp,
			's': core.IntentMoveDown,
			'a': core.IntentMoveLeft,
			'd': core.IntentMoveRight,
			' ': core.IntentShoot,
			'p': core.IntentCancel,
		},
	}
}

// Resolve returns the intent bound to a key event
func (kt *KeyTable) Resolve(ev *tcell.EventKey) (core.Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		i, ok := kt.Runes[r]
		return i, ok
	}
	i, ok := kt.SpecialKeys[ev.Key()]
	return i, ok
}

// IsQuit reports the hard-quit chords that bypass the game modes
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ
}

// Merge replaces the bindings of every intent present in override
func (kt *KeyTable) Merge(override *KeyTable) {
	bound := make(map[core.Intent]bool)
	for _, i := range override.SpecialKeys {
		bound[i] = true
	}
	for _, i := range override.Runes {
		bound[i] = true
	}

	for k, i := range kt.SpecialKeys {
		if bound[i] {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, i := range kt.Runes {
		if bound[i] {
			delete(kt.Runes, r)
		}
	}

	for k, i := range override.SpecialKeys {
		kt.SpecialKeys[k] = i
	}
	for r, i := range override.Runes {
		kt.Runes[r] = i
	}
}
