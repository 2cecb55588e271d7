package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
// Special holds non-rune keys, Runes holds printable characters
type KeyTable struct {
	Special map[tcell.Key]Action
	Runes   map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Special: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyEnter:  ActionSelect,
			tcell.KeyEscape: ActionPause,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionUp,
			's': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'k': ActionUp,
			'j': ActionDown,
			' ': ActionFire,
			'p': ActionPause,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Special: make(map[tcell.Key]Action, len(kt.Special)),
		Runes:   make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Special {
		out.Special[k] = v
	}
	for r, v := range kt.Runes {
		out.Runes[r] = v
	}
	return out
}

// Lookup resolves a key event; unbound keys return ActionNone
// Uppercase runes fall back to their lowercase binding so shift or caps lock does not drop input
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return kt.Special[ev.Key()]
	}

	r := ev.Rune()
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return ActionNone
}
