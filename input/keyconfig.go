package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that can't be bare single-char YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
	"hash":      '#',
}

// Names accepted in the keys section
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-p":    tcell.KeyCtrlP,
	"ctrl-x":    tcell.KeyCtrlX,
}

// keyConfigFile is the YAML layout of a keymap file
//
//	keys:
//	  enter: select
//	  esc: pause
//	runes:
//	  space: fire
//	  x: none
type keyConfigFile struct {
	Keys  map[string]string `yaml:"keys"`
	Runes map[string]string `yaml:"runes"`
}

// LoadKeyConfig parses YAML keymap data into a sparse override KeyTable
// Only sections present in the data are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if raw.Keys != nil {
		kt.Special = make(map[tcell.Key]Action, len(raw.Keys))
		for name, actionName := range raw.Keys {
			k, ok := specialKeyNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.Special[k] = a
		}
	}

	if raw.Runes != nil {
		kt.Runes = make(map[rune]Action, len(raw.Runes))
		for keyStr, actionName := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			a, err := resolveAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = a
		}
	}

	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the defaults
// An empty path returns the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	if path == "" {
		return DefaultKeyTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}

	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}

	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune converts a YAML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()

	for k, v := range override.Special {
		if v == ActionNone {
			delete(result.Special, k)
		} else {
			result.Special[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
