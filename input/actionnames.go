package input

// Action is a player intent a key can be bound to
type Action uint8

const (
	ActionNone Action = iota // Unbind sentinel
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionSelect
	ActionPause
	ActionQuit
	actionCount
)

// actionRegistry maps canonical action names used in keymap files
var actionRegistry = map[string]Action{
	"none":   ActionNone,
	"left":   ActionLeft,
	"right":  ActionRight,
	"up":     ActionUp,
	"down":   ActionDown,
	"fire":   ActionFire,
	"select": ActionSelect,
	"pause":  ActionPause,
	"quit":   ActionQuit,
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "action(?)"
}
