package engine

import "github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine/fsm"

// State is the top-level game phase
type State = fsm.StateID

const (
	StateMenu State = iota + 1
	StatePlaying
	StatePaused // Reserved, pause returns to the menu
	StateLose
	StateWin
	StateClose
)

// MenuSelection is the highlighted menu option
// Menu offers Start/Quit, Win and Lose offer Restart/Quit
type MenuSelection uint8

const (
	SelectQuit MenuSelection = iota
	SelectStart
	SelectRestart
)

func (s MenuSelection) String() string {
	switch s {
	case SelectQuit:
		return "quit"
	case SelectStart:
		return "start"
	case SelectRestart:
		return "restart"
	}
	return "selection(?)"
}

// Game events
const (
	EventSelect fsm.EventID = iota + 1
	EventPause
	EventToggle // Up or down in a menu
	EventHordeCleared
	EventShipHit
)

func selectionIs(s MenuSelection) fsm.GuardFunc[*Game] {
	return func(g *Game) bool { return g.Selection == s }
}

// newStateMachine builds the transition table
func newStateMachine() *fsm.Machine[*Game] {
	m := fsm.NewMachine[*Game]()

	m.AddState(StateMenu, "Menu")
	m.AddState(StatePlaying, "Playing")
	m.AddState(StatePaused, "Paused")
	m.AddState(StateLose, "Lose")
	m.AddState(StateWin, "Win")
	m.AddState(StateClose, "Close").Terminal = true

	// Menu
	m.AddTransition(StateMenu, fsm.Transition[*Game]{Event: EventSelect, Guard: selectionIs(SelectStart), TargetID: StatePlaying})
	m.AddTransition(StateMenu, fsm.Transition[*Game]{Event: EventSelect, Guard: selectionIs(SelectQuit), TargetID: StateClose})
	m.AddTransition(StateMenu, fsm.Transition[*Game]{Event: EventToggle, Action: toggleSelection(SelectStart)})

	// Playing
	m.AddTransition(StatePlaying, fsm.Transition[*Game]{Event: EventPause, TargetID: StateMenu})
	m.AddTransition(StatePlaying, fsm.Transition[*Game]{Event: EventHordeCleared, TargetID: StateWin})
	m.AddTransition(StatePlaying, fsm.Transition[*Game]{Event: EventShipHit, TargetID: StateLose})

	// Round over
	for _, s := range []State{StateWin, StateLose} {
		m.AddTransition(s, fsm.Transition[*Game]{Event: EventSelect, Guard: selectionIs(SelectRestart), TargetID: StatePlaying, Action: (*Game).restart})
		m.AddTransition(s, fsm.Transition[*Game]{Event: EventSelect, Guard: selectionIs(SelectQuit), TargetID: StateClose})
		m.AddTransition(s, fsm.Transition[*Game]{Event: EventToggle, Action: toggleSelection(SelectRestart)})
	}

	// Menu offers only Start and Quit
	m.OnEnter(StateMenu, func(g *Game) {
		if g.Selection != SelectQuit {
			g.Selection = SelectStart
		}
	})
	m.OnEnter(StatePlaying, (*Game).resumeLoops)
	m.OnExit(StatePlaying, func(g *Game) { g.Audio.StopLoop(LoopBoss) })
	m.OnEnter(StateWin, func(g *Game) {
		g.Selection = SelectRestart
		g.Audio.Play(CueWin)
	})
	m.OnEnter(StateLose, func(g *Game) {
		g.Selection = SelectRestart
		g.Audio.StopLoop(LoopBackground)
		g.Audio.Play(CueLose)
	})

	return m
}

// toggleSelection flips between primary and Quit
func toggleSelection(primary MenuSelection) fsm.ActionFunc[*Game] {
	return func(g *Game) {
		g.Audio.Play(CueMenu)
		if g.Selection == primary {
			g.Selection = SelectQuit
		} else {
			g.Selection = primary
		}
	}
}
