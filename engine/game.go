package engine

import (
	"log"
	"sort"
	"time"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine/fsm"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/status"
)

// Game is the simulation context: state machine, current match and collaborators
// It is driven by exactly one goroutine, one Tick per rendered frame
type Game struct {
	Selection MenuSelection
	Match     *Match
	Tuning    Tuning

	Clock Clock
	Audio Audio
	Rand  entity.Rand

	// Session statistics, kept across restarts
	Stats *status.Registry

	machine *fsm.Machine[*Game]
	systems []System

	// Frame timing
	lastFrame time.Time
	now       time.Time

	input Input
}

// NewGame creates a game in the menu with a fresh match
func NewGame(clock Clock, audio Audio, rng entity.Rand) *Game {
	if audio == nil {
		audio = NopAudio{}
	}

	g := &Game{
		Selection: SelectStart,
		Tuning:    DefaultTuning(),
		Clock:     clock,
		Audio:     audio,
		Rand:      rng,
		Stats:     status.NewRegistry(),
		machine:   newStateMachine(),
	}
	g.Match = NewMatch(g.Tuning)
	g.now = clock.Now()
	g.lastFrame = g.now

	if err := g.machine.Init(g, StateMenu); err != nil {
		// Static table, a failure here is a programming error
		panic(err)
	}
	g.Audio.StartLoop(LoopBackground)

	return g
}

// AddSystem registers a simulation phase, kept sorted by priority
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// State returns the current game phase
func (g *Game) State() State {
	return g.machine.Current()
}

// StateName returns a printable name for s
func (g *Game) StateName(s State) string {
	return g.machine.StateName(s)
}

// Closed reports whether the outer loop should stop
func (g *Game) Closed() bool {
	return g.State() == StateClose
}

// Now returns the timestamp sampled at the start of the current tick
func (g *Game) Now() time.Time { return g.now }

// Input returns the intents of the current tick
func (g *Game) Input() Input { return g.input }

// Tick advances the game by one frame
func (g *Game) Tick(in Input) {
	g.now = g.Clock.Now()
	g.input = in

	// At most one input-driven phase change per frame
	switch {
	case in.Select && g.fire(EventSelect):
	case in.Pause && g.fire(EventPause):
	}

	switch g.State() {
	case StatePlaying:
		dt := g.now.Sub(g.lastFrame)
		g.Stats.Set(status.FrameMillis, float64(dt)/float64(time.Millisecond))
		g.step(dt)
	case StateClose:
	default:
		if in.Up || in.Down {
			g.fire(EventToggle)
		}
	}

	g.lastFrame = g.now
}

// step runs the systems in order, stopping as soon as play ends
func (g *Game) step(dt time.Duration) {
	for _, s := range g.systems {
		if g.State() != StatePlaying {
			return
		}
		s.Update(g, dt)
	}
}

// Win ends the round with the horde cleared
func (g *Game) Win() {
	g.fire(EventHordeCleared)
}

// Lose ends the round with the player ship hit
func (g *Game) Lose() {
	g.fire(EventShipHit)
}

func (g *Game) fire(ev fsm.EventID) bool {
	from := g.State()
	if !g.machine.HandleEvent(g, ev) {
		return false
	}
	if to := g.State(); to != from {
		switch to {
		case StateWin:
			g.Stats.Inc(status.RoundsWon)
		case StateLose:
			g.Stats.Inc(status.RoundsLost)
		}
		log.Printf("[game] state %s -> %s", g.StateName(from), g.StateName(to))
	}
	return true
}

// restart replaces the match with a fresh one
func (g *Game) restart() {
	if g.Match != nil {
		g.Match.Teardown()
	}
	g.Match = NewMatch(g.Tuning)
	g.Selection = SelectStart
	g.Audio.StartLoop(LoopBackground)
}

// resumeLoops restarts the boss cue when play resumes mid-patrol
func (g *Game) resumeLoops() {
	if g.Match.BossPatrolling() {
		g.Audio.StartLoop(LoopBoss)
	}
}

// Shutdown releases the match; the game must not be ticked afterwards
func (g *Game) Shutdown() {
	if g.Match != nil {
		g.Match.Teardown()
		g.Match = nil
	}
	g.Audio.StopLoop(LoopBoss)
	g.Audio.StopLoop(LoopBackground)
}
