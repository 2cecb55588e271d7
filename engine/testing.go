package engine

import (
	"sync"
	"time"
)

// TestEpoch is the start time used by NewTestGame
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RecordingAudio captures cues and loop state for assertions
type RecordingAudio struct {
	mu    sync.Mutex
	Cues  []Cue
	loops [LoopCount]bool
}

func (r *RecordingAudio) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, c)
}

func (r *RecordingAudio) StartLoop(l Loop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loops[l] = true
}

func (r *RecordingAudio) StopLoop(l Loop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loops[l] = false
}

// Looping reports whether l is currently started
func (r *RecordingAudio) Looping(l Loop) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loops[l]
}

// Count returns how many times c was played
func (r *RecordingAudio) Count(c Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

// ScriptedRand replays fixed draws, then falls back to Default
// Draws are clamped into [0, n)
type ScriptedRand struct {
	Draws   []int
	Default int
	Calls   int
}

func (r *ScriptedRand) Intn(n int) int {
	r.Calls++
	v := r.Default
	if len(r.Draws) > 0 {
		v = r.Draws[0]
		r.Draws = r.Draws[1:]
	}
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// NewTestGame creates a game on a mock clock with recording audio
// The default rand draws high, so aliens never fire
func NewTestGame() (*Game, *MockTimeProvider, *RecordingAudio, *ScriptedRand) {
	clock := NewMockTimeProvider(TestEpoch)
	audio := &RecordingAudio{}
	rng := &ScriptedRand{Default: 1 << 30}
	return NewGame(clock, audio, rng), clock, audio, rng
}
