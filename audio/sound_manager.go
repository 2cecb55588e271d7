// Package audio synthesizes the game's cues and loops and plays them through the system speaker.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

const speakerBufferDuration = 100 * time.Millisecond

// SoundManager plays engine cues through a single beep mixer
// Before Initialize succeeds, or when disabled, it only tracks loop state
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	loops       [engine.LoopCount]*beep.Ctrl
	wanted      [engine.LoopCount]bool
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true

	// Loops requested before the speaker came up
	for l := engine.Loop(0); l < engine.LoopCount; l++ {
		if sm.wanted[l] {
			sm.startLocked(l)
		}
	}
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for i, ctrl := range sm.loops {
		if ctrl != nil {
			ctrl.Paused = true
			sm.loops[i] = nil
		}
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; clearing the mixer leaves it streaming silence
	sm.initialized = false
}

// Play mixes in a one-shot cue
func (sm *SoundManager) Play(cue engine.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CreateCueSound(cue, sm.cfg)
	if s == nil {
		log.Printf("[audio] unknown cue %d", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartLoop starts loop unless it is already playing
func (sm *SoundManager) StartLoop(loop engine.Loop) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if loop >= engine.LoopCount {
		return
	}
	sm.wanted[loop] = true

	if !sm.initialized {
		return
	}
	sm.startLocked(loop)
}

func (sm *SoundManager) startLocked(loop engine.Loop) {
	if ctrl := sm.loops[loop]; ctrl != nil && !ctrl.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: CreateLoopSound(loop, sm.cfg), Paused: false}
	speaker.Lock()
	if old := sm.loops[loop]; old != nil {
		// Paused streamers stay in the mixer; drop the reference so the new one replaces it
		old.Streamer = nil
	}
	sm.loops[loop] = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopLoop pauses loop; stopping a silent loop is a no-op
func (sm *SoundManager) StopLoop(loop engine.Loop) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if loop >= engine.LoopCount {
		return
	}
	sm.wanted[loop] = false

	ctrl := sm.loops[loop]
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

// Looping reports whether loop was last started rather than stopped
func (sm *SoundManager) Looping(loop engine.Loop) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return loop < engine.LoopCount && sm.wanted[loop]
}
