package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

const (
	marchBeatInterval = 500 * time.Millisecond
	marchNoteDuration = 90 * time.Millisecond
	marchAmplitude    = 0.5

	sirenBaseHz      = 600.0
	sirenDepthHz     = 180.0
	sirenWarbleHz    = 7.0
	sirenAmplitude   = 0.25
	sirenTremoloRate = 0.5
)

// Descending four-note bass line
var marchNotesHz = [4]float64{87.31, 77.78, 69.30, 65.41}

// MarchGenerator is the endless four-note bass march under play
type MarchGenerator struct {
	sr    beep.SampleRate
	pos   int
	beat  int
	note  int
	phase float64
}

// NewMarchGenerator creates a march generator
func NewMarchGenerator(sr beep.SampleRate) *MarchGenerator {
	return &MarchGenerator{
		sr:   sr,
		beat: sr.N(marchBeatInterval),
		note: sr.N(marchNoteDuration),
	}
}

func (g *MarchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		step := (g.pos / g.beat) % len(marchNotesHz)

		sample := 0.0
		if beatPos < g.note {
			if beatPos == 0 {
				g.phase = 0
			}
			env := 1.0 - float64(beatPos)/float64(g.note)
			sample = marchAmplitude * env * waveAt(WaveSquare, g.phase)
			g.phase += marchNotesHz[step] / float64(g.sr)
			g.phase -= math.Floor(g.phase)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MarchGenerator) Err() error {
	return nil
}

// SirenGenerator is the warbling tone while the boss patrols
type SirenGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewSirenGenerator creates a siren generator
func NewSirenGenerator(sr beep.SampleRate) *SirenGenerator {
	return &SirenGenerator{sr: sr}
}

func (g *SirenGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := sirenBaseHz + sirenDepthHz*math.Sin(2*math.Pi*sirenWarbleHz*t)
		amplitude := sirenAmplitude * (0.75 + 0.25*math.Sin(2*math.Pi*sirenTremoloRate*t))
		sample := amplitude * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SirenGenerator) Err() error {
	return nil
}

// CreateLoopSound builds the endless streamer for loop at the configured volume
func CreateLoopSound(loop engine.Loop, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch loop {
	case engine.LoopBackground:
		s = NewMarchGenerator(rate)
	case engine.LoopBoss:
		s = NewSirenGenerator(rate)
	default:
		return nil
	}

	return newVolume(s, cfg.LoopVolumes[loop]*cfg.MasterVolume)
}
