package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite raw wave, optionally gliding linearly between two frequencies
type oscillator struct {
	freq     float64
	glide    float64 // Frequency delta per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.freq += o.glide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveAt evaluates one period of wave at phase in [0, 1)
func waveAt(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an oscillator shaped by a short attack and a release covering most of the note
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, 5*time.Millisecond, d*2/3, rate)
}

// notes plays fixed-pitch tones back to back
func notes(freqs []float64, each time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		seq = append(seq, tone(f, f, each, wave, rate))
	}
	return beep.Seq(seq...)
}

// Cue recipes
const (
	shipFireDuration       = 90 * time.Millisecond
	alienFireDuration      = 70 * time.Millisecond
	bossFireDuration       = 110 * time.Millisecond
	alienExplosionDuration = 180 * time.Millisecond
	shipExplosionDuration  = 700 * time.Millisecond
	powerupDuration        = 250 * time.Millisecond
	jingleNoteDuration     = 140 * time.Millisecond
	menuBlipDuration       = 40 * time.Millisecond
)

// CreateCueSound builds the one-shot streamer for cue at the configured volume
// Returns nil for unknown cues
func CreateCueSound(cue engine.Cue, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch cue {
	case engine.CueShipFire:
		s = tone(1200, 400, shipFireDuration, WaveSquare, rate)
	case engine.CueAlienFire:
		s = tone(300, 180, alienFireDuration, WaveSaw, rate)
	case engine.CueBossFire:
		s = tone(500, 250, bossFireDuration, WaveSquare, rate)
	case engine.CueAlienExplosion:
		s = NewEnvelope(NewOscillator(0, alienExplosionDuration, WaveNoise, rate),
			alienExplosionDuration, 2*time.Millisecond, alienExplosionDuration/2, rate)
	case engine.CueShipExplosion:
		noise := NewEnvelope(NewOscillator(0, shipExplosionDuration, WaveNoise, rate),
			shipExplosionDuration, 5*time.Millisecond, shipExplosionDuration*3/4, rate)
		rumble := tone(90, 40, shipExplosionDuration, WaveSine, rate)
		s = beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	case engine.CuePowerup:
		s = tone(440, 1320, powerupDuration, WaveSine, rate)
	case engine.CueWin:
		s = notes([]float64{523.25, 659.25, 783.99, 1046.50}, jingleNoteDuration, WaveSquare, rate)
	case engine.CueLose:
		s = notes([]float64{392.00, 329.63, 261.63, 196.00}, jingleNoteDuration*2, WaveSaw, rate)
	case engine.CueMenu:
		s = tone(660, 660, menuBlipDuration, WaveSine, rate)
	default:
		return nil
	}

	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
