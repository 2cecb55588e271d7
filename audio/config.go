package audio

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	CueVolumes   map[engine.Cue]float64
	LoopVolumes  map[engine.Loop]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[engine.Cue]float64{
			engine.CueShipFire:       0.5,
			engine.CueAlienFire:      0.3,
			engine.CueBossFire:       0.4,
			engine.CueAlienExplosion: 0.6,
			engine.CueShipExplosion:  0.9,
			engine.CuePowerup:        0.7,
			engine.CueWin:            1.0,
			engine.CueLose:           1.0,
			engine.CueMenu:           0.5,
		},
		LoopVolumes: map[engine.Loop]float64{
			engine.LoopBackground: 0.4,
			engine.LoopBoss:       0.3,
		},
	}
}

// LoadAudioConfig overlays environment variables on the defaults
// INVADERS_SFX_VOLUMES is a flow map keyed by cue name, e.g. {ship-fire: 0.2, menu: 0}
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("INVADERS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if mute := os.Getenv("INVADERS_MUTE"); mute != "" {
		if val, err := strconv.ParseBool(mute); err == nil && val {
			cfg.Enabled = false
		}
	}

	// Master volume is 0-100
	if volume := os.Getenv("INVADERS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if cueVols := os.Getenv("INVADERS_SFX_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := yaml.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for c := engine.Cue(0); c < engine.CueCount; c++ {
				if v, ok := volumes[c.String()]; ok {
					cfg.CueVolumes[c] = clamp01(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("INVADERS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
