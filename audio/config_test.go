package audio

import (
	"testing"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/engine"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for c := engine.Cue(0); c < engine.CueCount; c++ {
		if _, ok := cfg.CueVolumes[c]; !ok {
			t.Errorf("Expected volume for cue %s", c)
		}
	}
	for l := engine.Loop(0); l < engine.LoopCount; l++ {
		if _, ok := cfg.LoopVolumes[l]; !ok {
			t.Errorf("Expected volume for loop %s", l)
		}
	}
}

// TestLoadAudioConfigEnv verifies environment overrides
func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("INVADERS_AUDIO_ENABLED", "true")
	t.Setenv("INVADERS_MASTER_VOLUME", "150")
	t.Setenv("INVADERS_SFX_VOLUMES", "{ship-fire: 0.25, menu: 0}")
	t.Setenv("INVADERS_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.CueVolumes[engine.CueShipFire] != 0.25 {
		t.Errorf("Expected ship-fire volume 0.25, got %f", cfg.CueVolumes[engine.CueShipFire])
	}
	if cfg.CueVolumes[engine.CueMenu] != 0 {
		t.Errorf("Expected menu volume 0, got %f", cfg.CueVolumes[engine.CueMenu])
	}
	if cfg.CueVolumes[engine.CueWin] != 1.0 {
		t.Errorf("Expected untouched win volume 1.0, got %f", cfg.CueVolumes[engine.CueWin])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigMute verifies mute wins over enabled
func TestLoadAudioConfigMute(t *testing.T) {
	t.Setenv("INVADERS_AUDIO_ENABLED", "true")
	t.Setenv("INVADERS_MUTE", "1")

	if LoadAudioConfig().Enabled {
		t.Error("Expected mute to disable audio")
	}
}

// TestLoadAudioConfigIgnoresGarbage verifies malformed values keep defaults
func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("INVADERS_AUDIO_ENABLED", "maybe")
	t.Setenv("INVADERS_MASTER_VOLUME", "loud")
	t.Setenv("INVADERS_SFX_VOLUMES", "[not a map")
	t.Setenv("INVADERS_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
