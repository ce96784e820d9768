package sim

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if !cfg.Audio {
		t.Error("expected audio on by default")
	}
	if cfg.ToneHz != 2000 {
		t.Errorf("ToneHz = %v, want 2000", cfg.ToneHz)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Hold != 250*time.Millisecond {
		t.Errorf("Hold = %v, want 250ms", cfg.Hold)
	}
	if cfg.Seed != 0 || cfg.LogPath != "" {
		t.Errorf("unexpected seed/log defaults: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REACTION_SIM_AUDIO", "false")
	t.Setenv("REACTION_SIM_HOLD", "400ms")
	t.Setenv("REACTION_SIM_SEED", "42")
	t.Setenv("REACTION_SIM_LOG", "/tmp/reaction.log")
	t.Setenv("REACTION_SIM_TONE_HZ", "880")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Audio {
		t.Error("expected audio off")
	}
	if cfg.Hold != 400*time.Millisecond {
		t.Errorf("Hold = %v, want 400ms", cfg.Hold)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogPath != "/tmp/reaction.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.ToneHz != 880 {
		t.Errorf("ToneHz = %v, want 880", cfg.ToneHz)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	testCases := []struct {
		name, key, value string
	}{
		{"bad bool", "REACTION_SIM_AUDIO", "maybe"},
		{"bad duration", "REACTION_SIM_HOLD", "soon"},
		{"zero hold", "REACTION_SIM_HOLD", "0s"},
		{"tone above nyquist", "REACTION_SIM_TONE_HZ", "30000"},
		{"negative sample rate", "REACTION_SIM_SAMPLE_RATE", "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("%s=%s: expected an error", tc.key, tc.value)
			}
		})
	}
}
