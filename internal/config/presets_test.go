package config

import (
	"errors"
	"testing"

	"github.com/vovakirdan/termidle/internal/games/termidle"
)

func TestPresetsSorted(t *testing.T) {
	list := Presets()
	if len(list) != 4 {
		t.Fatalf("Expected 4 presets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("Presets not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()

	if err := ApplyPreset(&cfg, "glass"); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	if cfg.Player != (PlayerConfig{Level: 1, Health: 20, Attack: 10}) {
		t.Errorf("Unexpected player %+v", cfg.Player)
	}
	if cfg.Preset != "glass" {
		t.Errorf("Preset = %q, want glass", cfg.Preset)
	}

	before := cfg
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Fatalf("ApplyPreset(\"\") failed: %v", err)
	}
	if cfg.Player != before.Player {
		t.Error("Empty preset should leave the config unchanged")
	}

	if err := ApplyPreset(&cfg, "nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, p := range Presets() {
		cfg := DefaultConfig()
		if err := ApplyPreset(&cfg, string(p.Name)); err != nil {
			t.Fatalf("ApplyPreset(%q) failed: %v", p.Name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset %q does not validate: %v", p.Name, err)
		}
	}
}

func TestPresetOutcomes(t *testing.T) {
	tests := []struct {
		preset    string
		wins      int
		wantFinal termidle.Status
	}{
		{"glass", 1, termidle.StatusGameOver},
		{"doomed", 0, termidle.StatusGameOver},
		{"standard", 9, termidle.StatusGameOver},
	}

	for _, tt := range tests {
		info, err := LookupPreset(tt.preset)
		if err != nil {
			t.Fatalf("LookupPreset(%q) failed: %v", tt.preset, err)
		}
		p := info.Player
		game := termidle.New(p.Level, p.Health, p.Attack)
		for game.Status() == termidle.StatusPlaying {
			game.Advance()
		}

		if game.Status() != tt.wantFinal {
			t.Errorf("%s: final status %v, want %v", tt.preset, game.Status(), tt.wantFinal)
		}
		if wins := game.Level() - p.Level; wins != tt.wins {
			t.Errorf("%s: won %d fights, want %d", tt.preset, wins, tt.wins)
		}
	}
}
