package config

import (
	_ "embed"

	"github.com/vovakirdan/termidle/internal/core"
)

//go:embed defaults/termidle.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Preset: string(PresetStandard),
		Timing: TimingConfig{
			TickInterval:   core.DefaultTickInterval,
			RenderInterval: core.DefaultRenderInterval,
		},
		Player: PlayerConfig{
			Level:  1,
			Health: 100,
			Attack: 10,
		},
		Keys: KeysConfig{
			Quit: []string{"q", "ctrl+c"},
		},
	}
}
