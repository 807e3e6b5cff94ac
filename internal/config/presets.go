package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned for a preset name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset names a player start profile. Presets only change the player;
// every run still faces the same enemy.
type Preset string

const (
	PresetStandard Preset = "standard"
	PresetVeteran  Preset = "veteran"
	PresetGlass    Preset = "glass"
	PresetDoomed   Preset = "doomed"
)

// PresetInfo describes a preset for listings.
type PresetInfo struct {
	Name        Preset
	Description string
	Player      PlayerConfig
}

var presets = map[Preset]PresetInfo{
	PresetStandard: {
		Name:        PresetStandard,
		Description: "Level 1 with a full health pool",
		Player:      PlayerConfig{Level: 1, Health: 100, Attack: 10},
	},
	PresetVeteran: {
		Name:        PresetVeteran,
		Description: "Starts halfway to the level cap",
		Player:      PlayerConfig{Level: 50, Health: 150, Attack: 10},
	},
	PresetGlass: {
		Name:        PresetGlass,
		Description: "Wins one fight, then falls",
		Player:      PlayerConfig{Level: 1, Health: 20, Attack: 10},
	},
	PresetDoomed: {
		Name:        PresetDoomed,
		Description: "Cannot win a single fight",
		Player:      PlayerConfig{Level: 1, Health: 1, Attack: 1},
	},
}

// Presets returns all presets sorted by name.
func Presets() []PresetInfo {
	result := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (PresetInfo, error) {
	p, ok := presets[Preset(name)]
	if !ok {
		return PresetInfo{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// ApplyPreset replaces the player stats with the named preset.
// An empty name leaves the config unchanged.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, err := LookupPreset(name)
	if err != nil {
		return err
	}
	cfg.Preset = string(p.Name)
	cfg.Player = p.Player
	return nil
}
