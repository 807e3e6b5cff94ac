// Package config provides YAML-based session configuration with embedded
// defaults, environment overrides and named player presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/termidle/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains all settings for a session.
type Config struct {
	Preset string       `yaml:"preset"`
	Timing TimingConfig `yaml:"timing"`
	Player PlayerConfig `yaml:"player"`
	Keys   KeysConfig   `yaml:"keys"`
}

// TimingConfig defines the two loop cadences.
type TimingConfig struct {
	TickInterval   time.Duration `yaml:"tick_interval"   env:"TERMIDLE_TICK_INTERVAL"`
	RenderInterval time.Duration `yaml:"render_interval" env:"TERMIDLE_RENDER_INTERVAL"`
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Level  int `yaml:"level"  env:"TERMIDLE_PLAYER_LEVEL"`
	Health int `yaml:"health" env:"TERMIDLE_PLAYER_HEALTH"`
	Attack int `yaml:"attack" env:"TERMIDLE_PLAYER_ATTACK"`
}

// KeysConfig defines key bindings, using Bubble Tea key names.
type KeysConfig struct {
	Quit []string `yaml:"quit" env:"TERMIDLE_KEYS_QUIT" envSeparator:","`
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	t := c.Timing
	if t.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %v", ErrInvalidConfig, t.TickInterval)
	}
	if t.RenderInterval <= 0 {
		return fmt.Errorf("%w: render_interval must be positive, got %v", ErrInvalidConfig, t.RenderInterval)
	}
	if t.RenderInterval >= t.TickInterval {
		return fmt.Errorf("%w: render_interval %v must be shorter than tick_interval %v",
			ErrInvalidConfig, t.RenderInterval, t.TickInterval)
	}

	p := c.Player
	if p.Level < 1 {
		return fmt.Errorf("%w: player level must be at least 1, got %d", ErrInvalidConfig, p.Level)
	}
	if p.Health < 0 {
		return fmt.Errorf("%w: player health must not be negative, got %d", ErrInvalidConfig, p.Health)
	}
	if p.Attack < 0 {
		return fmt.Errorf("%w: player attack must not be negative, got %d", ErrInvalidConfig, p.Attack)
	}

	if len(c.Keys.Quit) == 0 {
		return fmt.Errorf("%w: at least one quit key is required", ErrInvalidConfig)
	}
	return nil
}

// RuntimeConfig returns the loop cadences.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickInterval:   c.Timing.TickInterval,
		RenderInterval: c.Timing.RenderInterval,
	}
}
