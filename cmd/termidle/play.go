package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termidle/internal/config"
	"github.com/vovakirdan/termidle/internal/engine"
	"github.com/vovakirdan/termidle/internal/games/termidle"
	"github.com/vovakirdan/termidle/internal/platform/tui"
	"github.com/vovakirdan/termidle/internal/storage"
)

// playFlags holds the per-session overrides. A flag only applies if it was
// set on the command line.
type playFlags struct {
	preset string
	tick   time.Duration
	render time.Duration
	level  int
	health int
	attack int
}

var flagPlay playFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session. The hero fights automatically once per tick
until reaching level 100 (victory) or losing a fight (game over).

Controls:
  Q/Ctrl+C   - Quit (configurable under keys.quit)

Settings are resolved in this order, later wins:
  config file -> TERMIDLE_* environment -> --preset -> --level/--health/--attack

Presets:
  standard - Level 1, 100 health, 10 attack
  veteran  - Level 50, 150 health, 10 attack
  glass    - Wins one fight, then falls
  doomed   - Cannot win a single fight

Examples:
  termidle play
  termidle play --preset veteran
  termidle play --tick 200ms --render 20ms
  termidle play --level 90 --health 500`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlay.preset, "preset", "", "Player preset: standard, veteran, glass, doomed")
	cmd.Flags().DurationVar(&flagPlay.tick, "tick", 0, "Simulation tick interval (e.g. 1s, 250ms)")
	cmd.Flags().DurationVar(&flagPlay.render, "render", 0, "Render interval, shorter than the tick")
	cmd.Flags().IntVar(&flagPlay.level, "level", 0, "Starting level")
	cmd.Flags().IntVar(&flagPlay.health, "health", 0, "Starting health")
	cmd.Flags().IntVar(&flagPlay.attack, "attack", 0, "Attack damage")
}

// apply layers the flags over cfg. changed reports whether a flag was set.
func (f playFlags) apply(cfg *config.Config, changed func(name string) bool) error {
	if changed("preset") {
		if err := config.ApplyPreset(cfg, f.preset); err != nil {
			return err
		}
	}
	if changed("tick") {
		cfg.Timing.TickInterval = f.tick
	}
	if changed("render") {
		cfg.Timing.RenderInterval = f.render
	}
	if changed("level") {
		cfg.Player.Level = f.level
	}
	if changed("health") {
		cfg.Player.Health = f.health
	}
	if changed("attack") {
		cfg.Player.Attack = f.attack
	}
	return cfg.Validate()
}

// loadPlayConfig resolves the session config from file, environment and flags.
func loadPlayConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := flagPlay.apply(&cfg, cmd.Flags().Changed); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.EnsureTerminal(os.Stdin.Fd(), os.Stdout.Fd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (play needs an interactive terminal)\n", err)
		os.Exit(1)
	}
	width, height := tui.TerminalSize(os.Stdout.Fd())

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Runtime: cfg.RuntimeConfig(),
		Keys:    engine.NewKeyMap(cfg.Keys.Quit),
		Logger:  logger,
		Width:   width,
		Height:  height,
	}

	// The ledger is optional; the game still works without it.
	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open run ledger: %v\n", err)
			logger.Warn("could not open run ledger", "error", err)
			store = nil
		} else {
			opts.Recorder = store
		}
	}

	logger.Info("session starting",
		"preset", cfg.Preset,
		"level", cfg.Player.Level,
		"health", cfg.Player.Health,
		"attack", cfg.Player.Attack,
		"tick", cfg.Timing.TickInterval,
		"render", cfg.Timing.RenderInterval,
	)
	game := termidle.New(cfg.Player.Level, cfg.Player.Health, cfg.Player.Attack)
	runErr := tui.Run(game, opts)

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
