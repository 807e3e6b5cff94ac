// termidle is an idle RPG that plays itself in the terminal.
//
// Usage:
//
//	termidle                 - Play a session (same as "termidle play")
//	termidle play            - Play a session
//	termidle presets         - List player start presets
//	termidle history         - Show runs recorded in the ledger
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--db <path>         - Record finished runs in an SQLite ledger
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termidle",
	Short: "termidle - an idle RPG for your terminal",
	Long: `termidle is a terminal idle game. Your hero fights one enemy per tick,
levels up after every win and stops at level 100 or on the first defeat.
You only watch; press q to leave.

Available commands:
  play     - Play a session (default)
  presets  - List player start presets
  history  - Show recorded runs

Examples:
  termidle
  termidle play --preset veteran
  termidle play --tick 250ms --db ~/.termidle/runs.db
  termidle history --db ~/.termidle/runs.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run ledger (disabled if empty)")

	// The root command plays too, so it takes the same flags as play.
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(historyCmd)
}
