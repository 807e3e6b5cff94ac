package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termidle/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List player start presets",
	Long:  `Shows the built-in presets accepted by --preset and the config file.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	printPresets(os.Stdout)
}

func printPresets(w io.Writer) {
	list := config.Presets()

	fmt.Fprintln(w, "Available presets:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range list {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Fprintf(w, "  %-*s  %5s  %6s  %6s  %s\n", maxNameLen, "Name", "Level", "Health", "Attack", "Description")
	fmt.Fprintf(w, "  %-*s  %5s  %6s  %6s  %s\n", maxNameLen, "----", "-----", "------", "------", "-----------")
	for _, p := range list {
		fmt.Fprintf(w, "  %-*s  %5d  %6d  %6d  %s\n",
			maxNameLen, p.Name, p.Player.Level, p.Player.Health, p.Player.Attack, p.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'termidle play --preset <name>' to use one.")
}
