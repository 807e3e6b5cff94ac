package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termidle/internal/platform/tui"
	"github.com/vovakirdan/termidle/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent runs from the ledger given with --db.

Examples:
  termidle history --db ~/.termidle/runs.db
  termidle history --db ~/.termidle/runs.db --limit 25
  termidle history --db ~/.termidle/runs.db --tui`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse runs in an interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: history needs a ledger, pass --db <path>")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagHistoryTUI {
		if err := tui.EnsureTerminal(os.Stdin.Fd(), os.Stdout.Fd()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		width, height := tui.TerminalSize(os.Stdout.Fd())
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printHistory(os.Stdout, store, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent runs")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'termidle play --db <path>' to record one!")
		return nil
	}

	fmt.Fprintf(w, "  %-5s  %-9s  %5s  %6s  %8s  %s\n", "Run", "Result", "Level", "Ticks", "Time", "Date")
	fmt.Fprintf(w, "  %-5s  %-9s  %5s  %6s  %8s  %s\n", "---", "------", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-5d  %-9s  %5d  %6d  %8s  %s\n",
			r.ID, r.Status, r.Level, r.Ticks,
			r.Duration.Round(time.Second), r.CreatedAt.Local().Format("Jan 02 15:04"))
	}

	best, err := store.BestRun()
	switch {
	case err == nil:
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: level %d (%s) in %d ticks\n", best.Level, best.Status, best.Ticks)
	case !errors.Is(err, storage.ErrNoRuns):
		return err
	}
	return nil
}
