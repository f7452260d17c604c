package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/springinit/internal/prefs"
	"github.com/spf13/cobra"
)

var (
	recentClear bool
	recentYes   bool
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show or clear recent dependency selections",
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "clear the recent history")
	recentCmd.Flags().BoolVarP(&recentYes, "yes", "y", false, "skip confirmation when clearing")
}

func runRecent(cmd *cobra.Command, args []string) error {
	store := newStore()
	p := store.Load()
	out := cmd.OutOrStdout()

	if !recentClear {
		printRecent(out, p)
		return nil
	}

	if len(p.RecentDependencies) == 0 {
		fmt.Fprintln(out, "Recent history is already empty.")
		return nil
	}
	if !recentYes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Clear %d recent selections?", len(p.RecentDependencies))).
			Affirmative("Clear").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	p.ClearRecent()
	if err := store.Save(p); err != nil {
		return err
	}
	logger.Info("cleared recent history", "path", store.Path())
	fmt.Fprintln(out, "Recent history cleared.")
	return nil
}

// printRecent lists the history, most recent first.
func printRecent(w io.Writer, p prefs.Preferences) {
	if len(p.RecentDependencies) == 0 {
		fmt.Fprintln(w, "No recent selections.")
		return
	}
	for i, ids := range p.RecentDependencies {
		fmt.Fprintf(w, "%d. %s\n", i+1, strings.Join(ids, ", "))
	}
}
