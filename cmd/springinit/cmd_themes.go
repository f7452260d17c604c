package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/springinit/cmd/springinit/tui"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if flagTheme != "" {
			if _, ok := tui.LookupTheme(flagTheme); !ok {
				printUnknownTheme(out, flagTheme)
			}
		}
		current := resolveTheme(newStore().Load()).Name
		printThemes(out, current)
	},
}

// printThemes lists every theme with a swatch of its primary colors. The
// current theme is marked with an asterisk.
func printThemes(w io.Writer, current string) {
	for _, name := range tui.ThemeNames() {
		th := tui.ThemeByName(name)
		marker := " "
		if name == current {
			marker = "*"
		}
		swatch := lipgloss.NewStyle().Foreground(th.Primary).Render("■") +
			lipgloss.NewStyle().Foreground(th.Secondary).Render("■") +
			lipgloss.NewStyle().Foreground(th.Accent).Render("■")
		fmt.Fprintf(w, "%s %s %s\n", marker, swatch, name)
	}
}

func printUnknownTheme(w io.Writer, name string) {
	if s := tui.SuggestTheme(name); s != "" {
		fmt.Fprintf(w, "Unknown theme %q, did you mean %q?\n\n", name, s)
		return
	}
	fmt.Fprintf(w, "Unknown theme %q, using %s.\n\n", name, tui.DefaultTheme)
}
