package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/springinit/cmd/springinit/tui"
	"github.com/ruminaider/springinit/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsEdit bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or edit saved preferences",
	Long: "Shows the preference record used to pre-fill new projects.\n" +
		"With --edit, opens a form to change the saved values.",
	RunE: runPrefs,
}

func init() {
	prefsCmd.Flags().BoolVarP(&prefsEdit, "edit", "e", false, "edit preferences interactively")
}

func runPrefs(cmd *cobra.Command, args []string) error {
	store := newStore()
	p := store.Load()
	out := cmd.OutOrStdout()

	if !prefsEdit {
		printPrefs(out, store.Path(), p)
		return nil
	}

	if err := runPrefsForm(&p); err != nil {
		return err
	}
	if err := store.Save(p); err != nil {
		return err
	}
	logger.Info("saved preferences", "path", store.Path())
	fmt.Fprintf(out, "Saved %s\n", store.Path())
	return nil
}

func runPrefsForm(p *prefs.Preferences) error {
	themes := make([]huh.Option[string], 0, len(tui.ThemeNames()))
	for _, name := range tui.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Build").
				Options(
					huh.NewOption("Gradle - Groovy", "gradle-project"),
					huh.NewOption("Gradle - Kotlin", "gradle-project-kotlin"),
					huh.NewOption("Maven", "maven-project"),
				).
				Value(&p.LastProjectType),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("Java", "java"),
					huh.NewOption("Kotlin", "kotlin"),
					huh.NewOption("Groovy", "groovy"),
				).
				Value(&p.LastLanguage),
			huh.NewInput().
				Title("Java version").
				Value(&p.LastJavaVersion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Group").
				Value(&p.LastGroupID).
				Validate(validateIdentifier),
			huh.NewSelect[string]().
				Title("Packaging").
				Options(
					huh.NewOption("Jar", "jar"),
					huh.NewOption("War", "war"),
				).
				Value(&p.LastPackaging),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&p.Theme),
		),
	).Run()
}

func printPrefs(w io.Writer, path string, p prefs.Preferences) {
	fmt.Fprintf(w, "%s\n\n", path)
	fmt.Fprintf(w, "  project type  %s\n", p.LastProjectType)
	fmt.Fprintf(w, "  language      %s\n", p.LastLanguage)
	fmt.Fprintf(w, "  java version  %s\n", p.LastJavaVersion)
	fmt.Fprintf(w, "  group         %s\n", p.LastGroupID)
	fmt.Fprintf(w, "  packaging     %s\n", p.LastPackaging)
	fmt.Fprintf(w, "  theme         %s\n", p.Theme)
	fmt.Fprintf(w, "  last picked   %s\n", latestSummary(p))
}
