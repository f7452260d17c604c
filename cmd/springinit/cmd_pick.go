package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/springinit/cmd/springinit/tui"
	"github.com/ruminaider/springinit/internal/catalog"
	"github.com/ruminaider/springinit/internal/picker"
	"github.com/ruminaider/springinit/internal/prefs"
	"github.com/ruminaider/springinit/internal/project"
	"github.com/spf13/cobra"
)

var (
	pickMetadata  string
	pickConfigure bool
)

var errNotTerminal = errors.New("an interactive terminal is required")

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick dependencies for a new project",
	Long: "Loads a metadata document, applies your last-used settings and opens the dependency picker.\n" +
		"Pressing g records the selection in the recent history.",
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVarP(&pickMetadata, "metadata", "m", "", "metadata JSON document (required)")
	pickCmd.Flags().BoolVar(&pickConfigure, "configure", false, "edit project settings before picking")
	_ = pickCmd.MarkFlagRequired("metadata")
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errNotTerminal
	}

	meta, err := catalog.Load(pickMetadata)
	if err != nil {
		return err
	}
	logger.Info("loaded metadata", "path", pickMetadata, "categories", len(meta.Categories()))

	store := newStore()
	p := store.Load()

	cfg := project.New()
	cfg.ApplyDefaults(meta)
	cfg.ApplyPreferences(p)

	if pickConfigure {
		if err := runProjectForm(meta, cfg); err != nil {
			return err
		}
	}

	// The most recent selection is read once here and injected.
	list := picker.New(meta.Categories(), cfg, p.Latest())
	styles := tui.NewStyles(resolveTheme(p))
	title := fmt.Sprintf("%s · %s · %s", cfg.Name, cfg.ProjectType, cfg.BootVersion)
	model := tui.NewPickerModel(list, cfg, styles, title)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if !finalModel.(tui.PickerModel).Committed {
		logger.Debug("picker closed without commit")
		return nil
	}

	cfg.Remember(&p)
	if err := store.Commit(&p, cfg.SelectedDependencies()); err != nil {
		return err
	}
	logger.Info("recorded selection", "dependencies", cfg.SelectedCount())

	printSelection(cmd.OutOrStdout(), cfg, meta)
	return nil
}

// runProjectForm lets the user adjust the project settings offered by the
// metadata document.
func runProjectForm(meta catalog.Metadata, cfg *project.Config) error {
	groupID, artifactID := cfg.GroupID, cfg.ArtifactID

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(selectOptions(meta.Type)...).
				Value(&cfg.ProjectType),
			huh.NewSelect[string]().
				Title("Language").
				Options(selectOptions(meta.Language)...).
				Value(&cfg.Language),
			huh.NewSelect[string]().
				Title("Spring Boot").
				Options(bootOptions(meta.BootVersion)...).
				Value(&cfg.BootVersion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Group").
				Value(&groupID).
				Validate(validateIdentifier),
			huh.NewInput().
				Title("Artifact").
				Value(&artifactID).
				Validate(validateIdentifier),
			huh.NewInput().
				Title("Description").
				Value(&cfg.Description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Packaging").
				Options(selectOptions(meta.Packaging)...).
				Value(&cfg.Packaging),
			huh.NewSelect[string]().
				Title("Java").
				Options(selectOptions(meta.JavaVersion)...).
				Value(&cfg.JavaVersion),
			huh.NewSelect[string]().
				Title("Configuration").
				Options(selectOptions(meta.ApplicationFormatOrDefault())...).
				Value(&cfg.ApplicationFormat),
		),
	).Run()
	if err != nil {
		return err
	}

	cfg.SetGroupID(groupID)
	cfg.SetArtifactID(artifactID)
	return nil
}

// selectOptions converts a metadata select field into form options. A
// field missing from the document yields no options.
func selectOptions(f *catalog.SelectField) []huh.Option[string] {
	if f == nil {
		return nil
	}
	opts := make([]huh.Option[string], 0, len(f.Values))
	for _, v := range f.Values {
		opts = append(opts, huh.NewOption(catalog.DisplayName(v), v.ID))
	}
	return opts
}

// bootOptions is selectOptions with option values cleaned the same way the
// configured boot version is.
func bootOptions(f *catalog.SelectField) []huh.Option[string] {
	opts := selectOptions(f)
	for i := range opts {
		opts[i].Value = project.CleanBootVersion(opts[i].Value)
	}
	return opts
}

func validateIdentifier(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("required")
	}
	if strings.ContainsAny(s, " /\\") {
		return errors.New("must not contain spaces or slashes")
	}
	return nil
}

// printSelection writes the committed project and its dependencies.
func printSelection(w io.Writer, cfg *project.Config, meta catalog.Metadata) {
	fmt.Fprintf(w, "%s (%s)\n", cfg.Name, cfg.PackageName)
	fmt.Fprintf(w, "  %s · %s · Spring Boot %s · Java %s · %s\n",
		cfg.ProjectType, cfg.Language, cfg.BootVersion, cfg.JavaVersion, cfg.Packaging)

	deps := cfg.SelectedDependencies()
	if len(deps) == 0 {
		fmt.Fprintln(w, "\nNo dependencies selected.")
		return
	}
	fmt.Fprintf(w, "\nDependencies (%d):\n", len(deps))
	for _, id := range deps {
		fmt.Fprintf(w, "  ✓ %s\n", dependencyLabel(meta, id))
	}
}

// dependencyLabel returns "Name (id)" for known ids and the bare id otherwise.
func dependencyLabel(meta catalog.Metadata, id string) string {
	if d, ok := meta.Lookup(id); ok && d.Name != "" {
		return fmt.Sprintf("%s (%s)", d.Name, id)
	}
	return id
}

// latestSummary is shared by commands that describe the recent history.
func latestSummary(p prefs.Preferences) string {
	latest := p.Latest()
	if latest == nil {
		return "no recent selection"
	}
	return strings.Join(latest, ", ")
}
