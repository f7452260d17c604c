package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/springinit/cmd/springinit/tui"
	"github.com/ruminaider/springinit/internal/explorer"
	"github.com/spf13/cobra"
)

var exploreExclude []string

var exploreCmd = &cobra.Command{
	Use:   "explore <dir>",
	Short: "Browse the files of a generated project",
	Long: "Opens a read-only, syntax-highlighted viewer over the text files of an unpacked project.\n" +
		"The build file is shown first.",
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().StringSliceVarP(&exploreExclude, "exclude", "x", nil, "glob patterns of files to hide (repeatable)")
}

func runExplore(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errNotTerminal
	}

	dir := args[0]
	files, err := loadProjectFiles(dir, exploreExclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no text files found in " + dir)
	}
	logger.Info("loaded project", "dir", dir, "files", len(files))

	store := newStore()
	styles := tui.NewStyles(resolveTheme(store.Load()))

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	model := tui.NewExplorerModel(explorer.New(files), styles, filepath.Base(abs))

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
