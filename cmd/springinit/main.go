package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/springinit/cmd/springinit/tui"
	"github.com/ruminaider/springinit/internal/paths"
	"github.com/ruminaider/springinit/internal/prefs"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	flagConfigDir string
	flagTheme     string
	flagLogFile   string
	flagDebug     bool
)

// logger is replaced in PersistentPreRunE once flags are parsed.
var logger = discardLogger()

var rootCmd = &cobra.Command{
	Use:   "springinit",
	Short: "Pick Spring project dependencies and browse generated projects in the terminal",
	Long: "springinit is a terminal client for configuring Spring projects: pick dependencies from a\n" +
		"metadata catalog, browse an unpacked project, and reuse recent selections.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := setupLogging(flagLogFile, flagDebug)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("starting", "command", cmd.CommandPath(), "version", version)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "springinit %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigDir, "config-dir", "", "directory holding preferences.yaml (default ~/.springinit)")
	pf.StringVar(&flagTheme, "theme", "", "color theme (see 'springinit themes')")
	pf.StringVar(&flagLogFile, "log-file", "", "write logs to this file")
	pf.Lookup("log-file").NoOptDefVal = paths.LogFile()
	pf.BoolVar(&flagDebug, "debug", false, "log at debug level")

	// Runs after every command, including failed ones.
	cobra.OnFinalize(func() {
		if err := closeLogging(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(themesCmd)
}

// configDir returns the directory the preference store lives in.
func configDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	return paths.ConfigDir()
}

func newStore() *prefs.Store {
	return prefs.NewStore(configDir(), logger)
}

// resolveTheme picks the --theme flag over the saved preference. Unknown
// names fall back to the default theme.
func resolveTheme(p prefs.Preferences) tui.Theme {
	name := flagTheme
	if name == "" {
		name = p.Theme
	}
	if _, ok := tui.LookupTheme(name); !ok && name != "" {
		logger.Warn("unknown theme, using default",
			"theme", name, "default", tui.DefaultTheme, "suggestion", tui.SuggestTheme(name))
	}
	return tui.ThemeByName(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
