package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.springinit.
func ConfigDir() string {
	return filepath.Join(home(), ".springinit")
}

// PreferencesFileName is the name of the preference record inside a config dir.
const PreferencesFileName = "preferences.yaml"

// LogFile returns ~/.springinit/springinit.log.
func LogFile() string {
	return filepath.Join(ConfigDir(), "springinit.log")
}
