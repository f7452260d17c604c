package prefs

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v3"
)

// MaxRecent is the number of dependency selections kept in the history.
const MaxRecent = 6

// Preferences is the per-user record of last-used project settings and
// recent dependency selections, persisted as preferences.yaml.
type Preferences struct {
	LastProjectType    string     `yaml:"last_project_type"`
	LastLanguage       string     `yaml:"last_language"`
	LastJavaVersion    string     `yaml:"last_java_version"`
	LastGroupID        string     `yaml:"last_group_id"`
	LastPackaging      string     `yaml:"last_packaging"`
	Theme              string     `yaml:"theme,omitempty"`
	RecentDependencies [][]string `yaml:"recent_dependencies,omitempty"`
}

// Default returns the record used when nothing usable is on disk.
func Default() Preferences {
	return Preferences{
		LastProjectType: "gradle-project",
		LastLanguage:    "java",
		LastJavaVersion: "25",
		LastGroupID:     "com.example",
		LastPackaging:   "jar",
		Theme:           "spring",
	}
}

// Parse parses preferences.yaml bytes. Fields missing from the document keep
// their default values.
func Parse(data []byte) (Preferences, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("parsing preferences: %w", err)
	}
	return p, nil
}

// Marshal serializes preferences to YAML bytes.
func Marshal(p Preferences) ([]byte, error) {
	return yaml.Marshal(p)
}

// AddRecent records ids as the most recent selection. An identical earlier
// entry (same ids in the same order) is removed first, and the history is
// truncated to MaxRecent. Empty selections are ignored.
func AddRecent(p *Preferences, ids []string) {
	if len(ids) == 0 {
		return
	}
	entry := slices.Clone(ids)

	history := make([][]string, 0, len(p.RecentDependencies)+1)
	history = append(history, entry)
	for _, existing := range p.RecentDependencies {
		if slices.Equal(existing, entry) {
			continue
		}
		history = append(history, existing)
	}
	if len(history) > MaxRecent {
		history = history[:MaxRecent]
	}
	p.RecentDependencies = history
}

// normalizeHistory keeps the first occurrence of each non-empty entry, in
// order, capped at MaxRecent.
func normalizeHistory(history [][]string) [][]string {
	kept := make([][]string, 0, min(len(history), MaxRecent))
	for _, entry := range history {
		if len(entry) == 0 {
			continue
		}
		if slices.ContainsFunc(kept, func(k []string) bool { return slices.Equal(k, entry) }) {
			continue
		}
		kept = append(kept, entry)
		if len(kept) == MaxRecent {
			break
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// Latest returns the most recent selection, or nil when the history is empty.
func (p Preferences) Latest() []string {
	if len(p.RecentDependencies) == 0 {
		return nil
	}
	return slices.Clone(p.RecentDependencies[0])
}

// ClearRecent drops the whole history.
func (p *Preferences) ClearRecent() {
	p.RecentDependencies = nil
}
