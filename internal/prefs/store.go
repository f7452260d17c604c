package prefs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ruminaider/springinit/internal/paths"
)

// Store reads and writes the preference record in a host-supplied directory.
// Calls are not synchronized; one Store per process, no concurrent Save.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore returns a store rooted at dir. A nil logger discards output.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{dir: dir, logger: logger}
}

// Path returns the location of the preference record.
func (s *Store) Path() string {
	return filepath.Join(s.dir, paths.PreferencesFileName)
}

// Load returns the persisted preferences. A missing or unreadable record
// yields Default(); the store is advisory, so this never fails.
func (s *Store) Load() Preferences {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("reading preferences, using defaults", "path", s.Path(), "error", err)
		}
		return Default()
	}
	p, err := Parse(data)
	if err != nil {
		s.logger.Warn("preferences unparseable, using defaults", "path", s.Path(), "error", err)
		return Default()
	}
	p.RecentDependencies = normalizeHistory(p.RecentDependencies)
	s.logger.Debug("loaded preferences", "path", s.Path(), "recent", len(p.RecentDependencies))
	return p
}

// Save writes p, creating the directory when needed.
func (s *Store) Save(p Preferences) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	s.logger.Debug("saved preferences", "path", s.Path(), "recent", len(p.RecentDependencies))
	return nil
}

// Commit records a completed selection and persists the result.
func (s *Store) Commit(p *Preferences, ids []string) error {
	AddRecent(p, ids)
	return s.Save(*p)
}
