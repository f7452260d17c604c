package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/ruminaider/springinit/internal/explorer"
)

// maxFileSize caps how much of a single file the explorer will load.
const maxFileSize = 512 * 1024

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	".idea":        true,
	".gradle":      true,
	"build":        true,
	"target":       true,
	"node_modules": true,
}

// buildFiles are shown first, in this order, when present at the root.
var buildFiles = []string{"pom.xml", "build.gradle.kts", "build.gradle"}

// loadProjectFiles collects the text files under dir for the explorer.
// Names are slash-separated paths relative to dir. Binary and oversized
// files are skipped, as are files whose relative path or base name matches
// one of the exclude globs.
func loadProjectFiles(dir string, exclude []string) ([]explorer.File, error) {
	excluded, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("reading project: %s is not a directory", dir)
	}

	var files []explorer.File
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return skipUnreadable(dir, path, d, err)
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return skipUnreadable(dir, path, d, err)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if excluded(rel) {
			logger.Debug("skipping excluded file", "file", rel)
			return nil
		}
		if fi.Size() > maxFileSize {
			logger.Debug("skipping large file", "file", rel, "size", fi.Size())
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return skipUnreadable(dir, path, d, err)
		}
		if !isText(data) {
			logger.Debug("skipping binary file", "file", rel)
			return nil
		}
		files = append(files, explorer.File{Name: rel, Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	sortProjectFiles(files)
	return files, nil
}

// skipUnreadable decides what to do with a walk error. Only a failure on the
// root aborts the walk; unreadable entries below it are logged and skipped.
func skipUnreadable(root, path string, d fs.DirEntry, err error) error {
	if path == root || d == nil {
		return err
	}
	logger.Debug("skipping unreadable entry", "path", path, "error", err)
	if d.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

// sortProjectFiles puts root build files first, then everything else by path.
func sortProjectFiles(files []explorer.File) {
	rank := func(name string) int {
		for i, b := range buildFiles {
			if name == b {
				return i
			}
		}
		return len(buildFiles)
	}
	sort.SliceStable(files, func(i, j int) bool {
		ri, rj := rank(files[i].Name), rank(files[j].Name)
		if ri != rj {
			return ri < rj
		}
		return files[i].Name < files[j].Name
	})
}

// compileExcludes returns a matcher over relative paths. A single * does not
// cross directory separators; ** does.
func compileExcludes(patterns []string) (func(rel string) bool, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return func(rel string) bool {
		base := path.Base(rel)
		for _, g := range globs {
			if g.Match(rel) || g.Match(base) {
				return true
			}
		}
		return false
	}, nil
}

func isText(data []byte) bool {
	return !bytes.ContainsRune(data, 0) && utf8.Valid(data)
}
