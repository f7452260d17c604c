package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/springinit/internal/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fileNames(files []explorer.File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func TestLoadProjectFiles_BuildFileFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "settings.gradle", "rootProject.name = 'demo'\n")
	writeFile(t, root, "HELP.md", "# Getting Started\n")
	writeFile(t, root, "build.gradle", "plugins {}\n")
	writeFile(t, root, "src/main/java/com/example/demo/DemoApplication.java", "package com.example.demo;\n")
	writeFile(t, root, "src/main/resources/application.properties", "spring.application.name=demo\n")

	files, err := loadProjectFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"build.gradle",
		"HELP.md",
		"settings.gradle",
		"src/main/java/com/example/demo/DemoApplication.java",
		"src/main/resources/application.properties",
	}, fileNames(files))
	assert.Equal(t, "plugins {}\n", files[0].Content)
}

func TestLoadProjectFiles_MavenBeforeGradle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "")
	writeFile(t, root, "pom.xml", "<project/>\n")
	writeFile(t, root, "a.txt", "a\n")

	files, err := loadProjectFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pom.xml", "build.gradle", "a.txt"}, fileNames(files))
}

func TestLoadProjectFiles_NestedBuildFileIsNotPromoted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a\n")
	writeFile(t, root, "lib/build.gradle", "")

	files, err := loadProjectFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "lib/build.gradle"}, fileNames(files))
}

func TestLoadProjectFiles_SkipsBinaryLargeAndIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pom.xml", "<project/>\n")
	writeFile(t, root, "gradle/wrapper/gradle-wrapper.jar", "PK\x03\x04\x00\x00")
	writeFile(t, root, ".git/HEAD", "ref: refs/heads/main\n")
	writeFile(t, root, "target/classes/app.properties", "x=1\n")
	writeFile(t, root, "latin1.txt", "caf\xe9\n")
	big := make([]byte, maxFileSize+1)
	for i := range big {
		big[i] = 'a'
	}
	writeFile(t, root, "big.txt", string(big))

	files, err := loadProjectFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pom.xml"}, fileNames(files))
}

func TestLoadProjectFiles_Errors(t *testing.T) {
	_, err := loadProjectFiles(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)

	root := t.TempDir()
	writeFile(t, root, "file.txt", "x")
	_, err = loadProjectFiles(filepath.Join(root, "file.txt"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestLoadProjectFiles_Empty(t *testing.T) {
	files, err := loadProjectFiles(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadProjectFiles_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pom.xml", "<project/>\n")
	writeFile(t, root, "HELP.md", "help\n")
	writeFile(t, root, "docs/guide.md", "guide\n")
	writeFile(t, root, "mvnw", "#!/bin/sh\n")
	writeFile(t, root, "mvnw.cmd", "@echo off\n")
	writeFile(t, root, "src/test/java/AppTests.java", "class AppTests {}\n")
	writeFile(t, root, "src/main/java/App.java", "class App {}\n")

	files, err := loadProjectFiles(root, []string{"*.md", "mvnw*", "src/test/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pom.xml", "src/main/java/App.java"}, fileNames(files))
}

func TestLoadProjectFiles_InvalidExclude(t *testing.T) {
	_, err := loadProjectFiles(t.TempDir(), []string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestSkipUnreadable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/a.txt", "a\n")
	denied := errors.New("permission denied")

	dirInfo, err := os.Stat(filepath.Join(root, "sub"))
	require.NoError(t, err)
	fileInfo, err := os.Stat(filepath.Join(root, "sub", "a.txt"))
	require.NoError(t, err)

	assert.Equal(t, filepath.SkipDir,
		skipUnreadable(root, filepath.Join(root, "sub"), fs.FileInfoToDirEntry(dirInfo), denied))
	assert.NoError(t,
		skipUnreadable(root, filepath.Join(root, "sub", "a.txt"), fs.FileInfoToDirEntry(fileInfo), denied))
	assert.Equal(t, denied, skipUnreadable(root, root, nil, denied))
	assert.Equal(t, denied, skipUnreadable(root, filepath.Join(root, "gone"), nil, denied))
}

func TestLoadProjectFiles_UnreadableDirectoryIsSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := t.TempDir()
	writeFile(t, root, "pom.xml", "<project/>\n")
	writeFile(t, root, "locked/secret.txt", "x\n")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	files, err := loadProjectFiles(root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pom.xml"}, fileNames(files))
}
