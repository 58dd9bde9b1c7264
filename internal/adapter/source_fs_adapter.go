// Package adapter contains parsing and infrastructure adapters for the
// testsmith CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "testsmith.dev/pkg/testsmith/internal/model"
)

// javaExt is the only extension the scanner considers.
const javaExt = ".java"

// projectMarkers are the build files that identify a Java project root
// while walking up the directory tree.
var projectMarkers = []string{
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"settings.gradle",
}

const (
	mainSourceRoot = "src/main/java"
	testSourceRoot = "src/test/java"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects and placing generated tests.
// It hides direct os access so workflow logic can be tested off disk.
type SourceFSAdapter interface {
	// CollectJavaFiles walks the provided roots and returns every .java
	// file (excluding matches of the provided regex patterns), in a stable
	// walk order. A root that is itself a .java file is returned as-is.
	CollectJavaFiles(roots []m.Path, exclude []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileExists reports whether the path exists and is a regular file.
	FileExists(path m.Path) bool

	// FindProjectRoot searches for a build file walking up the tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// ResolveTestPath computes the target test file location for a class:
	// <test-root>/<package-path>/<ClassName>Test.java. When testRoot is
	// empty the root is derived from the source location, mirroring
	// src/main/java to src/test/java.
	ResolveTestPath(sourcePath, testRoot m.Path, packageName, className string) (m.Path, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// and filepath packages.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// CollectJavaFiles walks each root and gathers Java sources. Test sources
// (*Test.java) are skipped so generated output is never re-analyzed.
func (a *LocalSourceFSAdapter) CollectJavaFiles(roots []m.Path, exclude []string) ([]m.Path, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	var files []m.Path

	for _, root := range roots {
		rootStr := string(root)

		info, err := os.Stat(rootStr)
		if err != nil {
			return nil, fmt.Errorf("scan root %s: %w", root, err)
		}

		if !info.IsDir() {
			if isCandidate(rootStr, patterns) {
				files = append(files, root)
			}

			continue
		}

		err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				base := filepath.Base(path)
				if base == ".git" || base == "target" || base == "build" {
					return filepath.SkipDir
				}

				return nil
			}

			if isCandidate(path, patterns) {
				files = append(files, m.Path(path))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func isCandidate(path string, patterns []*regexp.Regexp) bool {
	if filepath.Ext(path) != javaExt {
		return false
	}

	if strings.HasSuffix(path, "Test"+javaExt) {
		return false
	}

	for _, re := range patterns {
		if re.MatchString(path) {
			return false
		}
	}

	return true
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content, creating the parent directories first.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FileExists reports whether path names an existing regular file.
func (a *LocalSourceFSAdapter) FileExists(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.Mode().IsRegular()
}

// FindProjectRoot walks up from startPath looking for a Maven or Gradle
// build file.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no build file found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// ResolveTestPath mirrors the source location into the test tree.
func (a *LocalSourceFSAdapter) ResolveTestPath(sourcePath, testRoot m.Path, packageName, className string) (m.Path, error) {
	root := string(testRoot)

	if root == "" {
		resolved, err := a.deriveTestRoot(sourcePath)
		if err != nil {
			return "", err
		}

		root = resolved
	}

	packagePath := strings.ReplaceAll(packageName, ".", string(filepath.Separator))

	return m.Path(filepath.Join(root, packagePath, className+"Test"+javaExt)), nil
}

func (a *LocalSourceFSAdapter) deriveTestRoot(sourcePath m.Path) (string, error) {
	source := filepath.ToSlash(string(sourcePath))

	if idx := strings.Index(source, mainSourceRoot); idx >= 0 {
		return filepath.FromSlash(source[:idx] + testSourceRoot), nil
	}

	projectRoot, err := a.FindProjectRoot(sourcePath)
	if err != nil {
		return "", fmt.Errorf("derive test root: %w", err)
	}

	return filepath.Join(string(projectRoot), filepath.FromSlash(testSourceRoot)), nil
}
