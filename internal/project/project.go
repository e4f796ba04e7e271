// Package project locates the root of the project being scaffolded into.
package project

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = ".ngscaffold.yaml"

// markers identify a project root, in priority order.
var markers = []string{ConfigFileName, "angular.json", "package.json"}

// Project is the detected project root.
type Project struct {
	fs       filesystem.FileSystem
	RootPath string
	// Marker is the file that identified RootPath; empty when no marker was
	// found and the start directory was used.
	Marker string
	ignore gitignore.GitIgnore
}

// Detect walks up from start looking for a project marker. When none is
// found the start directory itself is the project root. An empty start means
// the current working directory.
func Detect(fs filesystem.FileSystem, start string) (*Project, error) {
	if start == "" {
		cwd, err := fs.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		start = cwd
	}

	start, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	p := &Project{fs: fs, RootPath: start}
	if root, marker, ok := findRoot(fs, start); ok {
		p.RootPath = root
		p.Marker = marker
	} else {
		output.Debug("no project marker found, using start directory", "dir", start)
	}

	ignore, err := p.loadGitIgnore()
	if err != nil {
		return nil, err
	}
	p.ignore = ignore

	return p, nil
}

func findRoot(fs filesystem.FileSystem, startDir string) (string, string, bool) {
	dir := filepath.Clean(startDir)

	for {
		for _, marker := range markers {
			if fs.Exists(filepath.Join(dir, marker)) {
				return dir, marker, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", false
		}
		dir = parent
	}
}

func (p *Project) loadGitIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(p.RootPath, ".gitignore")
	if !p.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := p.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), p.RootPath, func(e gitignore.Error) bool {
		output.Warn("skipping invalid .gitignore pattern", "error", e.Error())
		return true
	}), nil
}

// Resolve returns path joined onto the project root unless it is absolute.
func (p *Project) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RootPath, path)
}

// ConfigPath returns the project config file path when it exists.
func (p *Project) ConfigPath() (string, bool) {
	path := filepath.Join(p.RootPath, ConfigFileName)
	return path, p.fs.Exists(path)
}

// Ignored reports whether the absolute path is excluded by the project's
// root .gitignore. Paths outside the project are never ignored.
func (p *Project) Ignored(path string, isDir bool) bool {
	if p == nil || p.ignore == nil {
		return false
	}

	rel, err := filepath.Rel(p.RootPath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}

	match := p.ignore.Relative(filepath.ToSlash(rel), isDir)
	return match != nil && match.Ignore()
}
