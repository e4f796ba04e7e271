package project

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
)

// ProjectBuilder helps create test projects
type ProjectBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewProjectBuilder creates an Angular project at root with an angular.json
// and an empty src/ directory. The current directory is root.
func NewProjectBuilder(root string) *ProjectBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(filepath.Join(root, "src"))
	fs.AddFile(filepath.Join(root, "angular.json"), []byte(`{"version": 1, "projects": {}}`+"\n"))
	fs.SetCurrentDir(root)

	return &ProjectBuilder{
		fs:   fs,
		root: root,
	}
}

// AddModule adds a directory below the project root, e.g. "src/app/core"
func (pb *ProjectBuilder) AddModule(path string) *ProjectBuilder {
	pb.fs.AddDir(filepath.Join(pb.root, path))
	return pb
}

// AddFile adds a file below the project root
func (pb *ProjectBuilder) AddFile(path, content string) *ProjectBuilder {
	pb.fs.AddFile(filepath.Join(pb.root, path), []byte(content))
	return pb
}

// WithGitIgnore writes the root .gitignore
func (pb *ProjectBuilder) WithGitIgnore(patterns ...string) *ProjectBuilder {
	var content string
	for _, p := range patterns {
		content += p + "\n"
	}
	return pb.AddFile(".gitignore", content)
}

// WithConfig writes the project config file with the given settings
func (pb *ProjectBuilder) WithConfig(modulesRoot, suffix string) *ProjectBuilder {
	return pb.AddFile(ConfigFileName, fmt.Sprintf("modulesRoot: %s\nsuffix: %s\n", modulesRoot, suffix))
}

// Build returns the mock filesystem
func (pb *ProjectBuilder) Build() *filesystem.MockFileSystem {
	return pb.fs
}
