package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
)

// Result lists what a Write produced.
type Result struct {
	Destination string
	Files       []string
}

// Writer renders templates into a destination directory.
type Writer struct {
	fs       filesystem.FileSystem
	renderer *Renderer
	force    bool
}

// NewWriter creates a Writer. With force set existing files are replaced.
func NewWriter(fs filesystem.FileSystem, renderer *Renderer, force bool) *Writer {
	return &Writer{
		fs:       fs,
		renderer: renderer,
		force:    force,
	}
}

// Write renders every template with data and writes the results into
// destination, which must be an existing directory. Nothing is written when
// rendering fails or a target already exists without force.
func (w *Writer) Write(destination string, data Data) (*Result, error) {
	info, err := w.fs.Stat(destination)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidDestination, destination)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidDestination, destination)
	}

	files, err := w.renderer.RenderAll(data)
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(files))
	for i, file := range files {
		targets[i] = filepath.Join(destination, file.Target)
		if !w.force && w.fs.Exists(targets[i]) {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, targets[i])
		}
	}

	result := &Result{Destination: destination}
	for i, file := range files {
		if err := w.fs.WriteFile(targets[i], file.Content, 0644); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil, fmt.Errorf("%w: %s is not writable: %w", ErrInvalidDestination, destination, err)
			}
			return nil, fmt.Errorf("failed to write %s: %w", targets[i], err)
		}

		output.Debug("created file", "path", targets[i], "template", file.Template)
		result.Files = append(result.Files, targets[i])
	}

	return result, nil
}
