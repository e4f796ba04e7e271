// Package walker narrows a directory tree one level at a time until the
// operator selects the current directory.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
)

const (
	// Key is the prompt key consulted at every level of the walk.
	Key = "module"

	// Up is the choice value that moves one level back up.
	Up = "../"

	// SelectLabel is the label of the sentinel choice.
	SelectLabel = "Select this directory"

	message = "Where would you like to create this service?"
)

// ErrOutsideRoot means a module override points above the walk root.
var ErrOutsideRoot = errors.New("module must stay inside the modules root")

// DefaultExclude are directory names that never hold modules.
var DefaultExclude = []string{"assets", "sass"}

// Resolver is the prompt capability the walker needs.
type Resolver interface {
	Resolve(specs []prompt.Spec, overrides prompt.Overrides) (prompt.Answers, error)
}

// IgnoreFunc reports whether an absolute directory path should be hidden.
type IgnoreFunc func(path string, isDir bool) bool

// Path is the result of a walk: the segments chosen below the walk root.
type Path struct {
	Segments []string
}

// String renders the path with every segment followed by a slash, so an
// empty walk is "" and ["app", "core"] is "app/core/".
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p.Segments {
		b.WriteString(strings.TrimSuffix(s, "/"))
		b.WriteString("/")
	}
	return b.String()
}

// Walker runs the directory walk.
type Walker struct {
	fs       filesystem.FileSystem
	prompter Resolver
	exclude  map[string]struct{}
	ignore   IgnoreFunc
}

// Option configures a Walker.
type Option func(*Walker)

// WithExclude replaces the excluded directory names.
func WithExclude(names ...string) Option {
	return func(w *Walker) {
		w.exclude = make(map[string]struct{}, len(names))
		for _, name := range names {
			w.exclude[name] = struct{}{}
		}
	}
}

// WithIgnore hides directories for which fn returns true.
func WithIgnore(fn IgnoreFunc) Option {
	return func(w *Walker) {
		w.ignore = fn
	}
}

// New creates a Walker excluding DefaultExclude.
func New(fs filesystem.FileSystem, prompter Resolver, options ...Option) *Walker {
	w := &Walker{fs: fs, prompter: prompter}
	WithExclude(DefaultExclude...)(w)

	for _, option := range options {
		option(w)
	}

	return w
}

// Walk asks for a subdirectory of root until the sentinel is chosen and
// returns the segments chosen along the way. Choosing Up drops the last
// segment and is a no-op at root, so the result never leaves root.
//
// Every level is keyed Key, so an override for it answers every level with
// the same value. The walk treats such an override as the complete answer:
// the value becomes the path (none when empty or Up) and the walk ends.
func (w *Walker) Walk(root string, overrides prompt.Overrides) (Path, error) {
	if value, ok := overrides.Lookup(Key); ok {
		output.Debug("walk answered by override", "module", value)
		return overridePath(value)
	}

	var segments []string
	current := filepath.Clean(root)

	for {
		choices, err := w.choices(current)
		if err != nil {
			return Path{}, err
		}

		answers, err := w.prompter.Resolve([]prompt.Spec{prompt.Select(Key, message, choices...)}, overrides)
		if err != nil {
			return Path{}, err
		}
		selected := answers[Key]

		switch selected {
		case "":
			output.Debug("walk finished", "root", root, "path", Path{Segments: segments}.String())
			return Path{Segments: segments}, nil
		case Up:
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
				current = filepath.Dir(current)
			}
		default:
			segments = append(segments, selected)
			current = filepath.Join(current, selected)
		}

		output.Debug("walk step", "selected", selected, "current", current)
	}
}

// overridePath turns a module override into a path below the walk root.
// Up at the root selects the root, as it does in the menu; anything that
// would still leave the root is rejected.
func overridePath(value string) (Path, error) {
	if value == "" || value == Up {
		return Path{}, nil
	}

	cleaned := path.Clean(filepath.ToSlash(value))
	if path.IsAbs(cleaned) || filepath.IsAbs(value) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return Path{}, fmt.Errorf("%w: %q", ErrOutsideRoot, value)
	}
	if cleaned == "." {
		return Path{}, nil
	}

	return Path{Segments: strings.Split(cleaned, "/")}, nil
}

// choices builds the menu for dir: Up, the eligible subdirectories in
// lexical order, then the sentinel. A missing dir has no subdirectories.
func (w *Walker) choices(dir string) ([]prompt.Choice, error) {
	subdirs, err := w.subdirectories(dir)
	if err != nil {
		return nil, err
	}

	choices := make([]prompt.Choice, 0, len(subdirs)+2)
	choices = append(choices, prompt.Choice{Value: Up, Label: Up})
	for _, name := range subdirs {
		choices = append(choices, prompt.Choice{Value: name, Label: name})
	}
	choices = append(choices, prompt.Choice{Value: "", Label: SelectLabel})

	return choices, nil
}

func (w *Walker) subdirectories(dir string) ([]string, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !w.isDir(dir, entry) {
			continue
		}
		name := entry.Name()
		if _, excluded := w.exclude[name]; excluded {
			continue
		}
		if w.ignore != nil && w.ignore(filepath.Join(dir, name), true) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// isDir follows symlinks so linked module directories are offered too.
func (w *Walker) isDir(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := w.fs.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
