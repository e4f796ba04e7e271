// Package resolver turns overrides and prompt answers into the destination
// and names a scaffold is written with.
package resolver

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-ngscaffold/internal/naming"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/jakoblorz/go-ngscaffold/internal/walker"
)

const (
	// DestKey is the override that bypasses the directory walk.
	DestKey = "dest"

	// NameKey is the prompt key of the artifact name.
	NameKey = "name"

	nameMessage = "What would you like to name this service?"
)

// Walker is the directory walk capability.
type Walker interface {
	Walk(root string, overrides prompt.Overrides) (walker.Path, error)
}

// Prompter answers prompts, preferring overrides.
type Prompter interface {
	Resolve(specs []prompt.Spec, overrides prompt.Overrides) (prompt.Answers, error)
}

// State is the outcome of one resolution pass.
type State struct {
	Destination string
	Names       naming.Forms
}

// Resolver runs a resolution pass.
type Resolver struct {
	walker      Walker
	prompter    Prompter
	modulesRoot string
	defaultName string
}

// New creates a Resolver walking from modulesRoot. An empty defaultName
// means naming.DefaultName.
func New(w Walker, p Prompter, modulesRoot, defaultName string) *Resolver {
	if defaultName == "" {
		defaultName = naming.DefaultName
	}
	return &Resolver{
		walker:      w,
		prompter:    p,
		modulesRoot: modulesRoot,
		defaultName: defaultName,
	}
}

// Resolve determines the destination and names. A dest override is used
// verbatim and the walk is skipped; otherwise the destination is the
// modules root followed by the walked path. Nothing is written.
func (r *Resolver) Resolve(overrides prompt.Overrides) (*State, error) {
	destination, err := r.destination(overrides)
	if err != nil {
		return nil, err
	}

	answers, err := r.prompter.Resolve([]prompt.Spec{
		prompt.Input(NameKey, nameMessage, r.defaultName),
	}, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve name: %w", err)
	}

	names := naming.DeriveOr(answers[NameKey], r.defaultName)
	output.Debug("resolved parameters", "destination", destination, "slug", names.Slug, "type", names.Type)

	return &State{
		Destination: destination,
		Names:       names,
	}, nil
}

func (r *Resolver) destination(overrides prompt.Overrides) (string, error) {
	if dest, ok := overrides.Lookup(DestKey); ok {
		output.Debug("destination overridden, skipping walk", "dest", dest)
		return dest, nil
	}

	path, err := r.walker.Walk(r.modulesRoot, overrides)
	if err != nil {
		return "", fmt.Errorf("failed to choose a directory: %w", err)
	}

	return withTrailingSlash(r.modulesRoot) + path.String(), nil
}

func withTrailingSlash(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}
