// Package prompt resolves prompt answers from pre-supplied overrides or, when
// none is given, from an interactive Asker.
package prompt

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-ngscaffold/internal/output"
)

// Asker blocks until the operator answers spec.
type Asker interface {
	Ask(spec Spec) (string, error)
}

// Prompter resolves specs against an override bag.
type Prompter struct {
	asker Asker
}

// NewPrompter creates a Prompter that falls back to asker.
func NewPrompter(asker Asker) *Prompter {
	return &Prompter{asker: asker}
}

// Resolve answers specs in order. An override is used verbatim, even for a
// select prompt whose choices do not contain it; only keys without an
// override reach the Asker.
func (p *Prompter) Resolve(specs []Spec, overrides Overrides) (Answers, error) {
	answers := make(Answers, len(specs))

	for _, spec := range specs {
		if value, ok := overrides.Lookup(spec.Key); ok {
			output.Debug("prompt answered by override", "key", spec.Key, "value", value)
			answers[spec.Key] = value
			continue
		}

		if p.asker == nil {
			return nil, &UnresolvableError{Key: spec.Key, Err: ErrNonInteractive}
		}

		value, err := p.asker.Ask(spec)
		if err != nil {
			if errors.Is(err, ErrNonInteractive) {
				return nil, &UnresolvableError{Key: spec.Key, Err: err}
			}
			return nil, fmt.Errorf("failed to ask %q: %w", spec.Key, err)
		}

		output.Debug("prompt answered", "key", spec.Key, "value", value)
		answers[spec.Key] = value
	}

	return answers, nil
}
