package prompt

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// HuhAsker asks prompts with huh forms on the attached terminal.
type HuhAsker struct {
	theme      *huh.Theme
	isTerminal func() bool
}

// NewHuhAsker creates an Asker using theme. It refuses to block when stdin
// is not a terminal.
func NewHuhAsker(theme *huh.Theme) *HuhAsker {
	return &HuhAsker{
		theme:      theme,
		isTerminal: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask renders spec as a single-field form. An empty free-text answer yields
// spec.Default.
func (a *HuhAsker) Ask(spec Spec) (string, error) {
	value := spec.Default

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)

	var field huh.Field
	switch spec.Kind {
	case KindSelect:
		opts := make([]huh.Option[string], 0, len(spec.Choices))
		for _, choice := range spec.Choices {
			opts = append(opts, huh.NewOption(choice.Label, choice.Value))
		}

		field = huh.NewSelect[string]().
			Title(spec.Message).
			Options(opts...).
			Value(&value)
	case KindInput:
		value = ""
		field = huh.NewInput().
			Title(spec.Message).
			Placeholder(spec.Default).
			Value(&value)
	default:
		return "", fmt.Errorf("unsupported prompt kind %q for %q", spec.Kind, spec.Key)
	}

	if !a.isTerminal() {
		return "", ErrNonInteractive
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(a.theme).
		WithShowHelp(true).
		WithKeyMap(keyMap).
		WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}

	if spec.Kind == KindInput && value == "" {
		value = spec.Default
	}

	return value, nil
}
