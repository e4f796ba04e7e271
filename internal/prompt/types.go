package prompt

// Kind is the type of input a prompt collects.
type Kind string

const (
	// KindSelect picks one value from Choices.
	KindSelect Kind = "select"

	// KindInput reads free text.
	KindInput Kind = "input"
)

// Choice is one option of a select prompt.
type Choice struct {
	Value string
	Label string
}

// Spec describes a single prompt. Key is used both to look up an override
// and to store the answer.
type Spec struct {
	Kind    Kind
	Key     string
	Message string
	Choices []Choice
	Default string
}

// Select builds a single-choice Spec.
func Select(key, message string, choices ...Choice) Spec {
	return Spec{
		Kind:    KindSelect,
		Key:     key,
		Message: message,
		Choices: append([]Choice(nil), choices...),
	}
}

// Input builds a free-text Spec.
func Input(key, message, def string) Spec {
	return Spec{
		Kind:    KindInput,
		Key:     key,
		Message: message,
		Default: def,
	}
}

// Overrides holds pre-supplied answers keyed by Spec.Key. A key that is
// present (even with an empty value) skips its prompt.
type Overrides map[string]string

// Lookup reports the override for key and whether one was supplied.
func (o Overrides) Lookup(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o[key]
	return v, ok
}

// Answers maps Spec.Key to the resolved value of one Resolve call.
type Answers map[string]string
