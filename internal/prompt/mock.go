package prompt

import "fmt"

// MockAsker replays scripted answers in order and records every spec it
// was asked.
type MockAsker struct {
	answers []string
	err     error
	Asked   []Spec
}

// NewMockAsker creates a MockAsker returning answers in order
func NewMockAsker(answers ...string) *MockAsker {
	return &MockAsker{answers: answers}
}

// FailWith makes every subsequent Ask return err
func (m *MockAsker) FailWith(err error) *MockAsker {
	m.err = err
	return m
}

func (m *MockAsker) Ask(spec Spec) (string, error) {
	m.Asked = append(m.Asked, spec)
	if m.err != nil {
		return "", m.err
	}
	if len(m.answers) == 0 {
		return "", fmt.Errorf("mock asker: no scripted answer for %q", spec.Key)
	}

	answer := m.answers[0]
	m.answers = m.answers[1:]
	return answer, nil
}

// Remaining returns how many scripted answers were not consumed
func (m *MockAsker) Remaining() int {
	return len(m.answers)
}
