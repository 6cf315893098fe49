package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockTranslator mocks a machine translation provider
type MockTranslator struct {
	Responses map[string]string // keyed by source text
	Errors    map[string]error

	mu    sync.Mutex
	Calls []string
}

// NewMockTranslator creates a mock answering with responses
func NewMockTranslator(responses map[string]string) *MockTranslator {
	return &MockTranslator{
		Responses: responses,
		Errors:    make(map[string]error),
	}
}

// Translate returns the canned response for text
func (m *MockTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("%s->%s: %s", from, to, text))
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if resp, ok := m.Responses[text]; ok {
		return resp, nil
	}
	return "", fmt.Errorf("no mock translation for %q", text)
}

// CallCount returns the number of Translate calls
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
