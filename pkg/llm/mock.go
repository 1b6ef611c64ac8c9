package llm

import (
	"context"
	"sync"
)

// MockProvider is a scripted LLMProvider for tests. Responses are returned
// in FIFO order; when the queue runs dry the last response repeats. If
// RespondFunc is set it takes priority over the queue.
type MockProvider struct {
	mu          sync.Mutex
	Responses   []string
	RespondFunc func(prompt string) (string, error)
	Err         error
	Prompts     []string // every prompt seen, in call order
	next        int
}

var _ LLMProvider = &MockProvider{}

func (m *MockProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	prompt := ""
	if len(history) > 0 {
		prompt = history[len(history)-1].Content
	}
	return m.respond(prompt)
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return m.respond(prompt)
}

func (m *MockProvider) respond(prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}
	if m.RespondFunc != nil {
		return m.RespondFunc(prompt)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	idx := m.next
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	} else {
		m.next++
	}
	return m.Responses[idx], nil
}

// CallCount returns how many generation calls the mock has served.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
