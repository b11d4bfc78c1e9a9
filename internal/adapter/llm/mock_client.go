package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a mock implementation of LLMClient for local runs and tests.
type MockClient struct{}

// NewMockClient creates a new mock generation client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements LLMClient interface.
var _ LLMClient = (*MockClient)(nil)

// Complete returns a canned reply echoing the last prompt line.
func (m *MockClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	last := ""
	// The last line is the "ASSISTANT:" cue; the line before it is the
	// newest message in the window.
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" && strings.TrimSpace(lines[i]) != "ASSISTANT:" {
			last = strings.TrimSpace(lines[i])
			break
		}
	}
	if last == "" {
		return "[MOCK] This is a mock reply.", nil
	}
	return fmt.Sprintf("[MOCK] Received %q. This is a mock reply.", truncate(last, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
