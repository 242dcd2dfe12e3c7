// Package llm abstracts the chat model providers behind a single
// interface and a provider factory.
package llm

import (
	"context"

	"wayfarer/session"
	"wayfarer/tools"
)

// ChatClient is the interface for one bound chat model. A nil or empty
// tool slice is the tools-disabled call; the returned message then
// carries no tool calls.
type ChatClient interface {
	Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error)
}

// MockChatClient is an offline stand-in that echoes the last user
// message. Useful for wiring checks without credentials.
type MockChatClient struct{}

func (m *MockChatClient) Chat(_ context.Context, messages []session.Message, _ []tools.Tool) (*session.Message, error) {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			last = messages[i].Content
			break
		}
	}
	return &session.Message{
		Role:    "assistant",
		Content: "mock response to: " + last,
	}, nil
}
