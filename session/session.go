// Package session holds the conversation types exchanged between the
// agent, the model providers and the tools, plus the bounded history
// that anchors multi-turn context.
package session

// ToolCall is a structured request from the model to execute a named
// tool with a flat map of arguments. The ID is unique within the
// response that emitted it and pairs the call with its result message.
type ToolCall struct {
	ID   string                 `json:"id"`
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

// Message is one unit of conversation. Role is one of "system", "user",
// "assistant" or "tool". Assistant messages may carry ToolCalls; tool
// messages carry the ToolCallID (and tool name) they answer. CacheHint
// marks a system message as a candidate for provider-side prompt
// caching; providers without caching support ignore the flag.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
	CacheHint  bool       `json:"cache_hint,omitempty"`
}

// UserMessage builds a user message.
func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

// SystemMessage builds a system message.
func SystemMessage(content string) Message {
	return Message{Role: "system", Content: content}
}

// ToolResultMessage builds the result message for a dispatched call.
func ToolResultMessage(call ToolCall, content string) Message {
	return Message{
		Role:       "tool",
		Content:    content,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}

// DefaultWindow is the number of messages retained by a History when no
// explicit window is configured.
const DefaultWindow = 10

// History is a bounded, ordered message sequence owned by one agent
// session. Push appends and then trims from the oldest end, so the
// window invariant (len <= window) holds structurally after every
// mutation rather than by ad hoc slicing at call sites. The system
// prompt is never stored here; it is prepended fresh on every model
// call.
type History struct {
	window   int
	messages []Message
}

// NewHistory creates a history bounded to the given window. A window of
// zero or less falls back to DefaultWindow.
func NewHistory(window int) *History {
	if window <= 0 {
		window = DefaultWindow
	}
	return &History{window: window}
}

// Push appends msg and discards the oldest entries so that at most
// window messages remain.
func (h *History) Push(msg Message) {
	h.messages = append(h.messages, msg)
	if len(h.messages) > h.window {
		trimmed := make([]Message, h.window)
		copy(trimmed, h.messages[len(h.messages)-h.window:])
		h.messages = trimmed
	}
}

// Messages returns a copy of the retained messages in original order.
func (h *History) Messages() []Message {
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Len returns the number of retained messages.
func (h *History) Len() int {
	return len(h.messages)
}

// Window returns the configured window size.
func (h *History) Window() int {
	return h.window
}

// Reset discards all retained messages. Safe to call repeatedly.
func (h *History) Reset() {
	h.messages = nil
}
