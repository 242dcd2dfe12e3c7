package agent

import (
	"context"
	"strings"
	"testing"

	"wayfarer/errors"
	"wayfarer/llm"
	"wayfarer/session"
	"wayfarer/tools"
)

// scriptedClient replays a fixed sequence of responses and records
// every outgoing call for assertions.
type scriptedClient struct {
	responses []*session.Message
	calls     []chatCall
}

type chatCall struct {
	messages []session.Message
	tools    []tools.Tool
}

func (c *scriptedClient) Chat(_ context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	snapshot := make([]session.Message, len(messages))
	copy(snapshot, messages)
	c.calls = append(c.calls, chatCall{messages: snapshot, tools: availableTools})

	if len(c.responses) == 0 {
		return &session.Message{Role: "assistant", Content: "out of script"}, nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func text(content string) *session.Message {
	return &session.Message{Role: "assistant", Content: content}
}

func withCalls(calls ...session.ToolCall) *session.Message {
	return &session.Message{Role: "assistant", ToolCalls: calls}
}

// stubTool records executions and returns a canned result or error.
type stubTool struct {
	name     string
	result   string
	err      error
	executed int
	lastArgs map[string]interface{}
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Schema() tools.Schema {
	return tools.Schema{"city": {Type: tools.TypeString, Required: true}}
}
func (s *stubTool) Execute(_ context.Context, args map[string]interface{}) (string, error) {
	s.executed++
	s.lastArgs = args
	return s.result, s.err
}

func newTestAgent(client llm.ChatClient, fastMode bool, ts ...tools.Tool) *Agent {
	return New(client, "claude", tools.NewRegistry(ts...), fastMode)
}

func TestChatSmallTalkUsesLightPromptAndNoTools(t *testing.T) {
	client := &scriptedClient{responses: []*session.Message{
		text("small_talk"),        // classification
		text("Hello! How can I help plan your next trip?"),
	}}
	ag := newTestAgent(client, false, &stubTool{name: "search_flights", result: "ok"})

	reply, err := ag.Chat(context.Background(), "Hello!")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply, "Hello") {
		t.Errorf("unexpected reply %q", reply)
	}
	if len(client.calls) != 2 {
		t.Fatalf("got %d model calls, want 2 (classification + turn)", len(client.calls))
	}

	turn := client.calls[1]
	if turn.messages[0].Role != "system" {
		t.Fatal("first working message should be the system prompt")
	}
	if !strings.Contains(turn.messages[0].Content, "just have a natural conversation") {
		t.Error("small talk turn should use the light prompt")
	}
	if ag.HistoryLength() != 2 {
		t.Errorf("history length = %d, want 2 (user + assistant)", ag.HistoryLength())
	}
}

func TestChatToolRoundTrip(t *testing.T) {
	flights := &stubTool{name: "search_flights", result: "2 flights found"}
	call := session.ToolCall{ID: "t1", Name: "search_flights", Args: map[string]interface{}{"city": "Rome"}}
	client := &scriptedClient{responses: []*session.Message{
		text("planning"), // classification
		withCalls(call),
		text("Here is your plan."),
	}}
	ag := newTestAgent(client, false, flights)

	reply, err := ag.Chat(context.Background(), "Plan me a week in Rome in May, budget 2000")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Here is your plan." {
		t.Errorf("reply = %q", reply)
	}
	if flights.executed != 1 {
		t.Fatalf("tool executed %d times, want 1", flights.executed)
	}
	if flights.lastArgs["city"] != "Rome" {
		t.Errorf("tool args = %v", flights.lastArgs)
	}

	// The second loop call must carry the assistant tool-call message
	// followed by a result message paired by id.
	final := client.calls[2]
	n := len(final.messages)
	if final.messages[n-2].Role != "assistant" || len(final.messages[n-2].ToolCalls) != 1 {
		t.Fatal("assistant tool-call message missing from working list")
	}
	resultMsg := final.messages[n-1]
	if resultMsg.Role != "tool" || resultMsg.ToolCallID != "t1" {
		t.Errorf("tool result not paired: role=%q id=%q", resultMsg.Role, resultMsg.ToolCallID)
	}
	if resultMsg.Content != "2 flights found" {
		t.Errorf("tool result content = %q", resultMsg.Content)
	}
}

func TestChatSameToolTwiceDispatchedInOrder(t *testing.T) {
	flights := &stubTool{name: "search_flights", result: "ok"}
	client := &scriptedClient{responses: []*session.Message{
		text("planning"),
		withCalls(
			session.ToolCall{ID: "a1", Name: "search_flights", Args: map[string]interface{}{"city": "Rome"}},
			session.ToolCall{ID: "a2", Name: "search_flights", Args: map[string]interface{}{"city": "Milan"}},
		),
		text("Two routes compared."),
	}}
	ag := newTestAgent(client, false, flights)

	if _, err := ag.Chat(context.Background(), "compare Rome and Milan flights"); err != nil {
		t.Fatal(err)
	}
	if flights.executed != 2 {
		t.Fatalf("tool executed %d times, want 2", flights.executed)
	}

	var ids []string
	for _, msg := range client.calls[2].messages {
		if msg.Role == "tool" {
			ids = append(ids, msg.ToolCallID)
		}
	}
	if len(ids) != 2 || ids[0] != "a1" || ids[1] != "a2" {
		t.Errorf("result ids = %v, want [a1 a2] in emission order", ids)
	}
}

func TestChatUnknownToolSilentlySkipped(t *testing.T) {
	known := &stubTool{name: "search_flights", result: "ok"}
	client := &scriptedClient{responses: []*session.Message{
		text("planning"),
		withCalls(session.ToolCall{ID: "x1", Name: "book_spaceship", Args: map[string]interface{}{}}),
		text("Let me try something else."),
	}}
	ag := newTestAgent(client, false, known)

	if _, err := ag.Chat(context.Background(), "Get me to the moon"); err != nil {
		t.Fatal(err)
	}
	if known.executed != 0 {
		t.Error("known tool should not have run")
	}

	// No tool result message may be appended for the unknown name.
	for _, msg := range client.calls[2].messages {
		if msg.Role == "tool" {
			t.Errorf("unexpected tool result message for unknown tool: %+v", msg)
		}
	}
}

func TestChatIterationCapTriggersDegradedCall(t *testing.T) {
	flights := &stubTool{name: "search_flights", result: "ok"}
	call := session.ToolCall{ID: "t", Name: "search_flights", Args: map[string]interface{}{}}

	responses := []*session.Message{text("planning")}
	for i := 0; i < MaxIterationsFast; i++ {
		responses = append(responses, withCalls(call))
	}
	responses = append(responses, text("Best effort with what I found."))

	client := &scriptedClient{responses: responses}
	ag := newTestAgent(client, true, flights)

	reply, err := ag.Chat(context.Background(), "Plan everything everywhere")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Best effort with what I found." {
		t.Errorf("reply = %q", reply)
	}

	// classification + MaxIterationsFast loop calls + 1 degraded call
	wantCalls := 1 + MaxIterationsFast + 1
	if len(client.calls) != wantCalls {
		t.Fatalf("got %d model calls, want %d", len(client.calls), wantCalls)
	}
	last := client.calls[len(client.calls)-1]
	if len(last.tools) != 0 {
		t.Error("degraded final call must be tools-disabled")
	}
	if flights.executed != MaxIterationsFast {
		t.Errorf("tool executed %d times, want %d", flights.executed, MaxIterationsFast)
	}
}

func TestChatToolErrorBecomesTextResult(t *testing.T) {
	failing := &stubTool{name: "search_flights", err: errors.New("upstream timeout")}
	client := &scriptedClient{responses: []*session.Message{
		text("planning"),
		withCalls(session.ToolCall{ID: "t9", Name: "search_flights", Args: map[string]interface{}{}}),
		text("The flight search is unavailable right now."),
	}}
	ag := newTestAgent(client, false, failing)

	if _, err := ag.Chat(context.Background(), "flights to Rome please"); err != nil {
		t.Fatal(err)
	}

	final := client.calls[2]
	resultMsg := final.messages[len(final.messages)-1]
	if resultMsg.Role != "tool" {
		t.Fatal("expected a tool result message for the failed call")
	}
	if !strings.HasPrefix(resultMsg.Content, "error: search_flights:") {
		t.Errorf("error result = %q", resultMsg.Content)
	}
}

func TestChatModelErrorPropagates(t *testing.T) {
	client := &erroringClient{}
	ag := newTestAgent(client, false)

	_, err := ag.Chat(context.Background(), "hello there, plan something")
	if err == nil {
		t.Fatal("expected the model error to propagate")
	}
}

type erroringClient struct{ calls int }

func (c *erroringClient) Chat(context.Context, []session.Message, []tools.Tool) (*session.Message, error) {
	c.calls++
	return nil, errors.New("provider unavailable")
}

func TestPlanSkipsClassificationAndHistory(t *testing.T) {
	client := &scriptedClient{responses: []*session.Message{
		text("A fine plan."),
	}}
	ag := newTestAgent(client, false)

	reply, err := ag.Plan(context.Background(), "One week in Lisbon")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "A fine plan." {
		t.Errorf("reply = %q", reply)
	}
	if len(client.calls) != 1 {
		t.Fatalf("got %d model calls, want 1 (no classification)", len(client.calls))
	}
	if ag.HistoryLength() != 0 {
		t.Error("Plan must not touch the conversation history")
	}
	if client.calls[0].messages[0].Role != "system" {
		t.Error("plan call should carry the system prompt")
	}
}

func TestResetClearsHistory(t *testing.T) {
	client := &scriptedClient{responses: []*session.Message{
		text("small_talk"), text("hi"),
		text("small_talk"), text("hi again"),
	}}
	ag := newTestAgent(client, false)

	if _, err := ag.Chat(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}
	if ag.HistoryLength() == 0 {
		t.Fatal("history should not be empty after a turn")
	}
	ag.Reset()
	if ag.HistoryLength() != 0 {
		t.Error("history should be empty after reset")
	}
	ag.Reset()
	if ag.HistoryLength() != 0 {
		t.Error("second reset should be a no-op")
	}
}

func TestFastModeFiltersRegistryAndCap(t *testing.T) {
	all := []tools.Tool{
		&stubTool{name: "get_airport_code"},
		&stubTool{name: "search_flights"},
		&stubTool{name: "find_nearby_attractions"},
	}
	client := &scriptedClient{responses: []*session.Message{
		text("planning"),
		text("done"),
	}}
	ag := newTestAgent(client, true, all...)

	if ag.maxIterations != MaxIterationsFast {
		t.Errorf("maxIterations = %d, want %d", ag.maxIterations, MaxIterationsFast)
	}
	if _, err := ag.Chat(context.Background(), "plan a trip to Oslo"); err != nil {
		t.Fatal(err)
	}
	turn := client.calls[1]
	for _, tl := range turn.tools {
		if tl.Name() == "find_nearby_attractions" {
			t.Error("non-essential tool offered in fast mode")
		}
	}
	if !strings.Contains(turn.messages[0].Content, "FAST MODE") {
		t.Error("fast mode should use the fast system prompt")
	}
}
