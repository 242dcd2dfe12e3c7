package session

import (
	"fmt"
	"testing"
)

func TestHistoryWindowInvariant(t *testing.T) {
	for _, n := range []int{0, 1, 5, 10, 11, 25, 100} {
		h := NewHistory(10)
		for i := 0; i < n; i++ {
			h.Push(UserMessage(fmt.Sprintf("msg-%d", i)))
			if h.Len() > 10 {
				t.Fatalf("after %d pushes history length %d exceeds window", i+1, h.Len())
			}
		}
		want := n
		if want > 10 {
			want = 10
		}
		if h.Len() != want {
			t.Errorf("after %d pushes: got length %d, want %d", n, h.Len(), want)
		}
	}
}

func TestHistoryKeepsMostRecentInOrder(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 7; i++ {
		h.Push(UserMessage(fmt.Sprintf("msg-%d", i)))
	}
	got := h.Messages()
	want := []string{"msg-4", "msg-5", "msg-6"}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Content != w {
			t.Errorf("messages[%d] = %q, want %q", i, got[i].Content, w)
		}
	}
}

func TestHistoryDefaultWindow(t *testing.T) {
	h := NewHistory(0)
	if h.Window() != DefaultWindow {
		t.Errorf("window = %d, want %d", h.Window(), DefaultWindow)
	}
	h = NewHistory(-3)
	if h.Window() != DefaultWindow {
		t.Errorf("window = %d, want %d", h.Window(), DefaultWindow)
	}
}

func TestHistoryResetIdempotent(t *testing.T) {
	h := NewHistory(10)
	h.Push(UserMessage("hello"))
	h.Push(Message{Role: "assistant", Content: "hi"})

	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("length after reset = %d, want 0", h.Len())
	}
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("length after second reset = %d, want 0", h.Len())
	}

	// History stays usable after a reset.
	h.Push(UserMessage("again"))
	if h.Len() != 1 {
		t.Fatalf("length after push post-reset = %d, want 1", h.Len())
	}
}

func TestHistoryMessagesReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Push(UserMessage("original"))
	msgs := h.Messages()
	msgs[0].Content = "mutated"
	if h.Messages()[0].Content != "original" {
		t.Error("mutating the returned slice leaked into the history")
	}
}

func TestToolResultMessagePairsCall(t *testing.T) {
	call := ToolCall{ID: "t1", Name: "search_flights", Args: map[string]interface{}{"origin": "CDG"}}
	msg := ToolResultMessage(call, "2 flights found")
	if msg.Role != "tool" {
		t.Errorf("role = %q, want tool", msg.Role)
	}
	if msg.ToolCallID != "t1" || msg.ToolName != "search_flights" {
		t.Errorf("got pairing (%q, %q), want (t1, search_flights)", msg.ToolCallID, msg.ToolName)
	}
}
