package agent

import (
	"context"
	"time"

	"wayfarer/llm"
	"wayfarer/logx"
	"wayfarer/session"
	"wayfarer/tools"
)

// Iteration caps for the tool-calling loop. Fast mode allows 3-4 tool
// rounds plus the final answer; full mode allows deeper searches.
const (
	MaxIterationsFast = 5
	MaxIterationsFull = 8
)

// Agent runs the bounded tool-calling loop against one bound model and
// one (possibly filtered) tool registry, with a bounded conversation
// history. Not safe for concurrent use; one Agent per conversation.
type Agent struct {
	client        llm.ChatClient
	provider      string
	registry      *tools.Registry
	history       *session.History
	fastMode      bool
	maxIterations int
}

// Construct creates an Agent with the model client built by the
// provider factory. Fast mode filters the registry down to the
// essential tools and lowers the iteration cap.
func Construct(ctx context.Context, registry *tools.Registry, provider string, fastMode bool, opts ...llm.Option) (*Agent, error) {
	client, err := llm.CreateClient(ctx, provider, opts...)
	if err != nil {
		return nil, err
	}
	return New(client, provider, registry, fastMode), nil
}

// New creates an Agent around an existing client. Used directly in
// tests and by callers that manage their own client lifecycle.
func New(client llm.ChatClient, provider string, registry *tools.Registry, fastMode bool) *Agent {
	maxIterations := MaxIterationsFull
	if fastMode {
		maxIterations = MaxIterationsFast
		registry = registry.Essential()
		logx.Info().Int("tools", registry.Len()).Msg("fast mode enabled")
	}
	return &Agent{
		client:        client,
		provider:      provider,
		registry:      registry,
		history:       session.NewHistory(session.DefaultWindow),
		fastMode:      fastMode,
		maxIterations: maxIterations,
	}
}

// Chat handles one conversational turn: classify the intent, store the
// user message in the bounded history, run the loop, and store the
// assistant's reply. Tool traffic stays in the per-turn working list;
// only the user message and the final reply enter the history.
func (a *Agent) Chat(ctx context.Context, userInput string) (string, error) {
	start := time.Now()

	intent := a.classifyIntent(ctx, userInput)
	logx.Info().
		Str("intent", string(intent)).
		Int("history_length", a.history.Len()).
		Msg("chat message received")

	a.history.Push(session.UserMessage(userInput))

	working := append([]session.Message{a.systemMessage(intent)}, a.history.Messages()...)
	reply, err := a.run(ctx, working)
	if err != nil {
		return "", err
	}

	a.history.Push(session.Message{Role: "assistant", Content: reply})
	logx.Info().
		Dur("total", time.Since(start)).
		Int("history_length", a.history.Len()).
		Msg("chat response ready")
	return reply, nil
}

// Plan answers a single planning request without intent classification
// and without touching the conversation history.
func (a *Agent) Plan(ctx context.Context, userRequest string) (string, error) {
	start := time.Now()
	logx.Info().Msg("analyzing planning request")

	working := []session.Message{
		a.systemMessage(IntentPlanning),
		session.UserMessage(userRequest),
	}
	reply, err := a.run(ctx, working)
	if err != nil {
		return "", err
	}

	logx.Info().Dur("total", time.Since(start)).Msg("planning request completed")
	return reply, nil
}

// run is the bounded tool-calling loop. Each iteration invokes the
// model; a response without tool calls ends the turn. Requested calls
// are dispatched in order and their results appended to the working
// list. When the iteration cap is reached, one final tools-disabled
// call produces the degraded answer; that call is not retried.
func (a *Agent) run(ctx context.Context, working []session.Message) (string, error) {
	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		llmStart := time.Now()
		resp, err := a.client.Chat(ctx, working, a.registry.List())
		if err != nil {
			return "", err
		}
		llmDuration := time.Since(llmStart)

		if len(resp.ToolCalls) == 0 {
			logx.Info().
				Int("iterations", iteration).
				Dur("llm", llmDuration).
				Msg("finished")
			return resp.Content, nil
		}

		names := make([]string, len(resp.ToolCalls))
		for i, tc := range resp.ToolCalls {
			names[i] = tc.Name
		}
		logx.Info().
			Int("iteration", iteration).
			Strs("tools", names).
			Dur("llm", llmDuration).
			Msg("agent iteration")

		working = append(working, *resp)
		for _, tc := range resp.ToolCalls {
			result, found := a.registry.Dispatch(ctx, tc.Name, tc.Args)
			if !found {
				continue
			}
			working = append(working, session.ToolResultMessage(tc, result))
		}
	}

	// Iteration cap reached: ask for a final answer with tools disabled.
	logx.Info().Int("max_iterations", a.maxIterations).Msg("generating final response")
	resp, err := a.client.Chat(ctx, working, nil)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// SetHistoryWindow replaces the history with a fresh one bounded to n
// messages. Retained messages are discarded; intended for configuration
// at startup, before the first turn.
func (a *Agent) SetHistoryWindow(n int) {
	a.history = session.NewHistory(n)
}

// Reset discards the conversation history.
func (a *Agent) Reset() {
	a.history.Reset()
	logx.Info().Msg("conversation history reset")
}

// HistoryLength returns the number of retained history messages.
func (a *Agent) HistoryLength() int {
	return a.history.Len()
}

// FastMode reports whether the agent runs with the reduced tool set.
func (a *Agent) FastMode() bool {
	return a.fastMode
}
