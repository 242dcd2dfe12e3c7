package llm

import (
	"context"
	"encoding/json"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"wayfarer/errors"
	"wayfarer/session"
	"wayfarer/tools"
)

// AnthropicClient is a client for the Anthropic Messages API.
type AnthropicClient struct {
	client      *anthropic.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewAnthropicClient creates an Anthropic-backed client. It requires
// the ANTHROPIC_API_KEY environment variable to be set.
func NewAnthropicClient(_ context.Context, cfg ModelConfig) (*AnthropicClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, errors.Wrapf(errors.ErrConfiguration, "ANTHROPIC_API_KEY environment variable not set")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicClient{
		client:      &client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Chat sends a chat request to the Anthropic API.
func (a *AnthropicClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	anthropicMessages, system := convertMessagesToAnthropic(messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(a.maxTokens),
		Temperature: anthropic.Float(a.temperature),
		Messages:    anthropicMessages,
		System:      system,
	}
	for _, toolParam := range convertToolsToAnthropic(availableTools) {
		tp := toolParam
		params.Tools = append(params.Tools, anthropic.ToolUnionParam{OfTool: &tp})
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send message to Anthropic")
	}

	return processAnthropicResponse(resp)
}

// convertMessagesToAnthropic converts the internal message format to
// Anthropic's. System messages become the system blocks; a CacheHint on
// a system message is passed through as an ephemeral cache control.
// Consecutive tool results are grouped into a single user message, which
// the API requires when one assistant turn issued several calls.
func convertMessagesToAnthropic(messages []session.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var out []anthropic.MessageParam
	var system []anthropic.TextBlockParam
	var pendingResults []anthropic.ContentBlockParamUnion

	flushResults := func() {
		if len(pendingResults) == 0 {
			return
		}
		out = append(out, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: pendingResults,
		})
		pendingResults = nil
	}

	for _, msg := range messages {
		if msg.Role != "tool" {
			flushResults()
		}
		switch msg.Role {
		case "system":
			block := anthropic.TextBlockParam{Text: msg.Content}
			if msg.CacheHint {
				block.CacheControl = anthropic.NewCacheControlEphemeralParam()
			}
			system = append(system, block)
		case "user":
			out = append(out, anthropic.NewUserMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		case "assistant":
			var content []anthropic.ContentBlockParamUnion
			if msg.Content != "" {
				content = append(content, anthropic.ContentBlockParamUnion{
					OfText: &anthropic.TextBlockParam{Text: msg.Content},
				})
			}
			for _, tc := range msg.ToolCalls {
				argsBytes, err := json.Marshal(tc.Args)
				if err != nil {
					continue
				}
				content = append(content, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						Type:  "tool_use",
						ID:    tc.ID,
						Name:  tc.Name,
						Input: argsBytes,
					},
				})
			}
			if len(content) == 0 {
				continue
			}
			out = append(out, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleAssistant,
				Content: content,
			})
		case "tool":
			pendingResults = append(pendingResults, anthropic.ContentBlockParamUnion{
				OfToolResult: &anthropic.ToolResultBlockParam{
					ToolUseID: msg.ToolCallID,
					Content: []anthropic.ToolResultBlockParamContentUnion{{
						OfText: &anthropic.TextBlockParam{Text: msg.Content},
					}},
				},
			})
		}
	}
	flushResults()

	return out, system
}

// convertToolsToAnthropic converts the Tool interface to Anthropic's
// tool format, including the full parameter schema.
func convertToolsToAnthropic(ts []tools.Tool) []anthropic.ToolParam {
	if len(ts) == 0 {
		return nil
	}

	var out []anthropic.ToolParam
	for _, t := range ts {
		properties := map[string]interface{}{}
		var required []string
		for name, p := range t.Schema() {
			properties[name] = map[string]interface{}{
				"type":        string(p.Type),
				"description": p.Description,
			}
			if p.Required {
				required = append(required, name)
			}
		}
		out = append(out, anthropic.ToolParam{
			Name:        t.Name(),
			Description: anthropic.String(t.Description()),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: properties,
				Required:   required,
			},
		})
	}
	return out
}

// processAnthropicResponse converts an Anthropic API response into the
// internal session.Message format.
func processAnthropicResponse(resp *anthropic.Message) (*session.Message, error) {
	out := &session.Message{Role: "assistant"}

	for _, content := range resp.Content {
		switch c := content.AsAny().(type) {
		case anthropic.TextBlock:
			out.Content += c.Text
		case anthropic.ToolUseBlock:
			var args map[string]interface{}
			if err := json.Unmarshal(c.Input, &args); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal tool call input")
			}
			out.ToolCalls = append(out.ToolCalls, session.ToolCall{
				ID:   c.ID,
				Name: c.Name,
				Args: args,
			})
		}
	}

	return out, nil
}
