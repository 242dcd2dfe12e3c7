package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wayfarer/errors"
	"wayfarer/session"
	"wayfarer/tools"
)

// GeminiClient is a client for the Google Gemini API.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed client. It requires the
// GEMINI_API_KEY environment variable to be set.
func NewGeminiClient(ctx context.Context, cfg ModelConfig) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.Wrapf(errors.ErrConfiguration, "GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create genai client")
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(float32(cfg.Temperature))
	model.SetMaxOutputTokens(int32(cfg.MaxTokens))

	return &GeminiClient{model: model}, nil
}

// Chat sends a chat request to the Gemini API.
func (g *GeminiClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	contents, system := convertMessagesToGemini(messages)
	if len(contents) == 0 {
		return nil, errors.New("no sendable messages for Gemini")
	}

	// The model object is reconfigured per call; Gemini carries the
	// system prompt outside the turn history.
	g.model.Tools = convertToolsToGemini(availableTools)
	g.model.SystemInstruction = nil
	if system != "" {
		g.model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	last := contents[len(contents)-1]
	chat := g.model.StartChat()
	chat.History = contents[:len(contents)-1]
	resp, err := chat.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send message to Gemini")
	}

	return processGeminiResponse(resp)
}

// convertMessagesToGemini converts the internal message format to
// Gemini content. The last system message becomes the system
// instruction; tool results travel as function response parts.
func convertMessagesToGemini(messages []session.Message) ([]*genai.Content, string) {
	var contents []*genai.Content
	var system string

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			system = msg.Content
		case "user":
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		case "assistant":
			var parts []genai.Part
			if msg.Content != "" {
				parts = append(parts, genai.Text(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				parts = append(parts, genai.FunctionCall{
					Name: tc.Name,
					Args: tc.Args,
				})
			}
			if len(parts) == 0 {
				continue
			}
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: parts,
			})
		case "tool":
			contents = append(contents, &genai.Content{
				Role: "function",
				Parts: []genai.Part{genai.FunctionResponse{
					Name:     msg.ToolName,
					Response: map[string]interface{}{"result": msg.Content},
				}},
			})
		}
	}
	return contents, system
}

// convertToolsToGemini converts the Tool interface to Gemini's
// FunctionDeclaration format, with the flat parameter schema mapped to
// a genai object schema.
func convertToolsToGemini(ts []tools.Tool) []*genai.Tool {
	if len(ts) == 0 {
		return nil
	}
	var decls []*genai.FunctionDeclaration
	for _, t := range ts {
		properties := map[string]*genai.Schema{}
		var required []string
		for name, p := range t.Schema() {
			properties[name] = &genai.Schema{
				Type:        geminiType(p.Type),
				Description: p.Description,
			}
			if p.Required {
				required = append(required, name)
			}
		}
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   required,
			},
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

func geminiType(pt tools.ParamType) genai.Type {
	switch pt {
	case tools.TypeNumber:
		return genai.TypeNumber
	case tools.TypeInteger:
		return genai.TypeInteger
	default:
		return genai.TypeString
	}
}

// processGeminiResponse converts a Gemini API response into the
// internal session.Message format. Gemini does not assign tool call
// ids, so stable ones are synthesised from the part order.
func processGeminiResponse(resp *genai.GenerateContentResponse) (*session.Message, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("received an empty response from Gemini")
	}

	out := &session.Message{Role: "assistant"}
	for i, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			out.Content += string(v)
		case genai.FunctionCall:
			out.ToolCalls = append(out.ToolCalls, session.ToolCall{
				ID:   fmt.Sprintf("call_%d_%s", i, v.Name),
				Name: v.Name,
				Args: v.Args,
			})
		}
	}
	return out, nil
}
