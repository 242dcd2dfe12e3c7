package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"wayfarer/errors"
	"wayfarer/session"
	"wayfarer/tools"
)

// BedrockClient is a client for Anthropic models hosted on AWS Bedrock.
// The request body follows the Anthropic-on-Bedrock JSON schema.
type BedrockClient struct {
	client      *bedrockruntime.Client
	modelID     string
	region      string
	temperature float64
	maxTokens   int
}

// NewBedrockClient creates a Bedrock-backed client. It requires AWS
// credentials to be configured in the environment.
func NewBedrockClient(ctx context.Context, mc ModelConfig) (*BedrockClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "failed to load AWS config: %v", err)
	}

	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	return &BedrockClient{
		client:      bedrockruntime.NewFromConfig(cfg),
		modelID:     mc.Model,
		region:      region,
		temperature: mc.Temperature,
		maxTokens:   mc.MaxTokens,
	}, nil
}

// Chat sends a chat request to the Anthropic model via AWS Bedrock.
func (b *BedrockClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	bedrockMessages, systemPrompt := convertMessagesToBedrock(messages)

	requestBody, err := b.buildRequest(bedrockMessages, systemPrompt, availableTools)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build Bedrock request")
	}

	resp, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Body:        requestBody,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to invoke Bedrock model")
	}

	return processBedrockResponse(resp.Body)
}

// convertMessagesToBedrock converts the internal message format to the
// Anthropic-on-Bedrock message schema. Consecutive tool results are
// grouped into one user message.
func convertMessagesToBedrock(messages []session.Message) ([]map[string]interface{}, string) {
	var out []map[string]interface{}
	var systemPrompt string
	var pendingResults []map[string]interface{}

	flushResults := func() {
		if len(pendingResults) == 0 {
			return
		}
		out = append(out, map[string]interface{}{
			"role":    "user",
			"content": pendingResults,
		})
		pendingResults = nil
	}

	for _, msg := range messages {
		if msg.Role != "tool" {
			flushResults()
		}
		switch msg.Role {
		case "system":
			systemPrompt = msg.Content
		case "user":
			out = append(out, map[string]interface{}{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": msg.Content},
				},
			})
		case "assistant":
			var content []map[string]interface{}
			if msg.Content != "" {
				content = append(content, map[string]interface{}{
					"type": "text", "text": msg.Content,
				})
			}
			for _, tc := range msg.ToolCalls {
				content = append(content, map[string]interface{}{
					"type":  "tool_use",
					"id":    tc.ID,
					"name":  tc.Name,
					"input": tc.Args,
				})
			}
			if len(content) == 0 {
				continue
			}
			out = append(out, map[string]interface{}{
				"role":    "assistant",
				"content": content,
			})
		case "tool":
			pendingResults = append(pendingResults, map[string]interface{}{
				"type":        "tool_result",
				"tool_use_id": msg.ToolCallID,
				"content":     msg.Content,
			})
		}
	}
	flushResults()

	return out, systemPrompt
}

func (b *BedrockClient) buildRequest(messages []map[string]interface{}, systemPrompt string, availableTools []tools.Tool) ([]byte, error) {
	request := map[string]interface{}{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        b.maxTokens,
		"temperature":       b.temperature,
		"messages":          messages,
	}

	if systemPrompt != "" {
		request["system"] = systemPrompt
	}

	if len(availableTools) > 0 {
		var toolDefs []map[string]interface{}
		for _, t := range availableTools {
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
			toolDefs = append(toolDefs, map[string]interface{}{
				"name":        t.Name(),
				"description": t.Description(),
				"input_schema": map[string]interface{}{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			})
		}
		request["tools"] = toolDefs
	}

	return json.Marshal(request)
}

// processBedrockResponse converts a Bedrock API response into the
// internal session.Message format. Tool call ids are taken from the
// response when present and synthesised from the block order otherwise.
func processBedrockResponse(body []byte) (*session.Message, error) {
	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal Bedrock response")
	}

	if errMsg, ok := response["error"]; ok {
		return nil, errors.New("Bedrock API error: %v", errMsg)
	}

	content, ok := response["content"]
	if !ok {
		return &session.Message{Role: "assistant"}, nil
	}
	contentArray, ok := content.([]interface{})
	if !ok {
		return nil, errors.New("unexpected content format in Bedrock response")
	}

	out := &session.Message{Role: "assistant"}
	for i, item := range contentArray {
		itemMap, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		switch itemMap["type"] {
		case "text":
			if text, ok := itemMap["text"].(string); ok {
				out.Content += text
			}
		case "tool_use":
			name, ok := itemMap["name"].(string)
			if !ok {
				continue
			}
			input, ok := itemMap["input"].(map[string]interface{})
			if !ok {
				continue
			}
			id := fmt.Sprintf("call_%d_%s", i, name)
			if toolID, ok := itemMap["id"].(string); ok && toolID != "" {
				id = toolID
			}
			out.ToolCalls = append(out.ToolCalls, session.ToolCall{
				ID:   id,
				Name: name,
				Args: input,
			})
		}
	}

	return out, nil
}
