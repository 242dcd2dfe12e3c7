package llm

import (
	"context"
	"strings"

	"wayfarer/errors"
	"wayfarer/logx"
)

// Provider tags accepted by the factory.
const (
	ProviderClaude  = "claude"
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

// ModelConfig is the resolved per-provider model configuration.
type ModelConfig struct {
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Option overrides one field of a provider's default ModelConfig.
type Option func(*ModelConfig)

// WithModel overrides the provider's default model name.
func WithModel(model string) Option {
	return func(c *ModelConfig) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithTemperature overrides the default sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *ModelConfig) { c.Temperature = t }
}

// WithMaxTokens overrides the default completion token cap.
func WithMaxTokens(n int) Option {
	return func(c *ModelConfig) {
		if n > 0 {
			c.MaxTokens = n
		}
	}
}

// defaults per provider. Temperature 0.5 balances planning creativity
// against factual tool use.
var providerDefaults = map[string]ModelConfig{
	ProviderClaude: {
		Provider:    ProviderClaude,
		Model:       "claude-sonnet-4-20250514",
		Temperature: 0.5,
		MaxTokens:   8192,
	},
	ProviderGemini: {
		Provider:    ProviderGemini,
		Model:       "gemini-2.0-flash-001",
		Temperature: 0.5,
		MaxTokens:   8192,
	},
	ProviderOpenAI: {
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o",
		Temperature: 0.5,
		MaxTokens:   8192,
	},
	ProviderBedrock: {
		Provider:    ProviderBedrock,
		Model:       "anthropic.claude-sonnet-4-20250514-v1:0",
		Temperature: 0.5,
		MaxTokens:   8192,
	},
}

// ResolveConfig returns the provider's default ModelConfig with the
// given overrides applied.
func ResolveConfig(provider string, opts ...Option) (ModelConfig, error) {
	def, ok := providerDefaults[normalizeProvider(provider)]
	if !ok {
		return ModelConfig{}, errors.Wrapf(errors.ErrUnsupportedProvider, "%q", provider)
	}
	cfg := def
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, nil
}

// CreateClient builds the ChatClient for a provider tag, applying any
// configuration overrides on top of the provider defaults. Missing
// credentials surface as ErrConfiguration; an unknown tag surfaces as
// ErrUnsupportedProvider.
func CreateClient(ctx context.Context, provider string, opts ...Option) (ChatClient, error) {
	cfg, err := ResolveConfig(provider, opts...)
	if err != nil {
		return nil, err
	}

	logx.Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Float64("temperature", cfg.Temperature).
		Int("max_tokens", cfg.MaxTokens).
		Msg("creating model client")

	switch cfg.Provider {
	case ProviderClaude:
		return NewAnthropicClient(ctx, cfg)
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI:
		return NewOpenAIClient(ctx, cfg)
	case ProviderBedrock:
		return NewBedrockClient(ctx, cfg)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedProvider, "%q", provider)
	}
}

func normalizeProvider(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

// ProviderInfo is display metadata about a provider, for the startup
// banner and the provider listing.
type ProviderInfo struct {
	Name         string
	DefaultModel string
	Pricing      string
	Strengths    []string
}

var providerInfos = map[string]ProviderInfo{
	ProviderClaude: {
		Name:         "Anthropic Claude",
		DefaultModel: "claude-sonnet-4-20250514",
		Pricing:      "$3/M input tokens, $15/M output tokens",
		Strengths:    []string{"strong reasoning", "reliable tool use", "prompt caching"},
	},
	ProviderGemini: {
		Name:         "Google Gemini",
		DefaultModel: "gemini-2.0-flash-001",
		Pricing:      "$0.10/M input tokens, $0.40/M output tokens",
		Strengths:    []string{"low latency", "low cost", "long context"},
	},
	ProviderOpenAI: {
		Name:         "OpenAI",
		DefaultModel: "gpt-4o",
		Pricing:      "$2.50/M input tokens, $10/M output tokens",
		Strengths:    []string{"broad availability", "reliable tool use"},
	},
	ProviderBedrock: {
		Name:         "Anthropic Claude on AWS Bedrock",
		DefaultModel: "anthropic.claude-sonnet-4-20250514-v1:0",
		Pricing:      "AWS account pricing",
		Strengths:    []string{"runs inside an AWS account", "IAM credentials"},
	},
}

// Info returns display metadata for a provider tag.
func Info(provider string) (ProviderInfo, error) {
	info, ok := providerInfos[normalizeProvider(provider)]
	if !ok {
		return ProviderInfo{}, errors.Wrapf(errors.ErrUnsupportedProvider, "%q", provider)
	}
	return info, nil
}

// Providers lists the supported provider tags.
func Providers() []string {
	return []string{ProviderClaude, ProviderGemini, ProviderOpenAI, ProviderBedrock}
}
