package llm

import (
	"testing"

	"wayfarer/errors"
)

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := ResolveConfig(ProviderClaude)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.5 || cfg.MaxTokens != 8192 {
		t.Errorf("defaults = %v / %v, want 0.5 / 8192", cfg.Temperature, cfg.MaxTokens)
	}

	cfg, err = ResolveConfig(ProviderGemini)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "gemini-2.0-flash-001" {
		t.Errorf("gemini model = %q", cfg.Model)
	}
}

func TestResolveConfigOverrides(t *testing.T) {
	cfg, err := ResolveConfig(ProviderClaude,
		WithModel("claude-3-5-haiku-latest"),
		WithTemperature(0.1),
		WithMaxTokens(2048),
	)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "claude-3-5-haiku-latest" {
		t.Errorf("model override not applied: %q", cfg.Model)
	}
	if cfg.Temperature != 0.1 || cfg.MaxTokens != 2048 {
		t.Errorf("overrides = %v / %v", cfg.Temperature, cfg.MaxTokens)
	}

	// Empty and non-positive overrides keep the defaults.
	cfg, err = ResolveConfig(ProviderClaude, WithModel(""), WithMaxTokens(0))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "claude-sonnet-4-20250514" || cfg.MaxTokens != 8192 {
		t.Errorf("empty overrides changed defaults: %q / %d", cfg.Model, cfg.MaxTokens)
	}
}

func TestResolveConfigNormalisesProviderTag(t *testing.T) {
	if _, err := ResolveConfig("  Claude "); err != nil {
		t.Errorf("mixed-case tag rejected: %v", err)
	}
}

func TestResolveConfigUnsupportedProvider(t *testing.T) {
	_, err := ResolveConfig("mistral")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errors.ErrUnsupportedProvider) {
		t.Errorf("error %v does not match ErrUnsupportedProvider", err)
	}
}

func TestMissingCredentialsAreConfigurationErrors(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := ResolveConfig(ProviderClaude)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAnthropicClient(t.Context(), cfg); !errors.Is(err, errors.ErrConfiguration) {
		t.Errorf("anthropic: %v, want ErrConfiguration", err)
	}

	cfg, _ = ResolveConfig(ProviderGemini)
	if _, err := NewGeminiClient(t.Context(), cfg); !errors.Is(err, errors.ErrConfiguration) {
		t.Errorf("gemini: %v, want ErrConfiguration", err)
	}

	cfg, _ = ResolveConfig(ProviderOpenAI)
	if _, err := NewOpenAIClient(t.Context(), cfg); !errors.Is(err, errors.ErrConfiguration) {
		t.Errorf("openai: %v, want ErrConfiguration", err)
	}
}

func TestInfoCoversAllProviders(t *testing.T) {
	for _, p := range Providers() {
		info, err := Info(p)
		if err != nil {
			t.Errorf("Info(%q): %v", p, err)
			continue
		}
		if info.Name == "" || info.DefaultModel == "" {
			t.Errorf("Info(%q) incomplete: %+v", p, info)
		}
	}
	if _, err := Info("nope"); !errors.Is(err, errors.ErrUnsupportedProvider) {
		t.Error("unknown tag should yield ErrUnsupportedProvider")
	}
}
