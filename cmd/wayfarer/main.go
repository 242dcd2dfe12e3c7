package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"wayfarer/agent"
	"wayfarer/config"
	"wayfarer/llm"
	"wayfarer/logx"
	"wayfarer/services"
	"wayfarer/tools"
)

func main() {
	providerFlag := flag.String("provider", "", "model provider: claude, gemini, openai or bedrock")
	modelFlag := flag.String("model", "", "override the provider's default model")
	tempFlag := flag.Float64("temp", -1, "override the sampling temperature")
	fastFlag := flag.Bool("fast", false, "fast mode: essential tools only, lower iteration cap")
	planFlag := flag.String("plan", "", "answer a single planning request and exit")
	flag.Parse()

	// Credentials come from the environment; .env is a convenience for
	// local runs and is optional.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logx.Init(logx.ParseEnvironment(cfg.Environment))

	provider := cfg.Provider
	if *providerFlag != "" {
		provider = *providerFlag
	}
	fastMode := cfg.FastMode || *fastFlag

	var opts []llm.Option
	if *modelFlag != "" {
		opts = append(opts, llm.WithModel(*modelFlag))
	} else if cfg.Model != "" {
		opts = append(opts, llm.WithModel(cfg.Model))
	}
	if *tempFlag >= 0 {
		opts = append(opts, llm.WithTemperature(*tempFlag))
	} else if cfg.Temperature != nil {
		opts = append(opts, llm.WithTemperature(*cfg.Temperature))
	}
	if cfg.MaxTokens != nil {
		opts = append(opts, llm.WithMaxTokens(*cfg.MaxTokens))
	}

	svcCfg, err := config.LoadServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading service settings: %v\n", err)
		os.Exit(1)
	}
	registry, err := buildRegistry(svcCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error wiring services: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	ag, err := agent.Construct(ctx, registry, provider, fastMode, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating agent: %v\n", err)
		os.Exit(1)
	}

	if cfg.HistoryWindow > 0 {
		ag.SetHistoryWindow(cfg.HistoryWindow)
	}

	if *planFlag != "" {
		answer, err := ag.Plan(ctx, *planFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(answer)
		return
	}

	printBanner(provider, fastMode)
	repl(ctx, ag)
}

func buildRegistry(cfg config.Services) (*tools.Registry, error) {
	places, err := services.NewPlacesService(cfg.GoogleMapsKey, cfg.PlacesTimeout)
	if err != nil {
		return nil, err
	}
	return tools.TravelRegistry(
		services.NewFlightService(cfg.SerpAPIKey, cfg.FlightTimeout),
		services.NewHotelService(cfg.RapidAPIKey, cfg.HotelTimeout),
		places,
		services.NewWikipediaService(cfg.WikipediaTimeout),
	), nil
}

func printBanner(provider string, fastMode bool) {
	info, err := llm.Info(provider)
	if err != nil {
		fmt.Printf("Travel assistant ready (provider: %s).\n", provider)
		return
	}
	fmt.Printf("Travel assistant ready.\n")
	fmt.Printf("  Provider: %s (%s)\n", info.Name, info.DefaultModel)
	fmt.Printf("  Pricing:  %s\n", info.Pricing)
	if fastMode {
		fmt.Println("  Mode:     fast (essential tools only)")
	}
	fmt.Println("Commands: /reset, /history, /quit")
}

func repl(ctx context.Context, ag *agent.Agent) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "/quit", "/exit":
			fmt.Println("Goodbye!")
			return
		case "/reset":
			ag.Reset()
			fmt.Println("Conversation reset.")
			continue
		case "/history":
			fmt.Printf("History: %d message(s) retained.\n", ag.HistoryLength())
			continue
		}

		reply, err := ag.Chat(ctx, input)
		if err != nil {
			fmt.Printf("The model call failed: %v\nPlease try again.\n", err)
			continue
		}
		fmt.Println(reply)
	}
}
