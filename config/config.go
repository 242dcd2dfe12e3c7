package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"wayfarer/errors"
)

// Config is the file-driven agent configuration. Credentials are never
// read from here; each provider resolves its own from the environment.
type Config struct {
	Provider      string   `yaml:"provider"`
	Model         string   `yaml:"model"`
	Temperature   *float64 `yaml:"temperature"`
	MaxTokens     *int     `yaml:"max_tokens"`
	FastMode      bool     `yaml:"fast_mode"`
	HistoryWindow int      `yaml:"history_window"`
	Environment   string   `yaml:"environment"`
}

// LoadConfig loads configuration from the user's home directory and the
// current working directory, with the latter taking precedence.
func LoadConfig() (*Config, error) {
	var paths []string
	home, err := os.UserHomeDir()
	if err == nil {
		paths = append(paths, filepath.Join(home, ".wayfarer", "config.yaml"))
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrapf(err, "could not get working directory")
	}
	paths = append(paths, filepath.Join(wd, ".wayfarer", "config.yaml"))

	return loadLayered(paths)
}

// loadLayered applies each existing config file in order; later files
// override fields set by earlier ones.
func loadLayered(paths []string) (*Config, error) {
	cfg := &Config{Provider: "claude"}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFromFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "error loading config %s", path)
		}
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Unmarshal overwrites fields present in the YAML, which gives the
	// simple merge where later layers replace earlier ones.
	return yaml.Unmarshal(data, cfg)
}

// Services holds the settings for the external data-lookup clients.
// All fields resolve from the environment; a missing API key puts the
// corresponding client into mock mode rather than failing startup.
type Services struct {
	SerpAPIKey       string        `envconfig:"SERPAPI_KEY"`
	RapidAPIKey      string        `envconfig:"RAPIDAPI_KEY"`
	GoogleMapsKey    string        `envconfig:"GOOGLE_MAPS_API_KEY"`
	FlightTimeout    time.Duration `envconfig:"FLIGHT_TIMEOUT" default:"15s"`
	HotelTimeout     time.Duration `envconfig:"HOTEL_TIMEOUT" default:"20s"`
	PlacesTimeout    time.Duration `envconfig:"PLACES_TIMEOUT" default:"15s"`
	WikipediaTimeout time.Duration `envconfig:"WIKIPEDIA_TIMEOUT" default:"10s"`
}

// LoadServices resolves the service client settings from the environment.
func LoadServices() (Services, error) {
	var s Services
	if err := envconfig.Process("", &s); err != nil {
		return Services{}, errors.Wrapf(err, "error loading service settings")
	}
	return s, nil
}
