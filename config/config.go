package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	Tournament    TournamentConfig    `yaml:"tournament"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// TournamentConfig holds the cut and context settings applied at startup.
// They can still be changed at runtime through the leaderboard service.
type TournamentConfig struct {
	Context      string `yaml:"context"`
	CutLineScore int    `yaml:"cut_line_score"`
	CutApplied   bool   `yaml:"cut_applied"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	Environment string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("TOURNAMENT_CONTEXT"); v != "" {
		cfg.Tournament.Context = v
	}
	if v := os.Getenv("CUT_LINE_SCORE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tournament.CutLineScore = n
		}
	}
	if v := os.Getenv("CUT_APPLIED"); v != "" {
		cfg.Tournament.CutApplied = v == "true"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config

	// Load Postgres DSN
	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.Tournament.Context = os.Getenv("TOURNAMENT_CONTEXT")
	if v := os.Getenv("CUT_LINE_SCORE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CUT_LINE_SCORE value: %v", err)
		}
		cfg.Tournament.CutLineScore = n
	}
	cfg.Tournament.CutApplied = os.Getenv("CUT_APPLIED") == "true"

	cfg.Observability.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.Observability.Environment = os.Getenv("ENV")

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Tournament.Context == "" {
		cfg.Tournament.Context = "mosley_open"
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
}
