package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradebook/gradebook/internal/grading"
)

// DefaultLogLevel is used when log_level is absent.
const DefaultLogLevel = "info"

// Config is the grading policy parsed from gradebook.yaml.
type Config struct {
	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`

	// Scale bounds every score in the roster.
	Scale grading.Scale `yaml:"scale"`

	// Weights is the contribution of each category to the course average.
	Weights WeightsConfig `yaml:"weights"`

	// DropLowest lists the categories whose lowest score is excluded.
	// An explicit empty list disables dropping entirely.
	DropLowest []string `yaml:"drop_lowest"`
}

// WeightsConfig mirrors grading.WeightConfig with YAML tags.
type WeightsConfig struct {
	Test       float64 `yaml:"test"`
	Assignment float64 `yaml:"assignment"`
	Quiz       float64 `yaml:"quiz"`
}

// WeightConfig converts w to the grading type.
func (w WeightsConfig) WeightConfig() grading.WeightConfig {
	return grading.WeightConfig{Test: w.Test, Assignment: w.Assignment, Quiz: w.Quiz}
}

// Policy builds the grading.Policy described by cfg.
// cfg must have passed validation; unknown categories are ignored.
func (cfg *Config) Policy() grading.Policy {
	drop := make(map[grading.Category]bool, len(cfg.DropLowest))
	for _, name := range cfg.DropLowest {
		if c, err := grading.ParseCategory(name); err == nil {
			drop[c] = true
		}
	}
	return grading.Policy{
		Weights:    cfg.Weights.WeightConfig(),
		DropLowest: drop,
	}
}

// Level returns the slog level named by LogLevel, or slog.LevelInfo.
func (cfg *Config) Level() slog.Level {
	lvl, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads and parses the config file at path.
// Missing fields are filled with sensible defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a Config, applying defaults and
// validation exactly as Load does.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	w := grading.DefaultWeights()
	return &Config{
		LogLevel: DefaultLogLevel,
		Scale:    grading.DefaultScale(),
		Weights: WeightsConfig{
			Test:       w.Test,
			Assignment: w.Assignment,
			Quiz:       w.Quiz,
		},
		DropLowest: []string{string(grading.CategoryQuizzes)},
	}
}

// validate checks structural constraints on the parsed configuration.
func validate(cfg *Config) error {
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Scale.Min >= cfg.Scale.Max {
		return fmt.Errorf("scale.min %g must be below scale.max %g", cfg.Scale.Min, cfg.Scale.Max)
	}
	if err := cfg.Weights.WeightConfig().Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(cfg.DropLowest))
	for i, name := range cfg.DropLowest {
		if _, err := grading.ParseCategory(name); err != nil {
			return fmt.Errorf("drop_lowest[%d]: %w", i, err)
		}
		if seen[name] {
			return fmt.Errorf("drop_lowest[%d]: %q listed twice", i, name)
		}
		seen[name] = true
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level %q unknown: want debug|info|warn|error", s)
	}
}
