package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default genetic hyperparameters for the driver; they mirror the scale the
// toolkit is usually demonstrated at (large population, long budget).
const (
	defaultPopulationSize = 1000
	defaultGenerations    = 500
	defaultMutationRate   = 0.25
	defaultSeed           = int64(1)
	defaultPatience       = 50
)

// defaultCapacity pairs with DefaultItems as the built-in demo instance used
// when neither flags, YAML nor environment supply one.
const defaultCapacity = 50

// DefaultItems returns a fresh copy of the built-in 90-item demo instance.
func DefaultItems() []int {
	return []int{
		27, 4, 19, 33, 8, 41, 12, 50, 6, 28, 15, 47, 22, 9, 35, 14, 2, 49, 31, 7,
		18, 43, 11, 25, 39, 5, 16, 34, 21, 46, 3, 20, 44, 10, 37, 1, 29, 42, 26, 13,
		48, 17, 32, 24, 40, 30, 23, 45, 36, 38, 11, 7, 28, 2, 49, 16, 33, 41, 12, 22,
		5, 47, 19, 8, 39, 31, 14, 46, 3, 25, 34, 10, 50, 29, 18, 44, 6, 37, 21, 40,
		32, 15, 48, 4, 43, 27, 24, 36, 9, 30,
	}
}

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Capacity       int           `yaml:"capacity"`
	Items          []int         `yaml:"items"`
	RunExact       bool          `yaml:"run_exact"`
	ExactTimeLimit time.Duration `yaml:"-"`
	PopulationSize int           `yaml:"population_size"`
	Generations    int           `yaml:"generations"`
	MutationRate   float64       `yaml:"mutation_rate"`
	Seed           int64         `yaml:"seed"`
	Patience       int           `yaml:"patience_no_change"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Capacity       int     `yaml:"capacity"`
	Items          []int   `yaml:"items"`
	RunExact       bool    `yaml:"run_exact"`
	ExactTimeLimit string  `yaml:"exact_time_limit"`
	PopulationSize int     `yaml:"population_size"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	Seed           *int64  `yaml:"seed"`
	Patience       int     `yaml:"patience_no_change"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Capacity       *int
	ItemsStr       *string
	RunExact       *bool
	ExactTimeLimit *time.Duration
	PopulationSize *int
	Generations    *int
	MutationRate   *float64
	Seed           *int64
	Patience       *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Capacity:       defaultCapacity,
		Items:          DefaultItems(),
		RunExact:       false,
		ExactTimeLimit: 0,
		PopulationSize: defaultPopulationSize,
		Generations:    defaultGenerations,
		MutationRate:   defaultMutationRate,
		Seed:           defaultSeed,
		Patience:       defaultPatience,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Capacity > 0 {
		cfg.Capacity = yamlCfg.Capacity
	}

	if len(yamlCfg.Items) > 0 {
		cfg.Items = yamlCfg.Items
	}

	cfg.RunExact = yamlCfg.RunExact

	if yamlCfg.ExactTimeLimit != "" {
		if d, err := time.ParseDuration(yamlCfg.ExactTimeLimit); err == nil {
			cfg.ExactTimeLimit = d
		}
	}

	if yamlCfg.PopulationSize > 0 {
		cfg.PopulationSize = yamlCfg.PopulationSize
	}

	if yamlCfg.Generations > 0 {
		cfg.Generations = yamlCfg.Generations
	}

	if yamlCfg.MutationRate > 0 {
		cfg.MutationRate = yamlCfg.MutationRate
	}

	// Seed is a pointer so that an explicit `seed: 0` (non-deterministic run)
	// is distinguishable from an absent key.
	if yamlCfg.Seed != nil {
		cfg.Seed = *yamlCfg.Seed
	}

	if yamlCfg.Patience > 0 {
		cfg.Patience = yamlCfg.Patience
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("BINPACK_CAPACITY")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.Capacity = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("BINPACK_ITEMS")); raw != "" {
		items, err := parseItems(raw)
		if err == nil && len(items) > 0 {
			cfg.Items = items
		}
	}

	if raw := strings.TrimSpace(os.Getenv("BINPACK_SEED")); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Capacity != nil && *overrides.Capacity > 0 {
		cfg.Capacity = *overrides.Capacity
	}

	if overrides.ItemsStr != nil && *overrides.ItemsStr != "" {
		items, err := parseItems(*overrides.ItemsStr)
		if err != nil {
			return fmt.Errorf("parse items: %w", err)
		}
		cfg.Items = items
	}

	if overrides.RunExact != nil {
		cfg.RunExact = *overrides.RunExact
	}

	if overrides.ExactTimeLimit != nil && *overrides.ExactTimeLimit >= 0 {
		cfg.ExactTimeLimit = *overrides.ExactTimeLimit
	}

	if overrides.PopulationSize != nil && *overrides.PopulationSize > 0 {
		cfg.PopulationSize = *overrides.PopulationSize
	}

	if overrides.Generations != nil && *overrides.Generations > 0 {
		cfg.Generations = *overrides.Generations
	}

	if overrides.MutationRate != nil && *overrides.MutationRate >= 0 {
		cfg.MutationRate = *overrides.MutationRate
	}

	if overrides.Seed != nil {
		cfg.Seed = *overrides.Seed
	}

	if overrides.Patience != nil && *overrides.Patience > 0 {
		cfg.Patience = *overrides.Patience
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", cfg.Capacity)
	}
	for _, item := range cfg.Items {
		if item <= 0 {
			return fmt.Errorf("item size must be positive, got %d", item)
		}
	}
	if cfg.PopulationSize <= 0 {
		return fmt.Errorf("population size must be positive, got %d", cfg.PopulationSize)
	}
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0,1], got %g", cfg.MutationRate)
	}
	if cfg.Patience <= 0 {
		return fmt.Errorf("patience must be positive, got %d", cfg.Patience)
	}
	return nil
}

// parseItems parses a comma-separated string of item sizes into a slice of
// integers. It validates that all values are positive.
func parseItems(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	items := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", part)
		}
		if value <= 0 {
			return nil, fmt.Errorf("item size must be positive, got %d", value)
		}
		items = append(items, value)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items provided")
	}
	return items, nil
}
