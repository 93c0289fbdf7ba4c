package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file fintrack looks for in the working
// directory.
const DefaultFileName = "fintrack.yaml"

// DefaultLedgerFile is the backing transaction file used when neither
// flag, environment, nor config names one.
const DefaultLedgerFile = "transactions.json"

// DefaultChartWidth is the widest bar drawn by the chart command.
const DefaultChartWidth = 40

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Ledger     LedgerConfig     `yaml:"ledger"`
	Categories CategoriesConfig `yaml:"categories"`
	Chart      ChartConfig      `yaml:"chart"`
}

// LedgerConfig locates the backing transaction file.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// CategoriesConfig seeds the labels offered before any transactions
// exist.
type CategoriesConfig struct {
	Defaults []string `yaml:"defaults,omitempty"`
}

// ChartConfig controls chart rendering.
type ChartConfig struct {
	Width int `yaml:"width"`
}

// Load reads a fintrack.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads path if it exists and falls back to Default when
// it does not, so the tool works in a directory that was never
// initialized.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration a fresh directory starts with.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{Path: DefaultLedgerFile},
		Categories: CategoriesConfig{
			Defaults: []string{"Food", "Salary", "Transport", "Utilities", "Entertainment"},
		},
		Chart: ChartConfig{Width: DefaultChartWidth},
	}
}
