package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadFromEnv when no config file exists.
var ErrNoConfig = errors.New("no config file found")

// Config holds the complete application configuration
type Config struct {
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Tax      TaxConfig      `toml:"tax" yaml:"tax"`
	Mortgage MortgageConfig `toml:"mortgage" yaml:"mortgage"`
	Savings  SavingsConfig  `toml:"savings" yaml:"savings"`
	ISK      SavingsConfig  `toml:"isk" yaml:"isk"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	// File, when set, receives a copy of every log entry.
	File string `toml:"file" yaml:"file"`
}

// OutputConfig holds presentation settings
type OutputConfig struct {
	// TUI selects the terminal form instead of line prompts.
	TUI bool `toml:"tui" yaml:"tui"`
	// ChartDir is prepended to relative --chart paths.
	ChartDir string `toml:"chart_dir" yaml:"chart_dir"`
}

// TaxConfig holds the ISK tax parameters. Rates are given in percent.
type TaxConfig struct {
	GovernmentBorrowingRate float64 `toml:"government_borrowing_rate" yaml:"government_borrowing_rate"`
}

// MortgageConfig holds the mortgage calculator defaults. Rates are given in
// percent.
type MortgageConfig struct {
	PropertyCost float64 `toml:"property_cost" yaml:"property_cost"`
	DownPayment  float64 `toml:"down_payment" yaml:"down_payment"`
	Years        float64 `toml:"years" yaml:"years"`
	InterestRate float64 `toml:"interest_rate" yaml:"interest_rate"`
}

// SavingsConfig holds the savings and ISK calculator defaults. Rates are
// given in percent.
type SavingsConfig struct {
	StartCapital   float64 `toml:"start_capital" yaml:"start_capital"`
	MonthlyDeposit float64 `toml:"monthly_deposit" yaml:"monthly_deposit"`
	YearlyReturn   float64 `toml:"yearly_return" yaml:"yearly_return"`
	Years          int     `toml:"years" yaml:"years"`
	FlatRateTax    bool    `toml:"flat_rate_tax" yaml:"flat_rate_tax"`
}

// Default returns the built-in configuration. Values missing from a config
// file keep these defaults, so an explicit 0 in the file is honoured.
func Default() *Config {
	cfg := &Config{
		Tax: TaxConfig{GovernmentBorrowingRate: 0.02},
		Mortgage: MortgageConfig{
			PropertyCost: 2000000,
			DownPayment:  15,
			Years:        15,
			InterestRate: 4,
		},
		Savings: SavingsConfig{
			StartCapital:   250000,
			MonthlyDeposit: 5000,
			YearlyReturn:   8,
			Years:          20,
			FlatRateTax:    true,
		},
		ISK: SavingsConfig{
			StartCapital:   100000,
			MonthlyDeposit: 2000,
			YearlyReturn:   8,
			Years:          40,
			FlatRateTax:    true,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything but .yaml and .yml is read as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from the FINCALC_CONFIG environment
// variable or the first default location that exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("FINCALC_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/fincalc.toml",
			"./fincalc.toml",
			filepath.Join(os.Getenv("HOME"), ".config/fincalc/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("%w, set FINCALC_CONFIG or create configs/fincalc.toml", ErrNoConfig)
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Logging.File = os.ExpandEnv(c.Logging.File)
	c.Output.ChartDir = os.ExpandEnv(c.Output.ChartDir)
}

// Validate rejects values no calculator can work with.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	percents := []struct {
		name  string
		value float64
	}{
		{"tax.government_borrowing_rate", c.Tax.GovernmentBorrowingRate},
		{"mortgage.down_payment", c.Mortgage.DownPayment},
		{"mortgage.interest_rate", c.Mortgage.InterestRate},
		{"savings.yearly_return", c.Savings.YearlyReturn},
		{"isk.yearly_return", c.ISK.YearlyReturn},
	}
	for _, p := range percents {
		if p.value < 0 {
			return fmt.Errorf("%s: percentage is outside interval", p.name)
		}
	}
	return nil
}

// ChartPath resolves a chart file name against Output.ChartDir.
func (c *Config) ChartPath(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Output.ChartDir == "" {
		return name
	}
	return filepath.Join(c.Output.ChartDir, name)
}
