// Package config reads and writes bizbooks.yaml, the per-books settings
// file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level bizbooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business" validate:"required"`
	Fiscal   FiscalConfig   `yaml:"fiscal" validate:"required"`
	GST      GSTConfig      `yaml:"gst"`
	Bank     BankConfig     `yaml:"bank"`
	Log      LogConfig      `yaml:"log"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name  string `yaml:"name" validate:"required"`
	GSTIN string `yaml:"gstin,omitempty"`
	State string `yaml:"state,omitempty"`
}

// FiscalConfig scopes voucher numbering to an accounting period.
type FiscalConfig struct {
	Year string `yaml:"year" validate:"required"` // e.g. "2023 - 2024"
}

// GSTConfig sets GST defaults for itemized vouchers.
type GSTConfig struct {
	DefaultJurisdiction string `yaml:"default_jurisdiction" validate:"omitempty,oneof=Local Central"`
}

// BankConfig names the ledger used for bank reconciliation.
type BankConfig struct {
	LedgerName string `yaml:"ledger_name"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// GitConfig controls git snapshots of the books directory.
type GitConfig struct {
	AutoSnapshot bool   `yaml:"auto_snapshot"`
	AuthorName   string `yaml:"author_name"`
	AuthorEmail  string `yaml:"author_email"`
}

var validate = validator.New()

// Load reads and validates a bizbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults for a new books directory.
func Default(businessName, fiscalYear string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Fiscal: FiscalConfig{
			Year: fiscalYear,
		},
		GST: GSTConfig{
			DefaultJurisdiction: "Local",
		},
		Bank: BankConfig{
			LedgerName: "Bank Account",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AutoSnapshot: true,
			AuthorName:   "bizbooks",
			AuthorEmail:  "books@localhost",
		},
	}
}
