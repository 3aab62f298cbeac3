// Package config provides configuration management.
//
// Configuration covers presentation and logging only. The tariff schedule
// and rates are fixed and cannot be configured.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation"

	"telephone-bill/core/output"
	"telephone-bill/core/types"
	"telephone-bill/internal/errors"
	"telephone-bill/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" toml:"version"`

	// Currency labels amounts in output
	Currency types.Currency `json:"currency" toml:"currency"`

	// Output contains output configuration
	Output OutputConfig `json:"output" toml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" toml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" toml:"default_format"`

	// ShowDetails shows the per-call breakdown
	ShowDetails bool `json:"show_details" toml:"show_details"`
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Currency: types.CurrencyCZK,
		Output: OutputConfig{
			DefaultFormat: string(output.FormatCLI),
			ShowDetails:   false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. The decoder is picked by extension:
// .hcl, .toml, anything else is read as JSON. A missing file yields defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot read configuration", err)
	}

	config := Default()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		err = loadHCL(path, config)
	case ".toml":
		_, err = toml.DecodeFile(path, config)
	default:
		err = loadJSON(path, config)
	}
	if err != nil {
		return nil, errors.Config("cannot decode "+path, err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadJSON(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, config)
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	formats := make([]interface{}, 0, len(output.Formats))
	for _, f := range output.Formats {
		formats = append(formats, string(f))
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.Currency, validation.Required, validation.Match(currencyCode)),
	)
	if err == nil {
		err = validation.ValidateStruct(&c.Output,
			validation.Field(&c.Output.DefaultFormat, validation.Required, validation.In(formats...)),
		)
	}
	if err == nil {
		err = validation.ValidateStruct(&c.Logging,
			validation.Field(&c.Logging.Level, validation.In("debug", "info", "warn", "error")),
			validation.Field(&c.Logging.Format, validation.In("console", "json")),
		)
	}
	if err != nil {
		return errors.Config("invalid configuration", err)
	}
	return nil
}

// Save saves configuration as JSON
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
