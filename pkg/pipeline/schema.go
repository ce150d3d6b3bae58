package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
)

// Config describes the source dataset and the feature options of a Preparer.
type Config struct {
	Columns            data.Columns `yaml:"columns"`
	Delimiter          string       `yaml:"delimiter"`
	IncludeInteraction bool         `yaml:"include_interaction"`
}

// DefaultConfig reads the standard comma-separated insurance dataset.
func DefaultConfig() Config {
	return Config{Columns: data.DefaultColumns(), Delimiter: ","}
}

// LoadConfig reads a YAML config file. Omitted fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes YAML config bytes. Unknown keys are rejected.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Columns = cfg.Columns.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks column names and the delimiter.
func (c Config) Validate() error {
	if err := c.Columns.WithDefaults().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Delimiter != "" && utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("invalid config: delimiter %q must be a single character", c.Delimiter)
	}
	return nil
}

// LoadOptions converts the config into loader options.
func (c Config) LoadOptions() data.LoadOptions {
	opts := data.LoadOptions{Columns: c.Columns.WithDefaults(), Delimiter: ','}
	if c.Delimiter != "" {
		r, _ := utf8.DecodeRuneInString(c.Delimiter)
		opts.Delimiter = r
	}
	return opts
}
