package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

const FileName = "config.yaml"

const (
	FormatLines = "lines"
	FormatTable = "table"
)

type Config struct {
	ListFormat   string `yaml:"list_format,omitempty"`
	ConfirmClear bool   `yaml:"confirm_clear,omitempty"`
	Verbose      bool   `yaml:"verbose,omitempty"`
}

// Format returns the list format, defaulting to lines.
func (c *Config) Format() string {
	if c.ListFormat == "" {
		return FormatLines
	}
	return c.ListFormat
}

func (c *Config) Validate() error {
	switch c.ListFormat {
	case "", FormatLines, FormatTable:
		return nil
	}
	return fmt.Errorf("invalid list_format %q: must be one of lines, table", c.ListFormat)
}

// Set assigns a single key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "list_format":
		c.ListFormat = value
		return c.Validate()
	case "confirm_clear":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid confirm_clear %q: must be true or false", value)
		}
		c.ConfirmClear = b
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid verbose %q: must be true or false", value)
		}
		c.Verbose = b
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys())
	}
	return nil
}

// Values returns every key with its effective value.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"list_format":   c.Format(),
		"confirm_clear": strconv.FormatBool(c.ConfirmClear),
		"verbose":       strconv.FormatBool(c.Verbose),
	}
}

func Keys() []string {
	keys := []string{"list_format", "confirm_clear", "verbose"}
	sort.Strings(keys)
	return keys
}

func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}
