package internal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type FormatConfig struct {
	Typecode         string `yaml:"typecode"`
	ReprPreview      int    `yaml:"repr_preview"`
	DisplayPrecision int    `yaml:"display_precision"`
}

type Config struct {
	Format FormatConfig `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Typecode:         string(rune(Float64)),
			ReprPreview:      DefaultReprPreview,
			DisplayPrecision: -1,
		},
	}
}

// Validate rejects settings the codec cannot honour.
func (c *Config) Validate() error {
	if _, err := ParseTypecode(c.Format.Typecode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Format.ReprPreview < 0 {
		return fmt.Errorf("%w: repr_preview must not be negative, got %d", ErrInvalidConfig, c.Format.ReprPreview)
	}
	if c.Format.DisplayPrecision < -1 {
		return fmt.Errorf("%w: display_precision must be -1 or more, got %d", ErrInvalidConfig, c.Format.DisplayPrecision)
	}
	return nil
}

// LoadConfig reads the YAML file at path on top of DefaultConfig, so keys
// absent from the file keep their defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML with two-space indentation, creating the
// parent directory when needed. Invalid settings are refused before
// anything touches the disk.
func SaveConfig(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}
