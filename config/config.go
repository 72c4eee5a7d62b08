// Package config provides configuration loading and management for crategraph.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete crategraph configuration
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Output  OutputConfig  `yaml:"output"`
}

// ExtractConfig configures the extraction pass
type ExtractConfig struct {
	// BaseIRI is the IRI prefix for minted node identifiers
	BaseIRI string `yaml:"base_iri"`
	// Impls toggles the impl block pass (default: true)
	Impls *bool `yaml:"impls"`
	// Attributes toggles attribute-derived facts (default: true)
	Attributes *bool `yaml:"attributes"`
	// ErrorTypes toggles error type edges for Result returns (default: true)
	ErrorTypes *bool `yaml:"error_types"`
	// Derives toggles derive literals on structs and enums (default: true)
	Derives *bool `yaml:"derives"`
}

// OutputConfig configures the serialization output
type OutputConfig struct {
	// Format is the serialization format: "ntriples" or "turtle"
	Format string `yaml:"format"`
	// Path is the output file path (empty = stdout)
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			BaseIRI: "http://rust.example",
		},
		Output: OutputConfig{
			Format: "turtle",
			Path:   "", // stdout
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Extract.BaseIRI == "" {
		return fmt.Errorf("extract.base_iri is required")
	}
	u, err := url.Parse(c.Extract.BaseIRI)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("extract.base_iri must be an absolute IRI: %q", c.Extract.BaseIRI)
	}
	switch c.Output.Format {
	case "ntriples", "nt", "n-triples", "turtle", "ttl":
	default:
		return fmt.Errorf("output.format must be ntriples or turtle, got %q", c.Output.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for set values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Extract
	if other.Extract.BaseIRI != "" {
		c.Extract.BaseIRI = other.Extract.BaseIRI
	}
	if other.Extract.Impls != nil {
		c.Extract.Impls = other.Extract.Impls
	}
	if other.Extract.Attributes != nil {
		c.Extract.Attributes = other.Extract.Attributes
	}
	if other.Extract.ErrorTypes != nil {
		c.Extract.ErrorTypes = other.Extract.ErrorTypes
	}
	if other.Extract.Derives != nil {
		c.Extract.Derives = other.Extract.Derives
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
}
