// Package config provides configuration loading for the catplus tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
)

// Config represents the complete catplus configuration
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Validation ValidationConfig `yaml:"validation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// OutputConfig configures how graphs are built and serialized
type OutputConfig struct {
	// Format is the serialization format: turtle or jsonld
	Format string `yaml:"format"`
	// NodeStrategy selects new node identities: blank or uri
	NodeStrategy string `yaml:"node_strategy"`
	// URIBase is the namespace of minted node URIs
	URIBase string `yaml:"uri_base"`
	// Materialize turns blank nodes into URIs before serializing
	Materialize bool `yaml:"materialize"`
	// MaterializePrefix is the namespace of materialized nodes (empty = URIBase)
	MaterializePrefix string `yaml:"materialize_prefix"`
}

// ValidationConfig configures the SHACL engine
type ValidationConfig struct {
	// Endpoint is the shacl-api base URL (empty = validation disabled)
	Endpoint string `yaml:"endpoint"`
	// Shapes is an optional Turtle file with the shapes to validate against
	Shapes string `yaml:"shapes"`
	// Timeout bounds one validation call
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig configures the slog handler
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures metrics export
type MetricsConfig struct {
	// Textfile is where metrics are written on exit (empty = disabled)
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:       string(rdf.FormatTurtle),
			NodeStrategy: graph.StrategyBlankNode.String(),
			URIBase:      graph.DefaultBase,
		},
		Validation: ValidationConfig{
			Timeout: 2 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid. All problems are
// reported, not only the first.
func (c *Config) Validate() error {
	var err error
	if f, ok := rdf.ParseFormat(c.Output.Format); !ok || f == rdf.FormatNTriples {
		err = multierr.Append(err, fmt.Errorf("output.format %q must be turtle or jsonld", c.Output.Format))
	}
	if _, perr := graph.ParseStrategy(c.Output.NodeStrategy); perr != nil {
		err = multierr.Append(err, fmt.Errorf("output.node_strategy: %w", perr))
	}
	if c.Output.URIBase == "" {
		err = multierr.Append(err, fmt.Errorf("output.uri_base is required"))
	}
	if c.Validation.Endpoint != "" && !hasHTTPScheme(c.Validation.Endpoint) {
		err = multierr.Append(err, fmt.Errorf("validation.endpoint %q must be an http(s) URL", c.Validation.Endpoint))
	}
	if c.Validation.Timeout < 0 {
		err = multierr.Append(err, fmt.Errorf("validation.timeout must not be negative"))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format %q must be text or json", c.Logging.Format))
	}
	return err
}

func hasHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// RDFFormat returns the configured output format. Call Validate first.
func (c *OutputConfig) RDFFormat() rdf.Format {
	f, _ := rdf.ParseFormat(c.Format)
	return f
}

// Strategy returns the configured node strategy. Call Validate first.
func (c *OutputConfig) Strategy() graph.Strategy {
	s, _ := graph.ParseStrategy(c.NodeStrategy)
	return s
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
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
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.NodeStrategy != "" {
		c.Output.NodeStrategy = other.Output.NodeStrategy
	}
	if other.Output.URIBase != "" {
		c.Output.URIBase = other.Output.URIBase
	}
	if other.Output.Materialize {
		c.Output.Materialize = true
	}
	if other.Output.MaterializePrefix != "" {
		c.Output.MaterializePrefix = other.Output.MaterializePrefix
	}

	// Validation
	if other.Validation.Endpoint != "" {
		c.Validation.Endpoint = other.Validation.Endpoint
	}
	if other.Validation.Shapes != "" {
		c.Validation.Shapes = other.Validation.Shapes
	}
	if other.Validation.Timeout != 0 {
		c.Validation.Timeout = other.Validation.Timeout
	}

	// Logging
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}
}
