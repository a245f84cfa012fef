package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// ProjectConfigFile is the config file looked up in the working directory
	ProjectConfigFile = "catplus.yaml"
	// EnvFile is the dotenv file loaded into the environment
	EnvFile = ".env"
)

// Environment variables overriding the config file.
const (
	EnvShaclEndpoint     = "CATPLUS_SHACL_ENDPOINT"
	EnvValidationTimeout = "CATPLUS_VALIDATION_TIMEOUT"
	EnvLogLevel          = "CATPLUS_LOG_LEVEL"
	EnvLogFormat         = "CATPLUS_LOG_FORMAT"
	EnvOutputFormat      = "CATPLUS_OUTPUT_FORMAT"
	EnvNodeStrategy      = "CATPLUS_NODE_STRATEGY"
	EnvURIBase           = "CATPLUS_URI_BASE"
	EnvMaterialize       = "CATPLUS_MATERIALIZE"
	EnvMaterializePrefix = "CATPLUS_MATERIALIZE_PREFIX"
	EnvMetricsTextfile   = "CATPLUS_METRICS_TEXTFILE"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger    *slog.Logger
	envFile   string
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, envFile: EnvFile, lookupEnv: os.LookupEnv}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Config file (path, or catplus.yaml in the working directory if path is empty)
// 3. .env file, without overriding variables already set
// 4. CATPLUS_* environment variables
//
// Command-line flags are applied by the caller on top.
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", path))
		config.Merge(fileConfig)
	} else if fileConfig, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("Loaded project config", slog.String("path", ProjectConfigFile))
		config.Merge(fileConfig)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err == nil {
			l.logger.Debug("Loaded env file", slog.String("path", l.envFile))
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	if err := config.ApplyEnv(l.lookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from CATPLUS_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvShaclEndpoint, &c.Validation.Endpoint)
	set(EnvLogLevel, &c.Logging.Level)
	set(EnvLogFormat, &c.Logging.Format)
	set(EnvOutputFormat, &c.Output.Format)
	set(EnvNodeStrategy, &c.Output.NodeStrategy)
	set(EnvURIBase, &c.Output.URIBase)
	set(EnvMaterializePrefix, &c.Output.MaterializePrefix)
	set(EnvMetricsTextfile, &c.Metrics.Textfile)

	if v, ok := lookup(EnvMaterialize); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaterialize, err)
		}
		c.Output.Materialize = b
	}

	if v, ok := lookup(EnvValidationTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvValidationTimeout, err)
		}
		c.Validation.Timeout = d
	}
	return nil
}
