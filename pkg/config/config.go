// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Configuration validation errors.
var (
	ErrNoSources         = errors.New("at least one source table is required")
	ErrSourceMissingName = errors.New("source name is required")
	ErrSourceMissingPath = errors.New("source input and output paths are required")
	ErrDuplicateSource   = errors.New("source names must be unique")
	ErrInvalidLogLevel   = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat  = errors.New("log format must be 'json' or 'console'")
)

// Config represents the application configuration
type Config struct {
	// Source tables to clean, in run order
	Sources []Source

	// Directories for the fixed default sources
	InputDir  string
	OutputDir string

	// Whether to persist the per-cell diagnostics audit file
	WriteDiagnostics bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Source describes one table job: where its raw file lives and where the
// cleaned file goes.
type Source struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DiagnosticsPath returns the audit-file path for this source, next to
// the cleaned output.
func (s Source) DiagnosticsPath() string {
	dir := filepath.Dir(s.Output)
	return filepath.Join(dir, s.Name+"_diagnostics.csv")
}

// LoadConfig loads configuration from environment variables, filling in
// the two fixed call-center sources when no sources file is given.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		InputDir:         getEnv("INPUT_DIR", "original_data"),
		OutputDir:        getEnv("OUTPUT_DIR", "cleaned_data"),
		WriteDiagnostics: getEnvAsBool("WRITE_DIAGNOSTICS", true),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
	}

	sourcesFile := getEnv("SOURCES_FILE", "")
	if sourcesFile != "" {
		sources, err := LoadSourcesFile(sourcesFile)
		if err != nil {
			return nil, fmt.Errorf("load sources file: %w", err)
		}
		cfg.Sources = sources
	} else {
		cfg.Sources = DefaultSources(cfg.InputDir, cfg.OutputDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultSources returns the two fixed call-center tables: the current
// case log and the historical archive.
func DefaultSources(inputDir, outputDir string) []Source {
	return []Source{
		{
			Name:   "current",
			Input:  filepath.Join(inputDir, "callcenterdatacurrent.csv"),
			Output: filepath.Join(outputDir, "callcenterdatacurrent_cleaned.csv"),
		},
		{
			Name:   "historical",
			Input:  filepath.Join(inputDir, "callcenterdatahistorical.csv"),
			Output: filepath.Join(outputDir, "callcenterdatahistorical_cleaned.csv"),
		},
	}
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	seen := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		if src.Name == "" {
			return ErrSourceMissingName
		}
		if src.Input == "" || src.Output == "" {
			return fmt.Errorf("source %s: %w", src.Name, ErrSourceMissingPath)
		}
		if seen[src.Name] {
			return fmt.Errorf("source %s: %w", src.Name, ErrDuplicateSource)
		}
		seen[src.Name] = true
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
