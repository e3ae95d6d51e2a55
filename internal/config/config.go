package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/pipeline-demo/internal/greeting"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "json"
)

// Environment variables read by Load.
const (
	EnvGreetName = "PIPELINE_DEMO_GREET_NAME"
	EnvLogLevel  = "PIPELINE_DEMO_LOG_LEVEL"
	EnvLogFormat = "PIPELINE_DEMO_LOG_FORMAT"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > config file > Environment variables > Defaults
type Config struct {
	DefaultName string
	LogLevel    string
	LogFormat   string
	// Warnings lists environment values that were ignored because they were invalid.
	Warnings []string
}

// fileConfig represents the YAML or TOML configuration file structure.
type fileConfig struct {
	DefaultName string `yaml:"default_name" toml:"default_name"`
	LogLevel    string `yaml:"log_level" toml:"log_level"`
	LogFormat   string `yaml:"log_format" toml:"log_format"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	LogLevel   *string
	LogFormat  *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > config file > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		applyFileConfig(&cfg, fileCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		DefaultName: greeting.DefaultName,
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
	}
}

// loadFromFile decodes a YAML or TOML file, chosen by extension.
func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return &fileCfg, nil
}

func applyFileConfig(cfg *Config, fileCfg *fileConfig) {
	if name := strings.TrimSpace(fileCfg.DefaultName); name != "" {
		cfg.DefaultName = name
	}
	if level := strings.TrimSpace(fileCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if format := strings.TrimSpace(fileCfg.LogFormat); format != "" {
		cfg.LogFormat = format
	}
}

// applyEnvConfig applies environment variables. Invalid logging values are
// ignored and recorded in cfg.Warnings so an unrelated environment cannot
// stop a command from running.
func applyEnvConfig(cfg *Config) {
	if name := strings.TrimSpace(os.Getenv(EnvGreetName)); name != "" {
		cfg.DefaultName = name
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		if err := validateLogLevel(level); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring %s: %v", EnvLogLevel, err))
		} else {
			cfg.LogLevel = level
		}
	}
	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		if err := validateLogFormat(format); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring %s: %v", EnvLogFormat, err))
		} else {
			cfg.LogFormat = format
		}
	}
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.LogFormat != nil && *overrides.LogFormat != "" {
		cfg.LogFormat = *overrides.LogFormat
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return validateLogFormat(cfg.LogFormat)
}

func validateLogLevel(level string) error {
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	return nil
}

func validateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("log format must be json or console, got %q", format)
	}
}
