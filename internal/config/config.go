package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HistoryConfig controls the local result history database
type HistoryConfig struct {
	// Enabled records every command result in the history database
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database (empty = $TALLY_HOME/history.db)
	DBPath string `yaml:"db_path"`

	// KeepEntries caps the number of stored entries, oldest pruned first (0 = unlimited)
	KeepEntries int `yaml:"keep_entries"`
}

// FilesConfig holds defaults for the files command
type FilesConfig struct {
	// ExcludeDirs lists directory names that are never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// IncludeHidden descends into directories whose name starts with "."
	IncludeHidden bool `yaml:"include_hidden"`

	// MaxDepth limits recursion depth (0 = unlimited, 1 = root only)
	MaxDepth int `yaml:"max_depth"`
}

// Config represents tally configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written
	LogDir string `yaml:"log_dir"`

	// LogToFile enables the per-run file log in LogDir
	LogToFile bool `yaml:"log_to_file"`

	// History contains result history configuration
	History HistoryConfig `yaml:"history"`

	// Files contains file counting defaults
	Files FilesConfig `yaml:"files"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		LogDir:    filepath.Join(".tally", "logs"),
		LogToFile: false,
		History: HistoryConfig{
			Enabled:     true,
			DBPath:      "",
			KeepEntries: 1000,
		},
		Files: FilesConfig{
			ExcludeDirs:   nil,
			IncludeHidden: true,
			MaxDepth:      0,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed file is an error.
// Keys present in the file override defaults, even when set to a zero value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A second pass into a generic map tells us which keys were actually set
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if _, exists := rawMap["log_to_file"]; exists {
		cfg.LogToFile = fileCfg.LogToFile
	}

	if history := section(rawMap, "history"); history != nil {
		if _, exists := history["enabled"]; exists {
			cfg.History.Enabled = fileCfg.History.Enabled
		}
		if _, exists := history["db_path"]; exists {
			cfg.History.DBPath = fileCfg.History.DBPath
		}
		if _, exists := history["keep_entries"]; exists {
			cfg.History.KeepEntries = fileCfg.History.KeepEntries
		}
	}

	if files := section(rawMap, "files"); files != nil {
		if _, exists := files["exclude_dirs"]; exists {
			cfg.Files.ExcludeDirs = fileCfg.Files.ExcludeDirs
		}
		if _, exists := files["include_hidden"]; exists {
			cfg.Files.IncludeHidden = fileCfg.Files.IncludeHidden
		}
		if _, exists := files["max_depth"]; exists {
			cfg.Files.MaxDepth = fileCfg.Files.MaxDepth
		}
	}

	return cfg, nil
}

// section returns a nested mapping from the raw config, or nil when absent.
func section(raw map[string]interface{}, key string) map[string]interface{} {
	value, exists := raw[key]
	if !exists || value == nil {
		return nil
	}
	m, _ := value.(map[string]interface{})
	return m
}

// LoadConfigFromDir loads configuration from .tally/config.yaml in the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".tally", "config.yaml"))
}

// MergeWithFlags applies CLI flags over the configuration.
// Nil flag values leave the configuration untouched.
func (c *Config) MergeWithFlags(logLevel *string, logToFile *bool, noHistory *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logToFile != nil {
		c.LogToFile = *logToFile
	}
	if noHistory != nil && *noHistory {
		c.History.Enabled = false
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LogToFile && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when log_to_file is enabled")
	}

	if c.History.KeepEntries < 0 {
		return fmt.Errorf("history.keep_entries must be >= 0, got %d", c.History.KeepEntries)
	}

	if c.Files.MaxDepth < 0 {
		return fmt.Errorf("files.max_depth must be >= 0, got %d", c.Files.MaxDepth)
	}

	return nil
}
