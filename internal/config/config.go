package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default limits applied when no configuration overrides them.
const (
	// DefaultMaxFileSizeBytes is the per-file size ceiling (100 MiB).
	DefaultMaxFileSizeBytes int64 = 100 * 1024 * 1024

	// DefaultSearchTimeout is the wall-clock budget of one search operation.
	DefaultSearchTimeout = 30 * time.Second
)

// WalkConfig represents directory traversal options
type WalkConfig struct {
	// Extensions restricts the walk to files with these extensions (empty = all files)
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs lists directory names that are never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Config represents mindexr configuration options
type Config struct {
	// MaxFileSizeBytes is the largest file that passes validation
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`

	// SearchTimeout bounds the total duration of a search operation
	SearchTimeout time.Duration `yaml:"search_timeout"`

	// DenyReadOnly rejects files without any write permission bit with PermissionDenied
	DenyReadOnly bool `yaml:"deny_read_only"`

	// FollowSymlinks makes the directory walk follow symbolic links
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written (empty = no run log)
	LogDir string `yaml:"log_dir"`

	// Walk contains directory traversal options
	Walk WalkConfig `yaml:"walk"`
}

// DefaultConfig returns a Config with the documented default values
func DefaultConfig() *Config {
	return &Config{
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
		SearchTimeout:    DefaultSearchTimeout,
		DenyReadOnly:     true,
		FollowSymlinks:   true,
		LogLevel:         "info",
		LogDir:           "",
		Walk: WalkConfig{
			Extensions:  nil,
			ExcludeDirs: nil,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("30s", "2m") in the file
	type yamlConfig struct {
		MaxFileSizeBytes int64      `yaml:"max_file_size_bytes"`
		SearchTimeout    string     `yaml:"search_timeout"`
		DenyReadOnly     *bool      `yaml:"deny_read_only"`
		FollowSymlinks   *bool      `yaml:"follow_symlinks"`
		LogLevel         string     `yaml:"log_level"`
		LogDir           string     `yaml:"log_dir"`
		Walk             WalkConfig `yaml:"walk"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply values present in the file on top of the defaults
	if yamlCfg.MaxFileSizeBytes != 0 {
		cfg.MaxFileSizeBytes = yamlCfg.MaxFileSizeBytes
	}
	if yamlCfg.SearchTimeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.SearchTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid search_timeout format %q: %w", yamlCfg.SearchTimeout, err)
		}
		cfg.SearchTimeout = timeout
	}
	// Booleans default to true, so only an explicit key may change them
	if yamlCfg.DenyReadOnly != nil {
		cfg.DenyReadOnly = *yamlCfg.DenyReadOnly
	}
	if yamlCfg.FollowSymlinks != nil {
		cfg.FollowSymlinks = *yamlCfg.FollowSymlinks
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if len(yamlCfg.Walk.Extensions) > 0 {
		cfg.Walk.Extensions = yamlCfg.Walk.Extensions
	}
	if len(yamlCfg.Walk.ExcludeDirs) > 0 {
		cfg.Walk.ExcludeDirs = yamlCfg.Walk.ExcludeDirs
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(maxFileSize *int64, searchTimeout *time.Duration, logLevel *string, logDir *string, allowReadOnly *bool) {
	if maxFileSize != nil {
		c.MaxFileSizeBytes = *maxFileSize
	}
	if searchTimeout != nil {
		c.SearchTimeout = *searchTimeout
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if allowReadOnly != nil {
		c.DenyReadOnly = !*allowReadOnly
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("max_file_size_bytes must be > 0, got %d", c.MaxFileSizeBytes)
	}

	if c.SearchTimeout <= 0 {
		return fmt.Errorf("search_timeout must be > 0, got %v", c.SearchTimeout)
	}

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

	for _, name := range c.Walk.ExcludeDirs {
		if name == "" {
			return fmt.Errorf("walk.exclude_dirs cannot contain an empty name")
		}
	}

	return nil
}
