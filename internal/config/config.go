package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the finsearch configuration.
type Config struct {
	Widget WidgetConfig `yaml:"widget"`
	Cache  CacheConfig  `yaml:"cache"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// WidgetConfig holds search-widget settings.
type WidgetConfig struct {
	Placeholder    string `yaml:"placeholder"`      // Input placeholder text
	MinQueryLength int    `yaml:"min_query_length"` // Min characters before searching
	DebounceMs     int    `yaml:"debounce_ms"`      // Trailing debounce delay in ms
	MaxResults     int    `yaml:"max_results"`      // Result cap after category concat
	DataSource     string `yaml:"data_source"`      // builtin or sqlite
}

// CacheConfig holds query-cache settings.
type CacheConfig struct {
	TTLMs    int `yaml:"ttl_ms"`   // Entry time-to-live in ms
	Capacity int `yaml:"capacity"` // Max cached queries (FIFO eviction)
}

// ThemeConfig holds theme settings.
type ThemeConfig struct {
	Default string `yaml:"default"` // light, dark, or auto
	Persist bool   `yaml:"persist"` // Persist toggled theme across runs
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (empty = stderr)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Widget: WidgetConfig{
			Placeholder:    "Search accounts, customers, transactions...",
			MinQueryLength: 1,
			DebounceMs:     300,
			MaxResults:     20,
			DataSource:     "builtin",
		},
		Cache: CacheConfig{
			TTLMs:    300000,
			Capacity: 64,
		},
		Theme: ThemeConfig{
			Default: "auto",
			Persist: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			cfg.ValidateAndFix()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()
	cfg.ValidateAndFix()

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
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

// Get retrieves a configuration value by dot-separated key.
// For example: "widget.debounce_ms" or "theme.default"
func (c *Config) Get(key string) (string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "widget":
		return c.getWidgetField(field)
	case "cache":
		return c.getCacheField(field)
	case "theme":
		return c.getThemeField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by dot-separated key.
func (c *Config) Set(key, value string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return errors.New("key must be in format 'section.key'")
	}

	section, field := parts[0], parts[1]

	switch section {
	case "widget":
		return c.setWidgetField(field, value)
	case "cache":
		return c.setCacheField(field, value)
	case "theme":
		return c.setThemeField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func (c *Config) getWidgetField(field string) (string, error) {
	switch field {
	case "placeholder":
		return c.Widget.Placeholder, nil
	case "min_query_length":
		return strconv.Itoa(c.Widget.MinQueryLength), nil
	case "debounce_ms":
		return strconv.Itoa(c.Widget.DebounceMs), nil
	case "max_results":
		return strconv.Itoa(c.Widget.MaxResults), nil
	case "data_source":
		return c.Widget.DataSource, nil
	default:
		return "", fmt.Errorf("unknown field: widget.%s", field)
	}
}

func (c *Config) setWidgetField(field, value string) error {
	switch field {
	case "placeholder":
		c.Widget.Placeholder = value
	case "min_query_length":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for min_query_length: %w", err)
		}
		c.Widget.MinQueryLength = v
	case "debounce_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for debounce_ms: %w", err)
		}
		c.Widget.DebounceMs = v
	case "max_results":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_results: %w", err)
		}
		c.Widget.MaxResults = v
	case "data_source":
		if !isValidDataSource(value) {
			return fmt.Errorf("invalid data_source: %s (must be builtin or sqlite)", value)
		}
		c.Widget.DataSource = value
	default:
		return fmt.Errorf("unknown field: widget.%s", field)
	}
	return nil
}

func (c *Config) getCacheField(field string) (string, error) {
	switch field {
	case "ttl_ms":
		return strconv.Itoa(c.Cache.TTLMs), nil
	case "capacity":
		return strconv.Itoa(c.Cache.Capacity), nil
	default:
		return "", fmt.Errorf("unknown field: cache.%s", field)
	}
}

func (c *Config) setCacheField(field, value string) error {
	switch field {
	case "ttl_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for ttl_ms: %w", err)
		}
		c.Cache.TTLMs = v
	case "capacity":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for capacity: %w", err)
		}
		c.Cache.Capacity = v
	default:
		return fmt.Errorf("unknown field: cache.%s", field)
	}
	return nil
}

func (c *Config) getThemeField(field string) (string, error) {
	switch field {
	case "default":
		return c.Theme.Default, nil
	case "persist":
		return strconv.FormatBool(c.Theme.Persist), nil
	default:
		return "", fmt.Errorf("unknown field: theme.%s", field)
	}
}

func (c *Config) setThemeField(field, value string) error {
	switch field {
	case "default":
		if !isValidThemeName(value) {
			return fmt.Errorf("invalid theme: %s (must be light, dark, or auto)", value)
		}
		c.Theme.Default = value
	case "persist":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for persist: %w", err)
		}
		c.Theme.Persist = v
	default:
		return fmt.Errorf("unknown field: theme.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"widget.placeholder",
		"widget.min_query_length",
		"widget.debounce_ms",
		"widget.max_results",
		"widget.data_source",
		"cache.ttl_ms",
		"cache.capacity",
		"theme.default",
		"theme.persist",
		"log.level",
		"log.file",
	}
}

// ValidationWarning represents a config validation warning.
type ValidationWarning struct {
	Field   string
	Message string
}

// ValidateAndFix validates config values. Invalid values are fixed by
// clamping or falling back to defaults. Returns a list of warnings for
// diagnostics. Validation never prevents startup.
func (c *Config) ValidateAndFix() []ValidationWarning {
	defaults := DefaultConfig()
	var warnings []ValidationWarning

	warn := func(field, msg string) {
		w := ValidationWarning{Field: field, Message: msg}
		warnings = append(warnings, w)
		log.Printf("WARN config: %s: %s", field, msg)
	}

	if c.Widget.MinQueryLength < 1 {
		warn("widget.min_query_length", fmt.Sprintf("must be >= 1, got %d; falling back to default %d", c.Widget.MinQueryLength, defaults.Widget.MinQueryLength))
		c.Widget.MinQueryLength = defaults.Widget.MinQueryLength
	}

	// Delays below 10ms give no meaningful coalescing.
	if c.Widget.DebounceMs < 10 {
		warn("widget.debounce_ms", fmt.Sprintf("must be >= 10, got %d; clamping to 10", c.Widget.DebounceMs))
		c.Widget.DebounceMs = 10
	}
	if c.Widget.DebounceMs > 5000 {
		warn("widget.debounce_ms", fmt.Sprintf("must be <= 5000, got %d; clamping to 5000", c.Widget.DebounceMs))
		c.Widget.DebounceMs = 5000
	}

	if c.Widget.MaxResults < 1 {
		warn("widget.max_results", fmt.Sprintf("must be >= 1, got %d; falling back to default %d", c.Widget.MaxResults, defaults.Widget.MaxResults))
		c.Widget.MaxResults = defaults.Widget.MaxResults
	}

	if !isValidDataSource(c.Widget.DataSource) {
		warn("widget.data_source", fmt.Sprintf("must be builtin or sqlite, got %q; falling back to %q", c.Widget.DataSource, defaults.Widget.DataSource))
		c.Widget.DataSource = defaults.Widget.DataSource
	}

	if c.Cache.TTLMs < 1 {
		warn("cache.ttl_ms", fmt.Sprintf("must be >= 1, got %d; falling back to default %d", c.Cache.TTLMs, defaults.Cache.TTLMs))
		c.Cache.TTLMs = defaults.Cache.TTLMs
	}

	if c.Cache.Capacity < 1 {
		warn("cache.capacity", fmt.Sprintf("must be >= 1, got %d; falling back to default %d", c.Cache.Capacity, defaults.Cache.Capacity))
		c.Cache.Capacity = defaults.Cache.Capacity
	}

	if !isValidThemeName(c.Theme.Default) {
		warn("theme.default", fmt.Sprintf("must be light, dark, or auto, got %q; falling back to %q", c.Theme.Default, defaults.Theme.Default))
		c.Theme.Default = defaults.Theme.Default
	}

	if !isValidLogLevel(c.Log.Level) {
		warn("log.level", fmt.Sprintf("must be debug, info, warn, or error, got %q; falling back to %q", c.Log.Level, defaults.Log.Level))
		c.Log.Level = defaults.Log.Level
	}

	return warnings
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables override config file values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("FINSEARCH_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("FINSEARCH_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
	if v := os.Getenv("FINSEARCH_THEME"); v != "" {
		if isValidThemeName(v) {
			c.Theme.Default = v
		}
	}
	if v := os.Getenv("FINSEARCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Widget.DebounceMs = n
		}
	}
	if v := os.Getenv("FINSEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Widget.MaxResults = n
		}
	}
	if v := os.Getenv("FINSEARCH_DATA_SOURCE"); v != "" {
		if isValidDataSource(v) {
			c.Widget.DataSource = v
		}
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func isValidThemeName(name string) bool {
	switch name {
	case "light", "dark", "auto":
		return true
	default:
		return false
	}
}

func isValidDataSource(source string) bool {
	switch source {
	case "builtin", "sqlite":
		return true
	default:
		return false
	}
}
