// FILE: config.go
package ringlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// File sink. FilePathBase is the full base path; each opened file
	// gets a timestamp suffix appended to it.
	FilePathBase string `toml:"file_path_base"`
	FileMaxBytes int64  `toml:"file_max_bytes"` // Rotation threshold, 0 disables

	// Ring buffer
	RingCapacity   int64  `toml:"ring_capacity"`   // Slot count, usable capacity is one less
	OverflowPolicy string `toml:"overflow_policy"` // "drop" or "block"

	// Severity threshold, records below it are ignored
	MinLevel string `toml:"min_level"`

	// Console sink
	ConsoleEnabled bool   `toml:"console_enabled"`
	ConsoleColor   bool   `toml:"console_color"`
	ConsoleTarget  string `toml:"console_target"` // "stderr" or "stdout"

	// Synchronous mode: no ring, no worker, writes happen on the
	// caller under the selected lock strategy.
	Synchronous  bool   `toml:"synchronous"`
	LockStrategy string `toml:"lock_strategy"` // "mutex" or "none"

	// Producer-side rate limit in records per second, 0 disables
	MaxEmitPerSec int64 `toml:"max_emit_per_sec"`

	// Output sanitization: "none" or "line"
	SanitizePolicy string `toml:"sanitize_policy"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	FilePathBase: "",
	FileMaxBytes: 0,

	RingCapacity:   defaultRingCapacity,
	OverflowPolicy: "drop",

	MinLevel: "trace",

	ConsoleEnabled: false,
	ConsoleColor:   false,
	ConsoleTarget:  "stderr",

	Synchronous:  false,
	LockStrategy: "mutex",

	MaxEmitPerSec: 0,

	SanitizePolicy: "none",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	// Apply overrides using reflection
	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	// Validate the configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Create a map of field names to field values for efficient lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	// String validations
	if strings.TrimSpace(c.FilePathBase) == "" {
		return fmtErrorf("%w: file_path_base is required", ErrInvalidConfig)
	}

	if c.OverflowPolicy != "drop" && c.OverflowPolicy != "block" {
		return fmtErrorf("%w: invalid overflow_policy: '%s' (use drop or block)", ErrInvalidConfig, c.OverflowPolicy)
	}

	if _, err := ParseLevel(c.MinLevel); err != nil {
		return fmtErrorf("%w: invalid min_level: '%s'", ErrInvalidConfig, c.MinLevel)
	}

	if c.ConsoleTarget != "stderr" && c.ConsoleTarget != "stdout" {
		return fmtErrorf("%w: invalid console_target: '%s' (use stderr or stdout)", ErrInvalidConfig, c.ConsoleTarget)
	}

	if c.LockStrategy != "mutex" && c.LockStrategy != "none" {
		return fmtErrorf("%w: invalid lock_strategy: '%s' (use mutex or none)", ErrInvalidConfig, c.LockStrategy)
	}

	if c.SanitizePolicy != "none" && c.SanitizePolicy != "line" {
		return fmtErrorf("%w: invalid sanitize_policy: '%s' (use none or line)", ErrInvalidConfig, c.SanitizePolicy)
	}

	// Numeric validations
	if c.RingCapacity < minRingCapacity {
		return fmtErrorf("%w: ring_capacity must be at least %d: %d", ErrInvalidConfig, minRingCapacity, c.RingCapacity)
	}

	if c.FileMaxBytes < 0 {
		return fmtErrorf("%w: file_max_bytes cannot be negative: %d", ErrInvalidConfig, c.FileMaxBytes)
	}

	if c.MaxEmitPerSec < 0 {
		return fmtErrorf("%w: max_emit_per_sec cannot be negative: %d", ErrInvalidConfig, c.MaxEmitPerSec)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
