// FILE: override.go
package ringlog

import (
	"fmt"
	"strconv"
	"strings"
)

// NewConfigFromStrings builds a Config from defaults plus string
// key-value overrides. Each override should be in the format "key=value".
//
// Example:
//
//	cfg, err := ringlog.NewConfigFromStrings(
//	    "file_path_base=/var/log/app/app.log",
//	    "ring_capacity=4096",
//	    "overflow_policy=block",
//	)
func NewConfigFromStrings(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return nil, combineConfigErrors(errors)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("ringlog: multiple configuration errors:")
	for i, err := range errors {
		// Remove the package prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), "ringlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// File sink
	case "file_path_base":
		cfg.FilePathBase = value
	case "file_max_bytes":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for file_max_bytes '%s': %w", value, err)
		}
		cfg.FileMaxBytes = intVal

	// Ring buffer
	case "ring_capacity":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for ring_capacity '%s': %w", value, err)
		}
		cfg.RingCapacity = intVal
	case "overflow_policy":
		cfg.OverflowPolicy = value

	// Severity threshold
	case "min_level":
		// Special handling: accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			lvl := Level(numVal)
			if !lvl.valid() {
				return fmtErrorf("invalid min_level value '%s': out of range", value)
			}
			cfg.MinLevel = lvl.String()
		} else {
			if _, err := ParseLevel(value); err != nil {
				return fmtErrorf("invalid min_level value '%s': %w", value, err)
			}
			cfg.MinLevel = value
		}

	// Console sink
	case "console_enabled":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for console_enabled '%s': %w", value, err)
		}
		cfg.ConsoleEnabled = boolVal
	case "console_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for console_color '%s': %w", value, err)
		}
		cfg.ConsoleColor = boolVal
	case "console_target":
		cfg.ConsoleTarget = value

	// Synchronous mode
	case "synchronous":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for synchronous '%s': %w", value, err)
		}
		cfg.Synchronous = boolVal
	case "lock_strategy":
		cfg.LockStrategy = value

	// Rate limit
	case "max_emit_per_sec":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_emit_per_sec '%s': %w", value, err)
		}
		cfg.MaxEmitPerSec = intVal

	// Sanitization
	case "sanitize_policy":
		cfg.SanitizePolicy = value

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
