// FILE: lixenwraith/ringlog/default.go
package ringlog

import (
	"strings"
	"time"
)

// Package-level facade over an internal default instance, for
// applications that want the free-function style. Everything delegates
// to one Logger; callers needing independent instances use NewLogger.
var defaultLogger = NewLogger()

// Default returns the logger behind the package-level functions.
func Default() *Logger {
	return defaultLogger
}

// Init initializes the default logger with the provided configuration.
func Init(cfg *Config) error {
	return defaultLogger.Init(cfg)
}

// InitWithDefaults initializes the default logger with built-in
// defaults and optional "key=value" overrides.
func InitWithDefaults(overrides ...string) error {
	return defaultLogger.InitWithDefaults(overrides...)
}

// InitFromFile initializes the default logger from a TOML file.
func InitFromFile(path string) error {
	return defaultLogger.InitFromFile(path)
}

// Shutdown drains and stops the default logger.
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}

// Flush forces the default logger's buffered output to stable storage.
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// GetStats returns a snapshot of the default logger's counters.
func GetStats() Stats {
	return defaultLogger.Stats()
}

// Trace logs a formatted message at trace severity.
func Trace(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelTrace, category, file, line, format, args...)
}

// Debug logs a formatted message at debug severity.
func Debug(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelDebug, category, file, line, format, args...)
}

// Info logs a formatted message at info severity.
func Info(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelInfo, category, file, line, format, args...)
}

// Warn logs a formatted message at warn severity.
func Warn(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelWarn, category, file, line, format, args...)
}

// Error logs a formatted message at error severity.
func Error(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelError, category, file, line, format, args...)
}

// Fatal logs a formatted message at fatal severity without terminating
// the process.
func Fatal(category, format string, args ...any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelFatal, category, file, line, format, args...)
}

// Emit logs with an explicit severity and source locator.
func Emit(level Level, category, file string, line int, format string, args ...any) {
	defaultLogger.emit(level, category, file, line, format, args...)
}

// Dump deep-renders v and logs it at debug severity.
func Dump(category string, v any) {
	file, line := callerLocation(1)
	defaultLogger.emit(LevelDebug, category, file, line, "%s", strings.TrimSpace(spewConfig.Sdump(v)))
}
