// FILE: lixenwraith/ringlog/compat/fasthttp.go
// Package compat adapts a ringlog.Logger to the logging interfaces of
// third-party servers. Adapters capture their caller as the record
// locator, so lines point at the framework call site rather than the
// adapter itself.
package compat

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lixenwraith/ringlog"
)

// FastHTTPAdapter wraps ringlog.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	logger        *ringlog.Logger
	category      string
	defaultLevel  ringlog.Level
	levelDetector func(string) (ringlog.Level, bool) // Detect log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *ringlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		category:      "fasthttp",
		defaultLevel:  ringlog.LevelInfo,
		levelDetector: DetectLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithCategory sets the category tag carried by adapter records
func WithCategory(category string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.category = category
	}
}

// WithDefaultLevel sets the severity used when detection is inconclusive
func WithDefaultLevel(level ringlog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect severity from message content
func WithLevelDetector(detector func(string) (ringlog.Level, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}

	file, line := callerLocation(1)
	a.logger.Emit(level, a.category, file, line, "%s", msg)
}

// DetectLevel guesses a severity from keywords in the message. The
// second result is false when no keyword matched.
func DetectLevel(msg string) (ringlog.Level, bool) {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic"):
		return ringlog.LevelFatal, true

	case strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed"):
		return ringlog.LevelError, true

	case strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated"):
		return ringlog.LevelWarn, true

	case strings.Contains(msgLower, "debug"):
		return ringlog.LevelDebug, true

	case strings.Contains(msgLower, "trace"):
		return ringlog.LevelTrace, true
	}

	return ringlog.LevelInfo, false
}

// callerLocation returns the base file name and line of the frame skip
// levels above the caller of callerLocation.
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}
