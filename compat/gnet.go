// FILE: lixenwraith/ringlog/compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/ringlog"
)

// GnetAdapter wraps ringlog.Logger to implement gnet's logging.Logger interface
type GnetAdapter struct {
	logger       *ringlog.Logger
	category     string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *ringlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger:   logger,
		category: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithGnetCategory sets the category tag carried by adapter records
func WithGnetCategory(category string) GnetOption {
	return func(a *GnetAdapter) {
		a.category = category
	}
}

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	file, line := callerLocation(1)
	a.logger.Emit(ringlog.LevelDebug, a.category, file, line, format, args...)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	file, line := callerLocation(1)
	a.logger.Emit(ringlog.LevelInfo, a.category, file, line, format, args...)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	file, line := callerLocation(1)
	a.logger.Emit(ringlog.LevelWarn, a.category, file, line, format, args...)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	file, line := callerLocation(1)
	a.logger.Emit(ringlog.LevelError, a.category, file, line, format, args...)
}

// Fatalf logs at fatal level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	file, line := callerLocation(1)
	a.logger.Emit(ringlog.LevelFatal, a.category, file, line, "%s", msg)

	// Ensure the record is on disk before the handler (usually) exits
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
