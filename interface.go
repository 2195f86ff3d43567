// FILE: lixenwraith/ringlog/interface.go
package ringlog

import (
	"strings"
)

// Leveled emit methods. Each formats the message on the calling
// goroutine, captures the caller's file and line as the record locator
// and hands the record to the ring. None of them can fail the caller:
// before Init and after Shutdown they are silent no-ops, and sink
// trouble is absorbed by the worker.

// Trace logs a formatted message at trace severity.
func (l *Logger) Trace(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelTrace, category, file, line, format, args...)
}

// Debug logs a formatted message at debug severity.
func (l *Logger) Debug(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelDebug, category, file, line, format, args...)
}

// Info logs a formatted message at info severity.
func (l *Logger) Info(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelInfo, category, file, line, format, args...)
}

// Warn logs a formatted message at warn severity.
func (l *Logger) Warn(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelWarn, category, file, line, format, args...)
}

// Error logs a formatted message at error severity.
func (l *Logger) Error(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelError, category, file, line, format, args...)
}

// Fatal logs a formatted message at fatal severity. It does not
// terminate the process; whether fatal conditions abort is the host
// application's decision.
func (l *Logger) Fatal(category, format string, args ...any) {
	file, line := callerLocation(1)
	l.emit(LevelFatal, category, file, line, format, args...)
}

// Emit logs with an explicit severity and source locator. Intended for
// adapters and wrappers that capture the caller themselves; the leveled
// methods above are the usual entry points.
func (l *Logger) Emit(level Level, category, file string, line int, format string, args ...any) {
	l.emit(level, category, file, line, format, args...)
}

// Dump deep-renders v and logs it at debug severity. Rendering is
// deterministic (sorted keys, no pointer addresses) so dumps are
// diffable across runs. Dumps of large values exceed the record's
// message bound and are truncated like any other message.
func (l *Logger) Dump(category string, v any) {
	file, line := callerLocation(1)
	l.emit(LevelDebug, category, file, line, "%s", strings.TrimSpace(spewConfig.Sdump(v)))
}
