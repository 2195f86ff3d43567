// FILE: lixenwraith/ringlog/level.go
package ringlog

import (
	"strings"
)

// Level is the severity ordinal carried by every record.
type Level int32

// Severity ordinals in increasing order
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// levelPadded holds names padded to the five-column output width.
// UNKNOWN overflows the column instead of truncating.
var levelPadded = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO ",
	LevelWarn:  "WARN ",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// String returns the level name, or UNKNOWN for out-of-range ordinals.
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "UNKNOWN"
	}
	return levelNames[l]
}

func (l Level) padded() string {
	if l < LevelTrace || l > LevelFatal {
		return "UNKNOWN"
	}
	return levelPadded[l]
}

// valid reports whether l is one of the six defined ordinals.
func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// ParseLevel converts a level name to its ordinal. Matching is
// case-insensitive and tolerates surrounding whitespace.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, fatal)", levelStr)
	}
}
