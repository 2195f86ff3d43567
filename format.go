// FILE: lixenwraith/ringlog/format.go
package ringlog

import (
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/ringlog/sanitizer"
)

// Timestamp layouts for the two sinks
const (
	fileTimeLayout    = "2006-01-02 15:04:05"
	consoleTimeLayout = "15:04:05"
)

// ANSI escape sequences for the console sink
const (
	ansiReset = "\x1b[0m"
	ansiGray  = "\x1b[90m"
)

var levelColors = [...]string{
	LevelTrace: "\x1b[94m",
	LevelDebug: "\x1b[36m",
	LevelInfo:  "\x1b[32m",
	LevelWarn:  "\x1b[33m",
	LevelError: "\x1b[31m",
	LevelFatal: "\x1b[35m",
}

// color returns the ANSI sequence for the level, empty for out-of-range
// ordinals so UNKNOWN renders uncolored.
func (l Level) color() string {
	if !l.valid() {
		return ""
	}
	return levelColors[l]
}

// spewConfig renders values for Dump: compact, deterministic, no
// pointer noise.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// lineBuffer renders records into a reusable byte slice. The zero value
// is ready to use.
type lineBuffer struct {
	buf []byte
}

func (s *lineBuffer) reset() {
	s.buf = s.buf[:0]
}

func (s *lineBuffer) bytes() []byte {
	return s.buf
}

// appendFileLine renders one record in the file format:
//
//	2006-01-02 15:04:05 LEVEL [category] file:line: message
//
// Level names are padded to five columns.
func (s *lineBuffer) appendFileLine(r *logRecord, san *sanitizer.Sanitizer) {
	s.buf = r.when.AppendFormat(s.buf, fileTimeLayout)
	s.buf = append(s.buf, ' ')
	s.buf = append(s.buf, r.level.padded()...)
	s.buf = append(s.buf, ' ', '[')
	s.buf = appendSanitized(s.buf, r.category[:r.catLen], san)
	s.buf = append(s.buf, ']', ' ')
	s.buf = append(s.buf, r.file[:r.fileLen]...)
	s.buf = append(s.buf, ':')
	s.buf = strconv.AppendInt(s.buf, int64(r.line), 10)
	s.buf = append(s.buf, ':', ' ')
	s.buf = appendSanitized(s.buf, r.message[:r.msgLen], san)
	s.buf = append(s.buf, '\n')
}

// appendConsoleLine renders the same record with the short timestamp.
// With color on, the level name is colored per severity and the
// locator segment is gray.
func (s *lineBuffer) appendConsoleLine(r *logRecord, color bool, san *sanitizer.Sanitizer) {
	s.buf = r.when.AppendFormat(s.buf, consoleTimeLayout)
	s.buf = append(s.buf, ' ')
	if col := r.level.color(); color && col != "" {
		s.buf = append(s.buf, col...)
		s.buf = append(s.buf, r.level.padded()...)
		s.buf = append(s.buf, ansiReset...)
	} else {
		s.buf = append(s.buf, r.level.padded()...)
	}
	s.buf = append(s.buf, ' ')
	if color {
		s.buf = append(s.buf, ansiGray...)
	}
	s.buf = append(s.buf, '[')
	s.buf = appendSanitized(s.buf, r.category[:r.catLen], san)
	s.buf = append(s.buf, ']', ' ')
	s.buf = append(s.buf, r.file[:r.fileLen]...)
	s.buf = append(s.buf, ':')
	s.buf = strconv.AppendInt(s.buf, int64(r.line), 10)
	s.buf = append(s.buf, ':')
	if color {
		s.buf = append(s.buf, ansiReset...)
	}
	s.buf = append(s.buf, ' ')
	s.buf = appendSanitized(s.buf, r.message[:r.msgLen], san)
	s.buf = append(s.buf, '\n')
}

func appendSanitized(dst, src []byte, san *sanitizer.Sanitizer) []byte {
	if san == nil {
		return append(dst, src...)
	}
	return san.AppendSanitized(dst, src)
}
