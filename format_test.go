// FILE: lixenwraith/ringlog/format_test.go
package ringlog

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ringlog/sanitizer"
)

func testRecord() *logRecord {
	var r logRecord
	r.when = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	r.level = LevelInfo
	r.line = 42
	r.setCategory("HTTP")
	r.setFile("srv.c")
	r.setMessage("req from 1.2.3.4")
	return &r
}

func TestFileLineFormat(t *testing.T) {
	var buf lineBuffer
	buf.appendFileLine(testRecord(), nil)

	assert.Equal(t, "2025-03-14 09:26:53 INFO  [HTTP] srv.c:42: req from 1.2.3.4\n", string(buf.bytes()))
}

func TestFileLinePattern(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} [A-Z]+\s+\[[^]]*\] [^:]*:\d+: .*\n$`)

	var buf lineBuffer
	for l := LevelTrace; l <= LevelFatal; l++ {
		r := testRecord()
		r.level = l
		buf.reset()
		buf.appendFileLine(r, nil)
		assert.Regexp(t, pattern, string(buf.bytes()), "level %s", l)
	}
}

func TestConsoleLineShortTimestamp(t *testing.T) {
	var buf lineBuffer
	buf.appendConsoleLine(testRecord(), false, nil)

	assert.Equal(t, "09:26:53 INFO  [HTTP] srv.c:42: req from 1.2.3.4\n", string(buf.bytes()))
}

func TestConsoleLineColor(t *testing.T) {
	var buf lineBuffer
	buf.appendConsoleLine(testRecord(), true, nil)
	out := string(buf.bytes())

	// Level colored green, locator segment gray, both reset
	assert.Contains(t, out, "\x1b[32mINFO \x1b[0m")
	assert.Contains(t, out, "\x1b[90m[HTTP] srv.c:42:\x1b[0m")
	assert.Contains(t, out, "req from 1.2.3.4")
}

func TestConsoleColorPerLevel(t *testing.T) {
	wantColors := map[Level]string{
		LevelTrace: "\x1b[94m",
		LevelDebug: "\x1b[36m",
		LevelInfo:  "\x1b[32m",
		LevelWarn:  "\x1b[33m",
		LevelError: "\x1b[31m",
		LevelFatal: "\x1b[35m",
	}

	var buf lineBuffer
	for l, want := range wantColors {
		r := testRecord()
		r.level = l
		buf.reset()
		buf.appendConsoleLine(r, true, nil)
		assert.Contains(t, string(buf.bytes()), want, "level %s", l)
	}
}

func TestUnknownLevelRendersUncolored(t *testing.T) {
	r := testRecord()
	r.level = Level(99)

	var buf lineBuffer
	buf.appendFileLine(r, nil)
	assert.Contains(t, string(buf.bytes()), " UNKNOWN [HTTP] ")

	buf.reset()
	buf.appendConsoleLine(r, true, nil)
	out := string(buf.bytes())
	assert.Contains(t, out, "UNKNOWN")
	assert.NotContains(t, out, "\x1b[32m")
}

func TestSanitizedRender(t *testing.T) {
	r := testRecord()
	r.setMessage("first\nsecond")
	san := sanitizer.New().Policy(sanitizer.PolicyLine)

	var buf lineBuffer
	buf.appendFileLine(r, san)
	out := string(buf.bytes())

	// One line on disk, the embedded newline escaped
	require.Equal(t, 1, len(regexp.MustCompile(`\n`).FindAllString(out, -1)))
	assert.Contains(t, out, `first\nsecond`)
}

func TestLineBufferReuse(t *testing.T) {
	var buf lineBuffer
	buf.appendFileLine(testRecord(), nil)
	first := string(buf.bytes())

	buf.reset()
	buf.appendFileLine(testRecord(), nil)
	assert.Equal(t, first, string(buf.bytes()))
}
