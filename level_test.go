// FILE: lixenwraith/ringlog/level_test.go
package ringlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())

	// Out-of-range ordinals map to the sentinel, never fail
	assert.Equal(t, "UNKNOWN", Level(-1).String())
	assert.Equal(t, "UNKNOWN", Level(6).String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestLevelPadded(t *testing.T) {
	for l := LevelTrace; l <= LevelFatal; l++ {
		assert.Len(t, l.padded(), 5, "level %s", l)
	}
	assert.Equal(t, "INFO ", LevelInfo.padded())
	assert.Equal(t, "UNKNOWN", Level(42).padded())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"  INFO  ", LevelInfo, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestLevelValid(t *testing.T) {
	assert.True(t, LevelTrace.valid())
	assert.True(t, LevelFatal.valid())
	assert.False(t, Level(-1).valid())
	assert.False(t, Level(6).valid())
}
