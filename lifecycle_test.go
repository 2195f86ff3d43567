// FILE: lixenwraith/ringlog/lifecycle_test.go
package ringlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitShutdownLifecycle(t *testing.T) {
	logger, _ := createTestLogger(t)

	assert.True(t, logger.state.IsInitialized.Load())
	assert.False(t, logger.state.ProcessorExited.Load())

	require.NoError(t, logger.Shutdown())

	assert.False(t, logger.state.IsInitialized.Load())
	assert.True(t, logger.state.ProcessorExited.Load())
	assert.Nil(t, logger.core.Load())
}

func TestShutdownIdempotent(t *testing.T) {
	logger, _ := createTestLogger(t)

	require.NoError(t, logger.Shutdown())
	require.NoError(t, logger.Shutdown())
}

func TestShutdownUninitialized(t *testing.T) {
	logger := NewLogger()
	assert.NoError(t, logger.Shutdown())
}

func TestShutdownDrainsBacklog(t *testing.T) {
	// A tiny ring with the block policy forces producers through the
	// full wait path while guaranteeing nothing is lost.
	logger, tmpDir := createTestLogger(t, "ring_capacity=8", "overflow_policy=block")

	const total = 1000
	for i := 0; i < total; i++ {
		logger.Info("DRAIN", "record %04d", i)
	}
	require.NoError(t, logger.Shutdown())

	content := readLogOutput(t, tmpDir)
	lines := strings.Count(content, "\n")
	assert.Equal(t, total, lines)

	stats := logger.Stats()
	assert.Equal(t, uint64(total), stats.Emitted)
	assert.Equal(t, uint64(total), stats.Written)
	assert.Zero(t, stats.Dropped)
}

func TestFlushNotInitialized(t *testing.T) {
	logger := NewLogger()
	err := logger.Flush(time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestFlushConfirmsDurability(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.Info("APP", "must be on disk")
	require.NoError(t, logger.Flush(time.Second))

	// Readable without shutting down
	assert.Contains(t, readLogOutput(t, tmpDir), "must be on disk")
}

func TestFlushAfterShutdown(t *testing.T) {
	logger, _ := createTestLogger(t)
	require.NoError(t, logger.Shutdown())

	err := logger.Flush(time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "app.log")

	configPath := filepath.Join(tmpDir, "log.toml")
	toml := fmt.Sprintf(`
[log]
  file_path_base = %q
  ring_capacity = 64
  overflow_policy = "block"
  min_level = "debug"
`, base)
	require.NoError(t, os.WriteFile(configPath, []byte(toml), 0644))

	logger := NewLogger()
	require.NoError(t, logger.InitFromFile(configPath))
	t.Cleanup(func() { _ = logger.Shutdown() })

	cfg := logger.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, base, cfg.FilePathBase)
	assert.Equal(t, int64(64), cfg.RingCapacity)
	assert.Equal(t, "block", cfg.OverflowPolicy)

	logger.Debug("CFG", "configured from file")
	require.NoError(t, logger.Shutdown())

	assert.Contains(t, readLogOutput(t, tmpDir), "configured from file")
}

func TestInitFromFileMissingPath(t *testing.T) {
	// A missing config file falls back to defaults, which lack the
	// required file path base.
	logger := NewLogger()
	err := logger.InitFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestShutdownReleasesBlockedProducers(t *testing.T) {
	logger, _ := createTestLogger(t, "ring_capacity=2", "overflow_policy=block")

	// Saturate the single usable slot, then park producers on notFull
	blocked := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(i int) {
			logger.Info("BLOCK", "record %d", i)
			blocked <- struct{}{}
		}(i)
	}

	require.NoError(t, logger.Shutdown())

	// Every producer must return, published or dropped
	for i := 0; i < 4; i++ {
		select {
		case <-blocked:
		case <-time.After(2 * time.Second):
			t.Fatal("producer still blocked after shutdown")
		}
	}
}
