// FILE: lixenwraith/ringlog/integration_test.go
package ringlog

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingleEmitScenario runs the smallest end-to-end path: one emit
// with an explicit locator produces exactly one file containing exactly
// one well-formed line.
func TestSingleEmitScenario(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "app.log")

	logger := NewLogger()
	require.NoError(t, logger.InitWithDefaults(
		"file_path_base="+base,
		"file_max_bytes=0",
		"console_enabled=false",
	))

	logger.Emit(LevelInfo, "HTTP", "srv.c", 42, "req from 1.2.3.4")
	require.NoError(t, logger.Shutdown())

	files, err := filepath.Glob(base + ".*")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Regexp(t, regexp.QuoteMeta(base)+`\.\d{8}_\d{6}$`, files[0])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Regexp(t,
		`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} INFO  \[HTTP\] srv\.c:42: req from 1\.2\.3\.4\n$`,
		string(data))
}

// TestConcurrentProducersBlockPolicy is the full-load scenario: many
// producers, a ring far smaller than the record count and the block
// policy. Every record must reach the file and per-producer order must
// hold.
func TestConcurrentProducersBlockPolicy(t *testing.T) {
	workers := 8
	perWorker := 10000
	if testing.Short() {
		perWorker = 1000
	}

	logger, tmpDir := createTestLogger(t,
		"ring_capacity=4096",
		"overflow_policy=block",
	)

	var wg sync.WaitGroup
	wg.Add(workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			defer wg.Done()
			for seq := 0; seq < perWorker; seq++ {
				logger.Info("LOAD", "worker=%d seq=%d", id, seq)
			}
		}(id)
	}
	wg.Wait()
	require.NoError(t, logger.Shutdown())

	stats := logger.Stats()
	assert.Equal(t, uint64(workers*perWorker), stats.Emitted)
	assert.Zero(t, stats.Dropped)

	content := readLogOutput(t, tmpDir)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, workers*perWorker)

	// No corrupted or interleaved lines, and per-worker sequences ascend
	linePattern := regexp.MustCompile(`worker=(\d+) seq=(\d+)$`)
	nextSeq := make([]int, workers)
	for i, line := range lines {
		m := linePattern.FindStringSubmatch(line)
		require.NotNil(t, m, "corrupted line %d: %q", i, line)
		id, _ := strconv.Atoi(m[1])
		seq, _ := strconv.Atoi(m[2])
		require.Equal(t, nextSeq[id], seq, "worker %d out of order at line %d", id, i)
		nextSeq[id]++
	}
	for id := 0; id < workers; id++ {
		assert.Equal(t, perWorker, nextSeq[id])
	}
}

// TestOversizeFieldsEndToEnd pushes over-long category, locator and
// message through the whole pipeline and checks the written line is
// still well-formed.
func TestOversizeFieldsEndToEnd(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	longCat := strings.Repeat("C", 100)
	longFile := strings.Repeat("F", 100) + ".go"
	longMsg := strings.Repeat("M", 3000)
	logger.Emit(LevelWarn, longCat, longFile, 7, "%s", longMsg)
	require.NoError(t, logger.Flush(time.Second))

	content := readLogOutput(t, tmpDir)
	m := regexp.MustCompile(`WARN  \[(C+)\] (F+):7: (M+)\n`).FindStringSubmatch(content)
	require.NotNil(t, m, "line corrupted by truncation: %q", content)
	assert.Len(t, m[1], categoryBytes)
	assert.Len(t, m[2], fileBytes)
	assert.Len(t, m[3], messageBytes)
}

// TestPackageFacade exercises the free-function API backed by the
// default instance.
func TestPackageFacade(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "app.log")

	require.NoError(t, InitWithDefaults("file_path_base="+base))
	t.Cleanup(func() { _ = Shutdown() })

	Info("FACADE", "via package function %d", 1)
	Warn("FACADE", "via package function %d", 2)
	require.NoError(t, Flush(time.Second))

	stats := GetStats()
	assert.True(t, stats.Initialized)
	assert.GreaterOrEqual(t, stats.Emitted, uint64(2))

	require.NoError(t, Shutdown())

	files, err := filepath.Glob(base + ".*")
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "INFO  [FACADE] ")
	assert.Contains(t, content, "via package function 1")
	assert.Contains(t, content, "WARN  [FACADE] ")
	assert.Contains(t, content, "integration_test.go:")

	assert.Same(t, defaultLogger, Default())
}

// TestSynchronousConcurrent drives the direct-write variant from many
// goroutines under the mutex strategy; lines must not interleave.
func TestSynchronousConcurrent(t *testing.T) {
	logger, tmpDir := createTestLogger(t, "synchronous=true", "lock_strategy=mutex")

	const workers, perWorker = 4, 250
	var wg sync.WaitGroup
	wg.Add(workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			defer wg.Done()
			for seq := 0; seq < perWorker; seq++ {
				logger.Info("SYNC", "worker=%d seq=%d", id, seq)
			}
		}(id)
	}
	wg.Wait()
	require.NoError(t, logger.Shutdown())

	content := readLogOutput(t, tmpDir)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, workers*perWorker)

	linePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} INFO  \[SYNC\] .*worker=\d+ seq=\d+$`)
	for i, line := range lines {
		require.Regexp(t, linePattern, line, "line %d corrupted: %q", i, line)
	}
}

// TestRotationUnderLoad checks the rotation trigger while records keep
// arriving: the file set grows, nothing is lost, and every file begins
// with a complete line.
func TestRotationUnderLoad(t *testing.T) {
	logger, tmpDir := createTestLogger(t,
		"file_max_bytes=1024",
		"overflow_policy=block",
	)

	const total = 300
	for i := 0; i < total; i++ {
		logger.Info("ROT", "record %03d %s", i, strings.Repeat("p", 40))
	}
	require.NoError(t, logger.Shutdown())

	files := logFiles(t, tmpDir)
	require.Greater(t, len(files), 2)

	counted := 0
	for _, name := range files {
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		require.Regexp(t, `^\d{4}-\d{2}-\d{2} `, string(data))
		counted += strings.Count(string(data), "\n")
	}
	assert.Equal(t, total, counted)
}
