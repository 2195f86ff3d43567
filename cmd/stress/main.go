// FILE: cmd/stress/main.go
// Stress harness: 8 producer goroutines each emit 10,000 records into a
// 4096-slot ring under the block overflow policy. After shutdown the
// produced files must contain exactly workers*perWorker lines.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/lixenwraith/ringlog"
)

const (
	numWorkers    = 8
	logsPerWorker = 10000
	configFile    = "stress_config.toml"
	logsDir       = "./logs"
)

// Stress test TOML configuration
var tomlContent = `
# stress_config.toml
[log]
  file_path_base = "./logs/stress.log"
  file_max_bytes = 0        # rotation off, line counting stays trivial
  ring_capacity = 4096
  overflow_policy = "block" # no record may be lost
  console_enabled = false
  min_level = "trace"
`

var logger = ringlog.NewLogger()

// worker hammers the logger with sequenced records so per-producer
// ordering can be verified afterwards
func worker(id int, wg *sync.WaitGroup) {
	defer wg.Done()
	for seq := 0; seq < logsPerWorker; seq++ {
		logger.Info("STRESS", "worker=%d seq=%d", id, seq)
	}
}

func main() {
	fmt.Println("--- Ring Logger Stress Test ---")

	// --- Setup Config ---
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created config file: %s\n", configFile)
	_ = os.RemoveAll(logsDir) // Clean previous run's logs before starting

	if err := logger.InitFromFile(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
		os.Exit(1)
	}

	// Shut down cleanly on interrupt so the drain guarantee still holds
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived %v, shutting down\n", sig)
		_ = logger.Shutdown()
		os.Exit(1)
	}()

	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for id := 0; id < numWorkers; id++ {
		go worker(id, &wg)
	}
	wg.Wait()

	emitDuration := time.Since(start)
	fmt.Printf("All %d workers done emitting in %v\n", numWorkers, emitDuration)

	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown failed: %v\n", err)
		os.Exit(1)
	}
	total := time.Since(start)

	stats := logger.Stats()
	fmt.Printf("Stats: emitted=%d dropped=%d written=%d write_errors=%d rotations=%d\n",
		stats.Emitted, stats.Dropped, stats.Written, stats.WriteErrors, stats.Rotations)
	fmt.Printf("Total time including drain: %v (%.0f records/s)\n",
		total, float64(stats.Written)/total.Seconds())

	// --- Verify line count ---
	expected := numWorkers * logsPerWorker
	counted, err := countLines(filepath.Join(logsDir, "stress.log.*"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}
	if counted != expected {
		fmt.Fprintf(os.Stderr, "FAIL: expected %d lines, found %d\n", expected, counted)
		os.Exit(1)
	}
	fmt.Printf("OK: %d lines written, none lost\n", counted)
}

// countLines sums the lines of all files matching the glob pattern
func countLines(pattern string) (int, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("no log files match %s", pattern)
	}
	sort.Strings(matches)

	total := 0
	for _, name := range matches {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			total++
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
