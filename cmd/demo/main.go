// FILE: cmd/demo/main.go
// Demo harness: exercises the full surface, TOML config loading,
// categorized emits from several goroutines, console colors, rotation,
// value dumps, flush and the stats snapshot.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/ringlog"
)

const configFile = "demo_config.toml"

var tomlContent = `
# demo_config.toml
[log]
  file_path_base = "./logs/demo.log"
  file_max_bytes = 8192     # tiny threshold to show rotation
  ring_capacity = 256
  overflow_policy = "drop"
  min_level = "trace"
  console_enabled = true
  console_color = true
  sanitize_policy = "line"
`

func main() {
	fmt.Println("--- Ring Logger Demo ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}

	if err := ringlog.InitFromFile(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger init failed: %v\n", err)
		os.Exit(1)
	}

	// One line per severity, showing the console color palette
	ringlog.Trace("DEMO", "trace message")
	ringlog.Debug("DEMO", "debug message")
	ringlog.Info("DEMO", "info message")
	ringlog.Warn("DEMO", "warn message")
	ringlog.Error("DEMO", "error message")
	ringlog.Fatal("DEMO", "fatal message (process keeps running)")

	// Categorized traffic from a few goroutines
	categories := []string{"HTTP", "DB", "CACHE", "AUTH"}
	var wg sync.WaitGroup
	for _, cat := range categories {
		wg.Add(1)
		go func(cat string) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				ringlog.Info(cat, "request %d handled in %dms", i, i%7)
			}
		}(cat)
	}
	wg.Wait()

	// Deep value dump at debug severity
	type connInfo struct {
		Remote string
		Port   int
		TLS    bool
	}
	ringlog.Dump("HTTP", connInfo{Remote: "10.0.0.7", Port: 443, TLS: true})

	// Message with an embedded newline, neutralized by the line policy
	ringlog.Warn("AUTH", "suspicious input: %q", "user\nadmin")

	if err := ringlog.Flush(time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Flush failed: %v\n", err)
	}

	stats := ringlog.GetStats()
	fmt.Printf("\nStats: emitted=%d dropped=%d written=%d rotations=%d pending=%d\n",
		stats.Emitted, stats.Dropped, stats.Written, stats.Rotations, stats.Pending)
	fmt.Printf("Active file: %s (%d bytes)\n", stats.CurrentFile, stats.CurrentSize)

	if err := ringlog.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done. Inspect ./logs for the rotated files.")
}
