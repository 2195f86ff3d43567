// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/ringlog"
	"github.com/lixenwraith/ringlog/compat"
)

func main() {
	// Create and configure logger
	logger := ringlog.NewLogger()
	err := logger.InitWithDefaults(
		"file_path_base=/var/log/fasthttp/server.log",
		"ring_capacity=2048",
		"console_enabled=true",
		"console_color=true",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(ringlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

// customLevelDetector treats connection churn as noise and everything
// suspicious as an error
func customLevelDetector(msg string) (ringlog.Level, bool) {
	msgLower := strings.ToLower(msg)
	if strings.Contains(msgLower, "connection closed") ||
		strings.Contains(msgLower, "broken pipe") {
		return ringlog.LevelDebug, true
	}
	return compat.DetectLevel(msg)
}
