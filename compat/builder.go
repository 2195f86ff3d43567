// FILE: lixenwraith/ringlog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/ringlog"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing *ringlog.Logger instance
// or initialize a new one from a *ringlog.Config.
type Builder struct {
	logger *ringlog.Logger
	logCfg *ringlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger
// instance. If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *ringlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("ringlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance. Used
// only if an existing logger is NOT provided via WithLogger. One of the
// two must be supplied; ringlog has no usable default because a file
// path base is required.
func (b *Builder) WithConfig(cfg *ringlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, initializing one if necessary
func (b *Builder) getLogger() (*ringlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	if b.logCfg == nil {
		return nil, fmt.Errorf("ringlog/compat: a logger or a config is required")
	}

	l := ringlog.NewLogger()
	if err := l.Init(b.logCfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter.
// It can be used for servers that require a standard gnet logger.
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *ringlog.Logger instance.
// If a logger has not been provided or created yet, it will be initialized.
func (b *Builder) GetLogger() (*ringlog.Logger, error) {
	return b.getLogger()
}

// --- Example Usage ---
//
// The following demonstrates how to integrate ringlog with gnet and
// fasthttp using a single, shared logger instance
//
//	// 1. Create and configure application's main logger
//	appLogger := ringlog.NewLogger()
//	logCfg := ringlog.DefaultConfig()
//	logCfg.FilePathBase = "/var/log/app/app.log"
//	logCfg.MinLevel = "debug"
//	if err := appLogger.Init(logCfg); err != nil {
//		panic(fmt.Sprintf("failed to configure logger: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing logger
//	builder := compat.NewBuilder().WithLogger(appLogger)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
