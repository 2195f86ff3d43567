// FILE: lixenwraith/ringlog/builder.go
package ringlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates and initializes a new Logger with the built
// configuration. Validation happens inside Init.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.Init(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Config returns the accumulated configuration without building a
// logger, along with any deferred error.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// FilePathBase sets the base path; each opened file gets a timestamp
// suffix appended to it.
func (b *Builder) FilePathBase(path string) *Builder {
	b.cfg.FilePathBase = path
	return b
}

// FileMaxBytes sets the rotation threshold in bytes. 0 disables rotation.
func (b *Builder) FileMaxBytes(size int64) *Builder {
	b.cfg.FileMaxBytes = size
	return b
}

// FileMaxMB sets the rotation threshold in megabytes. Convenience.
func (b *Builder) FileMaxMB(size int64) *Builder {
	b.cfg.FileMaxBytes = size * 1024 * 1024
	return b
}

// RingCapacity sets the ring slot count. Usable capacity is one less.
func (b *Builder) RingCapacity(capacity int64) *Builder {
	b.cfg.RingCapacity = capacity
	return b
}

// OverflowBlock makes producers wait for a free slot when the ring is full.
func (b *Builder) OverflowBlock() *Builder {
	b.cfg.OverflowPolicy = "block"
	return b
}

// OverflowDrop makes producers discard the incoming record when the
// ring is full. The drop is counted in Stats.
func (b *Builder) OverflowDrop() *Builder {
	b.cfg.OverflowPolicy = "drop"
	return b
}

// MinLevel sets the severity threshold.
func (b *Builder) MinLevel(level Level) *Builder {
	if b.err != nil {
		return b
	}
	if !level.valid() {
		b.err = fmtErrorf("invalid min level ordinal: %d", level)
		return b
	}
	b.cfg.MinLevel = level.String()
	return b
}

// MinLevelString sets the severity threshold from a name.
func (b *Builder) MinLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.MinLevel = level
	return b
}

// Console enables mirroring records to the console sink.
func (b *Builder) Console(enable bool) *Builder {
	b.cfg.ConsoleEnabled = enable
	return b
}

// ConsoleColor enables ANSI coloring of console lines.
func (b *Builder) ConsoleColor(enable bool) *Builder {
	b.cfg.ConsoleColor = enable
	return b
}

// ConsoleTarget selects the console stream, "stderr" or "stdout".
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Synchronous selects the direct-write variant: no ring, no worker,
// writes happen on the emitting goroutine.
func (b *Builder) Synchronous(enable bool) *Builder {
	b.cfg.Synchronous = enable
	return b
}

// LockStrategy selects serialization for the synchronous variant,
// "mutex" or "none".
func (b *Builder) LockStrategy(strategy string) *Builder {
	b.cfg.LockStrategy = strategy
	return b
}

// MaxEmitPerSec sets the producer-side rate limit. 0 disables.
func (b *Builder) MaxEmitPerSec(limit int64) *Builder {
	b.cfg.MaxEmitPerSec = limit
	return b
}

// SanitizePolicy selects output sanitization, "none" or "line".
func (b *Builder) SanitizePolicy(policy string) *Builder {
	b.cfg.SanitizePolicy = policy
	return b
}

// InternalErrorsToStderr reports sink-side problems on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := ringlog.NewBuilder().
//
//	FilePathBase("/var/log/app/app.log").
//	FileMaxMB(10).
//	RingCapacity(4096).
//	OverflowBlock().
//	Console(true).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("APP", "logger initialized")
//
// }
