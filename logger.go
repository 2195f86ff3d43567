// FILE: lixenwraith/ringlog/logger.go
package ringlog

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/ringlog/sanitizer"
)

// Logger is an independent logging instance. Multiple loggers can
// coexist; each owns its ring, worker and sinks. The zero value is not
// usable, create instances with NewLogger.
type Logger struct {
	// core is the running instance state; nil before Init and after
	// Shutdown. Swapped atomically so emit never takes the init lock.
	core   atomic.Pointer[core]
	state  State
	initMu sync.Mutex
}

// NewLogger creates a Logger in the uninitialized state. Emit-side
// methods are silent no-ops until Init succeeds.
func NewLogger() *Logger {
	l := &Logger{}
	l.state.ProcessorExited.Store(true)
	return l
}

// Init validates cfg and brings the logger up: it creates the log
// directory, opens the first timestamped file, allocates the ring and
// starts the worker goroutine. In synchronous mode the ring and worker
// are skipped and writes happen on the emitting goroutine.
//
// Init on an initialized logger fails with ErrAlreadyInitialized;
// re-initialization after Shutdown is allowed. The passed config is
// cloned, later mutation by the caller has no effect.
func (l *Logger) Init(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("%w: configuration cannot be nil", ErrInvalidConfig)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.core.Load() != nil {
		return fmtErrorf("%w: call Shutdown first", ErrAlreadyInitialized)
	}

	cfg = cfg.Clone()
	if err := cfg.validate(); err != nil {
		return err
	}

	c, err := newCore(cfg, &l.state)
	if err != nil {
		return err
	}

	if !c.direct {
		l.state.ProcessorExited.Store(false)
		go c.processRecords()
	}

	l.state.IsInitialized.Store(true)
	l.core.Store(c)
	return nil
}

// InitWithDefaults initializes the logger from the built-in defaults
// plus "key=value" override strings.
//
// Example:
//
//	err := logger.InitWithDefaults(
//	    "file_path_base=/var/log/app/app.log",
//	    "console_enabled=true",
//	)
func (l *Logger) InitWithDefaults(overrides ...string) error {
	cfg, err := NewConfigFromStrings(overrides...)
	if err != nil {
		return err
	}
	return l.Init(cfg)
}

// InitFromFile initializes the logger from a TOML configuration file,
// using defaults for any value the file does not set.
func (l *Logger) InitFromFile(path string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}
	return l.Init(cfg)
}

// GetConfig returns a copy of the active configuration, or nil when the
// logger is not initialized.
func (l *Logger) GetConfig() *Config {
	c := l.core.Load()
	if c == nil {
		return nil
	}
	return c.cfg.Clone()
}

// newCore builds the running instance for cfg. The config is already
// validated.
func newCore(cfg *Config, state *State) (*core, error) {
	c := &core{
		cfg:      cfg,
		state:    state,
		maxBytes: cfg.FileMaxBytes,
		direct:   cfg.Synchronous,
	}

	// validate() guarantees the level parses
	c.minLevel, _ = ParseLevel(cfg.MinLevel)

	if cfg.OverflowPolicy == "block" {
		c.policy = overflowBlock
	} else {
		c.policy = overflowDrop
	}

	if cfg.MaxEmitPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.MaxEmitPerSec), int(cfg.MaxEmitPerSec))
	}

	if cfg.SanitizePolicy == "line" {
		c.san = sanitizer.New().Policy(sanitizer.PolicyLine)
	}

	if cfg.ConsoleEnabled {
		if cfg.ConsoleTarget == "stdout" {
			c.console = os.Stdout
		} else {
			c.console = os.Stderr
		}
		c.color = cfg.ConsoleColor
	}

	if err := c.openSink(time.Now()); err != nil {
		return nil, err
	}

	if c.direct {
		if cfg.LockStrategy == "none" {
			c.dmu = nopLocker{}
		} else {
			c.dmu = &sync.Mutex{}
		}
		return c, nil
	}

	c.ring = newRingBuffer(int(cfg.RingCapacity))
	c.notEmpty = sync.NewCond(&c.mu)
	c.notFull = sync.NewCond(&c.mu)
	c.done = make(chan struct{})
	c.running = true
	return c, nil
}

// Shutdown stops the logger and drains the ring: every record accepted
// into the buffer before Shutdown began is written before the worker
// exits. After the worker is joined the file is flushed, synced and
// closed. Calling Shutdown on an uninitialized logger is a no-op.
//
// The optional timeout bounds the wait for the worker; the default is
// generous because a Block-policy backlog may legitimately take a while
// to reach the disk. On timeout the logger is de-initialized and an
// error is returned; the worker keeps draining in the background and
// flushes the file writer when it finishes, but the file handle is
// never closed.
//
// The caller must quiesce its own producers first: emit calls racing
// with Shutdown are counted as dropped, not synchronized against.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	c := l.core.Load()
	if c == nil {
		return nil
	}

	if c.direct {
		c.dmu.Lock()
		c.syncSinks()
		err := c.closeSink()
		c.dmu.Unlock()
		l.core.Store(nil)
		l.state.IsInitialized.Store(false)
		return err
	}

	effective := defaultShutdownWait
	if len(timeout) > 0 {
		effective = timeout[0]
		if effective < minWaitTime {
			effective = minWaitTime
		}
	}

	// Flip the running flag under the gate and wake everyone: the worker
	// switches to drain-and-exit, blocked producers give up and count
	// their record as dropped.
	c.mu.Lock()
	c.running = false
	c.notEmpty.Broadcast()
	c.notFull.Broadcast()
	c.mu.Unlock()

	l.core.Store(nil)
	l.state.IsInitialized.Store(false)

	select {
	case <-c.done:
	case <-time.After(effective):
		return fmtErrorf("worker did not drain within %v", effective)
	}

	return c.closeSink()
}

// Flush forces buffered output to stable storage and waits for
// confirmation. In asynchronous mode the request is served by the
// worker at a drain point, so confirmation means every record emitted
// before the call has reached the file.
func (l *Logger) Flush(timeout time.Duration) error {
	c := l.core.Load()
	if c == nil {
		return fmtErrorf("%w", ErrNotInitialized)
	}
	if timeout < minWaitTime {
		timeout = minWaitTime
	}

	if c.direct {
		c.dmu.Lock()
		c.syncSinks()
		c.dmu.Unlock()
		return nil
	}

	req := make(chan struct{})
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return fmtErrorf("%w", ErrNotInitialized)
	}
	c.flushReqs = append(c.flushReqs, req)
	c.notEmpty.Signal()
	c.mu.Unlock()

	select {
	case <-req:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}
