// FILE: state.go
package ringlog

import (
	"sync/atomic"
)

// State tracks logger lifecycle and counters. Counters are cumulative
// for the lifetime of the Logger handle and survive re-initialization.
type State struct {
	IsInitialized   atomic.Bool
	ProcessorExited atomic.Bool

	// Producer side
	Emitted     atomic.Uint64 // Records accepted into the ring (or written directly)
	Dropped     atomic.Uint64 // Records discarded by overflow policy or after shutdown
	RateLimited atomic.Uint64 // Records discarded by the rate limiter

	// Consumer side
	Written       atomic.Uint64 // Lines written to the file sink
	WriteErrors   atomic.Uint64 // File sink write failures
	ConsoleErrors atomic.Uint64 // Console sink write failures
	Rotations     atomic.Uint64 // Completed file rotations

	// Active file
	CurrentSize atomic.Int64
	CurrentFile atomic.Value // string
}

// Stats is a point-in-time snapshot of the logger's counters.
type Stats struct {
	Initialized bool
	Emitted     uint64
	Dropped     uint64
	RateLimited uint64
	Written     uint64
	WriteErrors uint64
	ConsoleErrs uint64
	Rotations   uint64
	Pending     int // Records buffered and not yet written
	CurrentFile string
	CurrentSize int64
}

// Stats returns a snapshot of the logger counters. Pending is read under
// the gate and is exact at the time of the call; the other counters are
// independently atomic.
func (l *Logger) Stats() Stats {
	s := Stats{
		Initialized: l.state.IsInitialized.Load(),
		Emitted:     l.state.Emitted.Load(),
		Dropped:     l.state.Dropped.Load(),
		RateLimited: l.state.RateLimited.Load(),
		Written:     l.state.Written.Load(),
		WriteErrors: l.state.WriteErrors.Load(),
		ConsoleErrs: l.state.ConsoleErrors.Load(),
		Rotations:   l.state.Rotations.Load(),
		CurrentSize: l.state.CurrentSize.Load(),
	}
	if name, ok := l.state.CurrentFile.Load().(string); ok {
		s.CurrentFile = name
	}
	if c := l.core.Load(); c != nil && !c.direct {
		c.mu.Lock()
		s.Pending = c.ring.length()
		c.mu.Unlock()
	}
	return s
}
