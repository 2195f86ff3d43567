// FILE: lixenwraith/ringlog/type.go
package ringlog

import (
	"bufio"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/ringlog/sanitizer"
)

// overflowPolicy selects what happens to an incoming record when the
// ring is full.
type overflowPolicy int8

const (
	// overflowDrop discards the incoming record and counts it. Buffered
	// records are never displaced.
	overflowDrop overflowPolicy = iota
	// overflowBlock makes the producer wait until the consumer frees a
	// slot. Producers stall if the consumer stalls.
	overflowBlock
)

// logRecord is the fixed-shape value copied through the ring. Lengths
// are tracked per field so an over-long value is truncated at copy time
// and can never spill into a neighboring field.
type logRecord struct {
	when  time.Time
	level Level
	line  int32

	catLen  uint8
	fileLen uint8
	msgLen  uint16

	category [categoryBytes]byte
	file     [fileBytes]byte
	message  [messageBytes]byte
}

// core bundles everything one running logger instance owns. Logger holds
// it behind an atomic pointer; nil means not initialized or shut down.
type core struct {
	cfg      *Config
	state    *State
	minLevel Level
	policy   overflowPolicy
	direct   bool

	limiter *rate.Limiter        // nil when rate limiting is off
	san     *sanitizer.Sanitizer // nil when sanitization is off

	// Gate. mu guards the ring indices, the running flag and the flush
	// queue. notEmpty wakes the consumer, notFull wakes blocked producers.
	mu        sync.Mutex
	notEmpty  *sync.Cond
	notFull   *sync.Cond
	ring      *ringBuffer
	running   bool
	flushReqs []chan struct{}

	// done is closed when the worker goroutine has exited.
	done chan struct{}

	// Sinks. Between Init and the post-join close only the worker touches
	// these; in direct mode dmu serializes access instead.
	dmu      sync.Locker
	file     *os.File
	writer   *bufio.Writer
	fileName string
	maxBytes int64
	console  io.Writer
	color    bool
	scratch  lineBuffer
}
