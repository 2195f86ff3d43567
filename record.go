// FILE: lixenwraith/ringlog/record.go
package ringlog

import (
	"fmt"
	"time"
)

// setCategory copies s into the record, truncating at the field bound.
func (r *logRecord) setCategory(s string) {
	n := copy(r.category[:], s)
	r.catLen = uint8(n)
}

// setFile copies s into the record, truncating at the field bound.
func (r *logRecord) setFile(s string) {
	n := copy(r.file[:], s)
	r.fileLen = uint8(n)
}

// setMessage formats directly into the record's message field, on the
// caller's stack and outside any lock. When the rendered message
// overflows the bound, fmt spills into a temporary allocation and the
// bounded prefix is copied back.
func (r *logRecord) setMessage(format string, args ...any) {
	if len(args) == 0 {
		r.msgLen = uint16(copy(r.message[:], format))
		return
	}
	buf := fmt.Appendf(r.message[:0:messageBytes], format, args...)
	n := len(buf)
	if n > messageBytes {
		n = messageBytes
	}
	if n > 0 && &buf[0] != &r.message[0] {
		copy(r.message[:], buf[:n])
	}
	r.msgLen = uint16(n)
}

// emit builds a record and hands it to the active core. It never fails
// the caller: before Init and after Shutdown it is a no-op, and sink
// trouble is absorbed by the consumer.
func (l *Logger) emit(level Level, category, file string, line int, format string, args ...any) {
	c := l.core.Load()
	if c == nil {
		return
	}
	if level < c.minLevel {
		return
	}
	if c.limiter != nil && !c.limiter.Allow() {
		c.state.RateLimited.Add(1)
		return
	}

	var r logRecord
	r.when = time.Now()
	r.level = level
	r.line = int32(line)
	r.setCategory(category)
	r.setFile(file)
	r.setMessage(format, args...)

	if c.direct {
		c.writeDirect(&r)
		return
	}
	c.publish(&r)
}

// publish moves one record through the gate, applying the overflow
// policy when the ring is full.
func (c *core) publish(r *logRecord) {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		c.state.Dropped.Add(1)
		return
	}
	if c.ring.full() {
		if c.policy == overflowBlock {
			for c.ring.full() && c.running {
				c.notFull.Wait()
			}
			if !c.running {
				c.mu.Unlock()
				c.state.Dropped.Add(1)
				return
			}
		} else {
			c.mu.Unlock()
			c.state.Dropped.Add(1)
			return
		}
	}
	c.ring.put(r)
	c.notEmpty.Signal()
	c.mu.Unlock()
	c.state.Emitted.Add(1)
}
