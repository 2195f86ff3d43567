// FILE: lixenwraith/ringlog/direct.go
package ringlog

// writeDirect renders and writes r on the caller's goroutine, serialized
// by the lock strategy chosen at construction. Strategy "none" skips
// locking entirely and leaves serialization to the caller.
//
// Unlike the asynchronous path the buffered writer is flushed after
// every record, so lines are visible as soon as the call returns.
func (c *core) writeDirect(r *logRecord) {
	c.dmu.Lock()
	c.writeRecord(r)
	c.flushWriter()
	c.dmu.Unlock()
	c.state.Emitted.Add(1)
}
