// --- File: processor.go ---
package ringlog

// processRecords is the consumer loop. It owns the sinks: every render
// and write happens here, strictly outside the gate lock, so a slow disk
// never extends the producers' critical section.
//
// Exit condition: the ring is empty and running is false. Everything
// published before shutdown flipped running is therefore written before
// the goroutine returns.
func (c *core) processRecords() {
	defer func() {
		c.syncSinks()
		c.state.ProcessorExited.Store(true)
		close(c.done)
	}()

	var rec logRecord
	for {
		c.mu.Lock()
		for c.ring.empty() && c.running && len(c.flushReqs) == 0 {
			c.notEmpty.Wait()
		}

		// Flush requests are served at drain points only, so a
		// confirmation means every record emitted before the request
		// has reached the file.
		if c.ring.empty() && len(c.flushReqs) > 0 {
			reqs := c.flushReqs
			c.flushReqs = nil
			c.mu.Unlock()
			c.syncSinks()
			for _, req := range reqs {
				close(req)
			}
			continue
		}

		if c.ring.empty() {
			c.mu.Unlock()
			return
		}

		c.ring.take(&rec)
		drained := c.ring.empty()
		c.notFull.Signal()
		c.mu.Unlock()

		c.writeRecord(&rec)
		if drained {
			c.flushWriter()
		}
	}
}

// writeRecord renders r once per enabled sink and writes it out. The
// sinks are independent: a failing file write never blocks the console
// and vice versa.
func (c *core) writeRecord(r *logRecord) {
	if c.file != nil {
		c.scratch.reset()
		c.scratch.appendFileLine(r, c.san)
		c.writeFileLine(c.scratch.bytes())
	}
	if c.console != nil {
		c.scratch.reset()
		c.scratch.appendConsoleLine(r, c.color, c.san)
		c.writeConsoleLine(c.scratch.bytes())
	}
}
