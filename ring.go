// FILE: lixenwraith/ringlog/ring.go
package ringlog

// ringBuffer is a fixed-capacity queue of record values. Indices advance
// modulo the slot count. One slot stays unused so writeIdx == readIdx is
// unambiguously empty and (writeIdx+1) % slots == readIdx is full, which
// makes the usable capacity one less than the slot count.
//
// The buffer itself is not synchronized; every method assumes the caller
// holds the gate mutex.
type ringBuffer struct {
	slots    []logRecord
	writeIdx int
	readIdx  int
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{slots: make([]logRecord, capacity)}
}

func (b *ringBuffer) empty() bool {
	return b.writeIdx == b.readIdx
}

func (b *ringBuffer) full() bool {
	return (b.writeIdx+1)%len(b.slots) == b.readIdx
}

// length reports the number of buffered records.
func (b *ringBuffer) length() int {
	d := b.writeIdx - b.readIdx
	if d < 0 {
		d += len(b.slots)
	}
	return d
}

// put copies r into the write slot and advances the write index. The
// caller must have checked full().
func (b *ringBuffer) put(r *logRecord) {
	b.slots[b.writeIdx] = *r
	b.writeIdx = (b.writeIdx + 1) % len(b.slots)
}

// take copies the read slot into r and advances the read index. The
// caller must have checked empty().
func (b *ringBuffer) take(r *logRecord) {
	*r = b.slots[b.readIdx]
	b.readIdx = (b.readIdx + 1) % len(b.slots)
}
