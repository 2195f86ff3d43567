// FILE: lixenwraith/ringlog/ring_test.go
package ringlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingEmptyAndFull(t *testing.T) {
	b := newRingBuffer(4)

	assert.True(t, b.empty())
	assert.False(t, b.full())
	assert.Zero(t, b.length())

	// One slot is sacrificed: capacity 4 holds 3 records
	for i := 0; i < 3; i++ {
		b.put(makeRecord(fmt.Sprintf("r%d", i)))
	}
	assert.True(t, b.full())
	assert.False(t, b.empty())
	assert.Equal(t, 3, b.length())
}

func TestRingFIFO(t *testing.T) {
	b := newRingBuffer(4)
	b.put(makeRecord("first"))
	b.put(makeRecord("second"))

	var r logRecord
	b.take(&r)
	assert.Equal(t, "first", string(r.message[:r.msgLen]))
	b.take(&r)
	assert.Equal(t, "second", string(r.message[:r.msgLen]))
	assert.True(t, b.empty())
}

func TestRingWraparound(t *testing.T) {
	b := newRingBuffer(4)
	var r logRecord
	seq := 0

	// Cycle enough records through to wrap the indices several times
	for round := 0; round < 10; round++ {
		b.put(makeRecord(fmt.Sprintf("r%d", round*2)))
		b.put(makeRecord(fmt.Sprintf("r%d", round*2+1)))
		for !b.empty() {
			b.take(&r)
			assert.Equal(t, fmt.Sprintf("r%d", seq), string(r.message[:r.msgLen]))
			seq++
		}
	}
	assert.Equal(t, 20, seq)
}

func TestRingIndicesStayInRange(t *testing.T) {
	b := newRingBuffer(3)
	var r logRecord
	for i := 0; i < 50; i++ {
		if !b.full() {
			b.put(makeRecord("x"))
		}
		assert.GreaterOrEqual(t, b.writeIdx, 0)
		assert.Less(t, b.writeIdx, 3)
		if !b.empty() {
			b.take(&r)
		}
		assert.GreaterOrEqual(t, b.readIdx, 0)
		assert.Less(t, b.readIdx, 3)
		assert.LessOrEqual(t, b.length(), 2)
	}
}

func TestRingCopiesByValue(t *testing.T) {
	b := newRingBuffer(4)
	src := makeRecord("original")
	b.put(src)

	// Mutating the source after put must not affect the stored record
	src.setMessage("mutated")

	var r logRecord
	b.take(&r)
	assert.Equal(t, "original", string(r.message[:r.msgLen]))
}
