// FILE: lixenwraith/ringlog/constant.go
package ringlog

import (
	"time"
)

// Record field bounds. Longer values are truncated at copy time.
const (
	categoryBytes = 32
	fileBytes     = 64
	messageBytes  = 1024
)

// Ring buffer
const (
	// Default slot count. One slot is sacrificed to distinguish
	// full from empty, so usable capacity is one less.
	defaultRingCapacity = 1024
	minRingCapacity     = 2
)

// Storage
const (
	// Buffered writer size for the file sink
	fileWriterBufferSize = 4096
	// Timestamp suffix appended to the base path for each opened file
	fileSuffixLayout = "20060102_150405"
	// Attempts at numeric disambiguation when the timestamped name exists
	maxFileNameCollisions = 1000
)

// Timers
const (
	// Floor for caller-supplied timeouts in Flush and Shutdown
	minWaitTime = 10 * time.Millisecond
	// Default bound on the Shutdown drain wait. Generous because a
	// Block-policy backlog may take a while to reach the disk.
	defaultShutdownWait = 30 * time.Second
)
