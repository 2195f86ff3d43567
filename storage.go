// FILE: storage.go
package ringlog

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// openLogFile creates the next log file for base. The name is the base
// path plus a second-resolution timestamp suffix. An existing file is
// never reused or truncated: on a name collision a numeric counter is
// appended until creation succeeds.
func openLogFile(base string, now time.Time) (*os.File, string, error) {
	name := base + "." + now.Format(fileSuffixLayout)
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err == nil {
		return f, name, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return nil, "", err
	}
	for i := 1; i <= maxFileNameCollisions; i++ {
		candidate := fmt.Sprintf("%s.%d", name, i)
		f, err = os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("no free name for %s after %d attempts", name, maxFileNameCollisions)
}

// openSink creates the log directory, the first timestamped file and
// its buffered writer.
func (c *core) openSink(now time.Time) error {
	dir := filepath.Dir(c.cfg.FilePathBase)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmtErrorf("%w: failed to create log directory %s: %v", ErrIO, dir, err)
	}

	f, name, err := openLogFile(c.cfg.FilePathBase, now)
	if err != nil {
		return fmtErrorf("%w: failed to open log file: %v", ErrIO, err)
	}

	c.file = f
	c.writer = bufio.NewWriterSize(f, fileWriterBufferSize)
	c.fileName = name
	c.state.CurrentFile.Store(name)
	c.state.CurrentSize.Store(0)
	return nil
}

// rotateSink closes the active file and opens the next timestamped one.
// Called by the sink owner before a write that found the size at or past
// the threshold. On failure the file sink stays disabled until shutdown.
func (c *core) rotateSink() error {
	if err := c.writer.Flush(); err != nil {
		c.state.WriteErrors.Add(1)
		c.internalLog("flush before rotation failed: %v", err)
	}
	if err := c.file.Close(); err != nil {
		c.internalLog("error closing rotated log file %s: %v", c.fileName, err)
	}

	f, name, err := openLogFile(c.cfg.FilePathBase, time.Now())
	if err != nil {
		c.file = nil
		c.writer = nil
		return err
	}

	c.file = f
	c.writer = bufio.NewWriterSize(f, fileWriterBufferSize)
	c.fileName = name
	c.state.CurrentFile.Store(name)
	c.state.CurrentSize.Store(0)
	c.state.Rotations.Add(1)
	return nil
}

// writeFileLine writes one rendered line to the file sink, rotating
// first when the size threshold has been reached.
func (c *core) writeFileLine(line []byte) {
	if c.file == nil {
		return
	}
	if c.maxBytes > 0 && c.state.CurrentSize.Load() >= c.maxBytes {
		if err := c.rotateSink(); err != nil {
			c.state.WriteErrors.Add(1)
			c.internalLog("rotation failed, file sink disabled: %v", err)
			return
		}
	}

	n, err := c.writer.Write(line)
	c.state.CurrentSize.Add(int64(n))
	if err != nil {
		c.state.WriteErrors.Add(1)
		c.internalLog("file write failed: %v", err)
		return
	}
	c.state.Written.Add(1)
}

// writeConsoleLine writes one rendered line to the console sink.
func (c *core) writeConsoleLine(line []byte) {
	if c.console == nil {
		return
	}
	if _, err := c.console.Write(line); err != nil {
		c.state.ConsoleErrors.Add(1)
	}
}

// flushWriter drains the buffered writer to the OS.
func (c *core) flushWriter() {
	if c.writer == nil {
		return
	}
	if err := c.writer.Flush(); err != nil {
		c.state.WriteErrors.Add(1)
		c.internalLog("file flush failed: %v", err)
	}
}

// syncSinks flushes the buffered writer and syncs the file to stable
// storage.
func (c *core) syncSinks() {
	c.flushWriter()
	if c.file != nil {
		if err := c.file.Sync(); err != nil {
			c.internalLog("file sync failed: %v", err)
		}
	}
}

// closeSink flushes and closes the file. Called only after the worker
// has exited, or inline in direct mode.
func (c *core) closeSink() error {
	var err error
	if c.writer != nil {
		err = c.writer.Flush()
		c.writer = nil
	}
	if c.file != nil {
		err = combineErrors(err, c.file.Close())
		c.file = nil
	}
	return err
}
