// FILE: utility.go
package ringlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Sentinel errors for init-time failures, matched with errors.Is.
var (
	// ErrInvalidConfig reports missing or out-of-range configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrIO reports a failure to create or open the log file.
	ErrIO = errors.New("i/o failure")
	// ErrAlreadyInitialized reports Init on an initialized logger.
	ErrAlreadyInitialized = errors.New("logger already initialized")
	// ErrNotInitialized reports an operation that needs a running logger.
	ErrNotInitialized = errors.New("logger not initialized")
)

// callerLocation returns the base file name and line of the frame skip
// levels above the caller of callerLocation.
func callerLocation(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), line
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "ringlog: ") {
		format = "ringlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// internalLog reports a sink-side problem on stderr when the
// configuration asks for it. Runtime sink errors never reach the caller
// any other way.
func (c *core) internalLog(format string, args ...any) {
	if c.cfg == nil || !c.cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "ringlog: ") {
		format = "ringlog: " + format
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// nopLocker satisfies sync.Locker without synchronizing. Selected by
// LockStrategy "none" for single-goroutine direct use.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
