// FILE: cmd/verify/main.go
// Verify harness: parses files produced by the logger and checks that
// line timestamps never decrease within a file and, optionally, that
// the total line count matches an expectation. Exit code 1 on any
// violation.
//
// Usage:
//
//	verify [-expect N] <glob pattern, e.g. ./logs/stress.log.*>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// linePattern matches the fixed output format:
// 2006-01-02 15:04:05 LEVEL [category] file:line: message
var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\S+)\s+\[([^]]*)\] ([^:]*):(\d+): (.*)$`)

const timeLayout = "2006-01-02 15:04:05"

func main() {
	expect := flag.Int("expect", -1, "expected total line count, -1 disables the check")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: verify [-expect N] <glob>")
		os.Exit(2)
	}

	matches, err := filepath.Glob(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad pattern: %v\n", err)
		os.Exit(2)
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "no files match %s\n", flag.Arg(0))
		os.Exit(1)
	}
	sort.Strings(matches)

	total := 0
	violations := 0
	for _, name := range matches {
		lines, fileViolations := verifyFile(name)
		total += lines
		violations += fileViolations
		fmt.Printf("%s: %d lines, %d violations\n", name, lines, fileViolations)
	}

	if *expect >= 0 && total != *expect {
		fmt.Fprintf(os.Stderr, "FAIL: expected %d total lines, found %d\n", *expect, total)
		os.Exit(1)
	}
	if violations > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d violations across %d files\n", violations, len(matches))
		os.Exit(1)
	}
	fmt.Printf("OK: %d lines across %d files\n", total, len(matches))
}

// verifyFile checks every line of one file for format conformance and
// non-decreasing timestamps. Ordering is per file: lines are written in
// the order they occupied ring slots, and the emit timestamp is taken
// before slot acquisition, so timestamps within one file never go
// backwards by more than the gate race allows, which at second
// resolution means never.
func verifyFile(name string) (lines, violations int) {
	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", name, err)
		return 0, 1
	}
	defer f.Close()

	var prev time.Time
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
		m := linePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			fmt.Fprintf(os.Stderr, "%s:%d: malformed line\n", name, lines)
			violations++
			continue
		}
		ts, err := time.Parse(timeLayout, m[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: bad timestamp %q\n", name, lines, m[1])
			violations++
			continue
		}
		if ts.Before(prev) {
			fmt.Fprintf(os.Stderr, "%s:%d: timestamp went backwards (%s < %s)\n",
				name, lines, m[1], prev.Format(timeLayout))
			violations++
		}
		prev = ts
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", name, err)
		violations++
	}
	return lines, violations
}
