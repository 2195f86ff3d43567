// FILE: lixenwraith/ringlog/sanitizer/sanitizer.go
// Package sanitizer provides composable byte-level sanitization of log
// output based on configurable rules using bitwise filter flags and
// transforms. Its append-style API renders into a caller-owned buffer
// so the logging hot path stays allocation-free.
package sanitizer

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterWhitespace                      // Matches whitespace characters (unicode.IsSpace)
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformEscape                       // Escapes with backslash sequences ('\n', '\xNN')
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	// PolicyRaw is a no-op (passthrough)
	PolicyRaw PolicyPreset = "raw"
	// PolicyLine keeps output on a single line: control characters are
	// backslash-escaped, remaining non-printable runes are hex-encoded.
	// Prevents a crafted message from forging extra log lines.
	PolicyLine PolicyPreset = "line"
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw: {},
	PolicyLine: {
		{filter: FilterControl, transform: TransformEscape},
		{filter: FilterNonPrintable, transform: TransformHexEncode},
	},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
}

// Sanitizer applies an ordered rule chain to text
type Sanitizer struct {
	rules []rule
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// AppendSanitized applies the configured rules to src and appends the
// result to dst, returning the extended slice. Bytes that match no rule
// are copied through unchanged, so a clean input costs one append.
func (s *Sanitizer) AppendSanitized(dst, src []byte) []byte {
	if len(s.rules) == 0 {
		return append(dst, src...)
	}
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		matched := false
		// Check rules in order (first match wins)
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				dst = appendTransformed(dst, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			dst = append(dst, src[i:i+size]...)
		}
		i += size
	}
	return dst
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	return string(s.AppendSanitized(nil, []byte(data)))
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

const hexDigits = "0123456789abcdef"

// appendTransformed applies the specified transform to the buffer
func appendTransformed(dst []byte, r rune, transformMask uint64) []byte {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		dst = append(dst, '<')
		for _, b := range runeBytes[:n] {
			dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
		}
		dst = append(dst, '>')

	case (transformMask & TransformEscape) != 0:
		switch r {
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\\':
			dst = append(dst, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				dst = append(dst, '\\', 'x', hexDigits[r>>4], hexDigits[r&0x0f])
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return dst
}
