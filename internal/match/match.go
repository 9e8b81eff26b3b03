// Package match implements the tiered field-matching heuristics used by the
// search engine. All matching is done against a normalized (lowercase,
// trimmed) query; callers normalize once per query via Normalize.
package match

import (
	"strings"

	"github.com/runger/finsearch/internal/records"
)

// Normalize lowercases and trims a raw query so that cache keys and
// comparisons are stable.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// minSubstringLen is the minimum query length for the substring fallback
// tier. Shorter queries only match via the exact/prefix/word/numeric tiers,
// which keeps one- and two-character queries from matching noise.
const minSubstringLen = 3

// Matches reports whether any field matches the normalized query. An empty
// query fails closed; empty field values never match.
func Matches(fields []records.Field, query string) bool {
	if query == "" {
		return false
	}
	for _, f := range fields {
		if fieldMatches(f, query) {
			return true
		}
	}
	return false
}

// fieldMatches applies the tiered precedence to a single field: exact,
// prefix, word-boundary prefix, numeric-identifier boundary, then substring.
func fieldMatches(f records.Field, query string) bool {
	if f.Value == "" {
		return false
	}
	value := strings.ToLower(f.Value)

	if value == query {
		return true
	}
	// All-digit queries against identifier fields use only the boundary
	// rule beyond exact equality: a plain prefix like "12" on "123456"
	// would be a partial numeric collision.
	if isAllDigits(query) && isIdentifierField(f.Name) {
		return numericBoundaryMatch(value, query)
	}
	if strings.HasPrefix(value, query) {
		return true
	}
	for _, word := range strings.Fields(value) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	if len(query) >= minSubstringLen {
		return strings.Contains(value, query)
	}
	return false
}

// isIdentifierField reports whether a field name suggests an identifier or
// number, which opts it into the numeric boundary rule.
func isIdentifierField(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "id") || strings.Contains(lower, "number")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// numericBoundaryMatch reports whether query occurs in value flanked by
// non-digit boundaries (or the string edges). This lets "123" match
// "CUST-123" while rejecting "4567123", where the digits are embedded in a
// longer number.
func numericBoundaryMatch(value, query string) bool {
	for start := 0; ; {
		i := strings.Index(value[start:], query)
		if i < 0 {
			return false
		}
		i += start

		beforeOK := i == 0 || !isDigitByte(value[i-1])
		end := i + len(query)
		afterOK := end == len(value) || !isDigitByte(value[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
