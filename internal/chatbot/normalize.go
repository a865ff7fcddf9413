// Package chatbot interprets free-text guest inquiries and produces
// natural-language replies.  Interpretation is purely rule based: the
// question is normalized, scanned for entities (room category, residency,
// dates, quantity), classified into an intent and dispatched to the
// pricing or availability engine.
package chatbot

import (
	"regexp"
	"strings"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases the question, replaces every non-word non-space
// character with a space and collapses runs of whitespace.  The result is
// trimmed, so the transformation is idempotent.  Empty input yields the
// empty string.
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
