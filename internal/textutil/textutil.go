// Package textutil normalizes human-authored spreadsheet headers so that
// case, accents, and whitespace run-length do not affect column matching.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the input, strips combining diacritical marks, and
// collapses internal whitespace runs to single spaces. Two headers normalize
// equal iff they differ only in case, accents, or whitespace run-length.
func Normalize(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))
	stripped, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		// Malformed UTF-8; fall back to the lowered input so matching
		// degrades to case/whitespace-insensitive only.
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	inSpace := false
	for _, r := range stripped {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveColumn finds the actual header matching any alias. Aliases are
// tried in priority order; within one alias, actual headers are tried in
// source order. Returns the actual header as it appears in the source.
func ResolveColumn(actual []string, aliases []string) (string, bool) {
	normalized := make(map[string]string, len(actual))
	for _, header := range actual {
		key := Normalize(header)
		if _, seen := normalized[key]; !seen {
			normalized[key] = header
		}
	}

	for _, alias := range aliases {
		if header, ok := normalized[Normalize(alias)]; ok {
			return header, true
		}
	}
	return "", false
}
