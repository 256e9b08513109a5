// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"unicode"

	"github.com/pdiddy/docsgen/pkg/types"
)

// AnchorKey derives a URL-fragment-safe anchor from a term's rich text.
// The key is a pure function of the term text: render to plain text,
// drop characters outside {letters, digits, whitespace, $, -, parens},
// lowercase, and collapse whitespace runs to single hyphens. Two
// definitions with identical term text produce identical keys; callers
// that need uniqueness must deduplicate terms upstream.
func AnchorKey(term []types.RichText) string {
	return anchorFromText(PlainText(term))
}

func anchorFromText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || allowedAnchorRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

func allowedAnchorRune(r rune) bool {
	switch r {
	case '$', '-', '(', ')':
		return true
	}
	return false
}
