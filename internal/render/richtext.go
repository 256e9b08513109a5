// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts rich-text spans and content blocks into
// markdown fragments. Rendering never fails: spans that cannot be
// resolved or formatted degrade to plain text so a single malformed
// record cannot break the surrounding output.
package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/docsgen/pkg/types"
)

// LinkableTerm holds the public rendering metadata for one glossary
// definition, keyed by page ID in LinkableTerms.
type LinkableTerm struct {
	// Text is the definition's rendered term, cached so composers do
	// not re-render it.
	Text string

	// Anchor is the term's URL-fragment key.
	Anchor string

	// Page is the site path the anchor lives on.
	Page string

	// Valid reports whether the definition is publishable. Invalid
	// terms are never linked to, even when referenced.
	Valid bool

	// URL is the definition's source page link.
	URL string
}

// LinkableTerms maps a page ID to its rendering metadata. The table is
// built once per run, before any rendering that needs cross-references,
// and is read-only afterwards. A nil table resolves nothing, so every
// reference renders as plain text.
type LinkableTerms map[string]LinkableTerm

// quoteNormalizer maps curly quotes to their straight equivalents.
var quoteNormalizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// Spans renders an ordered sequence of rich-text spans to markdown.
// Each span gets its inline formatting applied; a span referencing a
// page present in terms with Valid=true becomes a link to
// {page}#{anchor}. References that do not resolve, or resolve to an
// invalid term, render as plain text.
func Spans(spans []types.RichText, terms LinkableTerms) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(renderSpan(span, terms))
	}
	return b.String()
}

// PlainText renders spans without formatting or links. Used for anchor
// derivation and for heading text where markup is unwanted.
func PlainText(spans []types.RichText) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(quoteNormalizer.Replace(span.Text))
	}
	return b.String()
}

func renderSpan(span types.RichText, terms LinkableTerms) string {
	text := quoteNormalizer.Replace(span.Text)
	if text == "" {
		return ""
	}

	// Inline formatting wraps innermost-out: code first, then the
	// emphasis markers around it.
	if span.Code {
		text = "`" + text + "`"
	}
	if span.Bold {
		text = "**" + text + "**"
	}
	if span.Italic {
		text = "*" + text + "*"
	}
	if span.Strikethrough {
		text = "~~" + text + "~~"
	}
	if span.Underline {
		text = "<u>" + text + "</u>"
	}

	if target := linkTarget(span, terms); target != "" {
		return fmt.Sprintf("[%s](%s)", text, target)
	}
	return text
}

// linkTarget resolves a span's link destination, or "" when the span
// should stay plain. Cross-references only link when the referenced
// term exists in the table and is valid.
func linkTarget(span types.RichText, terms LinkableTerms) string {
	if span.MentionPageID != "" {
		term, ok := terms[span.MentionPageID]
		if !ok || !term.Valid {
			return ""
		}
		return term.Page + "#" + term.Anchor
	}
	return span.Href
}
