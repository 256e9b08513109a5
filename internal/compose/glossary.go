// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/docsgen/internal/render"
	"github.com/pdiddy/docsgen/pkg/types"
)

// Entry is one rendered glossary triple ready for emission.
type Entry struct {
	// Term is the heading text, formatted but without links.
	Term string

	// Body is the rendered definition, with cross-references resolved.
	Body string

	// Key is the entry's anchor key. Keys collide when two distinct
	// terms normalize to the same string; collisions are emitted as-is.
	Key string
}

// Excluded records a definition left out of the glossary and why.
type Excluded struct {
	PageID string
	Term   string
	Reason Validity
}

// Glossary filters definitions to the valid set, renders each into an
// Entry, and emits the entries sorted by locale-aware case-insensitive
// comparison of the rendered term (ties keep fetch order). The fragment
// wraps all entries in a single container element. Output is a pure
// function of the input ordering and the collation rules.
func Glossary(defs []types.Definition, terms render.LinkableTerms) (string, []Excluded) {
	var entries []Entry
	var excluded []Excluded

	for _, d := range defs {
		if v := Classify(d); v != Valid {
			excluded = append(excluded, Excluded{
				PageID: d.PageID,
				Term:   render.PlainText(d.Term),
				Reason: v,
			})
			continue
		}
		entries = append(entries, Entry{
			Term: render.Spans(d.Term, nil),
			Body: render.Spans(d.Definition, terms),
			Key:  render.AnchorKey(d.Term),
		})
	}

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Term, entries[j].Term) < 0
	})

	var b strings.Builder
	b.WriteString("<div class=\"glossary\">\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n### %s {#%s}\n\n%s\n", e.Term, e.Key, e.Body)
	}
	b.WriteString("\n</div>\n")
	return b.String(), excluded
}
