// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/docsgen/internal/render"
	"github.com/pdiddy/docsgen/pkg/types"
)

// FAQ groups entries by section (first-seen section order), stable-sorts
// each section by ascending Order, and emits a section heading followed
// by a definition-list block per section. An entry's answer uses the
// block renderer when the entry carries structured blocks, falling back
// to the plain rich-text answer otherwise.
func FAQ(faqs []types.FAQ, terms render.LinkableTerms) string {
	var sections []string
	bySection := make(map[string][]types.FAQ)
	for _, f := range faqs {
		if _, seen := bySection[f.Section]; !seen {
			sections = append(sections, f.Section)
		}
		bySection[f.Section] = append(bySection[f.Section], f)
	}

	var b strings.Builder
	for i, section := range sections {
		entries := bySection[section]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Order < entries[j].Order
		})

		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n\n<dl>\n", section)
		for _, f := range entries {
			fmt.Fprintf(&b, "  <dt>%s</dt>\n  <dd>\n\n%s\n\n  </dd>\n", f.Question, answer(f, terms))
		}
		b.WriteString("</dl>\n")
	}
	return b.String()
}

func answer(f types.FAQ, terms render.LinkableTerms) string {
	if len(f.Blocks) > 0 {
		return render.Blocks(f.Blocks, terms)
	}
	return render.Spans(f.Answer, terms)
}
