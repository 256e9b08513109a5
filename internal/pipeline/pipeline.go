// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one sync run: fetch project content, build
// the cross-reference table, compose the glossary and FAQ fragments,
// and write the two partial files. Stages run strictly in order; the
// first error aborts the remaining stages. There is no partial-write
// rollback: a file written before a later failure stays on disk.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/docsgen/internal/compose"
	"github.com/pdiddy/docsgen/internal/render"
	"github.com/pdiddy/docsgen/internal/source"
	"github.com/pdiddy/docsgen/pkg/types"
)

// Run executes the full pipeline, logging progress to w.
func Run(ctx context.Context, src source.ContentSource, cfg types.PipelineConfig, w io.Writer) error {
	project, err := src.FindProject(ctx, cfg.Project)
	if err != nil {
		return fmt.Errorf("finding project: %w", err)
	}
	fmt.Fprintf(w, "Project %q (%s)\n", project.Name, project.ID)

	faqs, err := src.ListFAQs(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("fetching faqs: %w", err)
	}
	defs, err := src.ListDefinitions(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("fetching definitions: %w", err)
	}
	fmt.Fprintf(w, "Fetched %d faq entries, %d definitions\n", len(faqs), len(defs))

	terms := BuildLinkTable(defs, cfg.Output.GlossaryPage)

	glossary, excluded := compose.Glossary(defs, terms)
	for _, ex := range excluded {
		fmt.Fprintf(w, "skipped %q (%s): %s\n", ex.Term, ex.PageID, ex.Reason)
	}
	faq := compose.FAQ(faqs, terms)

	if err := writeFragment(cfg.Output.GlossaryPath, glossary); err != nil {
		return fmt.Errorf("writing glossary partial: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", cfg.Output.GlossaryPath)

	if err := writeFragment(cfg.Output.FAQPath, faq); err != nil {
		return fmt.Errorf("writing faq partial: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", cfg.Output.FAQPath)

	return nil
}

// BuildLinkTable renders and classifies each definition once, producing
// the read-only cross-reference table every later rendering call takes
// as a parameter. Rendered term text is cached in the table so the
// composers do not render it twice. Entries are keyed by page ID;
// distinct terms that normalize to the same anchor keep their own
// table entries but share the anchor string.
func BuildLinkTable(defs []types.Definition, glossaryPage string) render.LinkableTerms {
	terms := make(render.LinkableTerms, len(defs))
	for _, d := range defs {
		terms[d.PageID] = render.LinkableTerm{
			Text:   render.PlainText(d.Term),
			Anchor: render.AnchorKey(d.Term),
			Page:   glossaryPage,
			Valid:  compose.Classify(d) == compose.Valid,
			URL:    d.URL,
		}
	}
	return terms
}

func writeFragment(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
