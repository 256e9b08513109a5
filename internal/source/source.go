// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches glossary and FAQ records from a content
// source. The Notion implementation talks to the Notion API; the
// fixture implementation reads the same records from a local YAML file
// for offline runs and tests. Both map raw records into the typed
// shapes in pkg/types at the boundary.
package source

import (
	"context"
	"fmt"

	"github.com/pdiddy/docsgen/pkg/types"
)

// ContentSource retrieves a project and its content records. Calls are
// made sequentially by the pipeline; implementations need no internal
// concurrency.
type ContentSource interface {
	// FindProject resolves a project by display name.
	FindProject(ctx context.Context, name string) (types.Project, error)

	// ListDefinitions returns the project's glossary definitions in
	// source order.
	ListDefinitions(ctx context.Context, projectID string) ([]types.Definition, error)

	// ListFAQs returns the project's FAQ entries in source order.
	ListFAQs(ctx context.Context, projectID string) ([]types.FAQ, error)
}

// validateDefinitions rejects records the pipeline cannot key on.
func validateDefinitions(defs []types.Definition) error {
	for i, d := range defs {
		if d.PageID == "" {
			return fmt.Errorf("definition %d: missing page_id", i)
		}
	}
	return nil
}

// validateFAQs rejects unkeyed records and defaults empty sections so
// grouping never produces a blank heading.
func validateFAQs(faqs []types.FAQ) error {
	for i := range faqs {
		if faqs[i].PageID == "" {
			return fmt.Errorf("faq %d: missing page_id", i)
		}
		if faqs[i].Section == "" {
			faqs[i].Section = "General"
		}
	}
	return nil
}
