// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose classifies definitions for publication and assembles
// the glossary and FAQ markdown fragments.
package compose

import (
	"strings"

	"github.com/pdiddy/docsgen/internal/render"
	"github.com/pdiddy/docsgen/pkg/types"
)

// Validity is the publication-readiness outcome for one definition.
// The set is closed so composers can report why an entry was excluded
// instead of collapsing everything to a boolean.
type Validity string

const (
	// Valid definitions are published and linkable.
	Valid Validity = "valid"

	// Unpublished definitions are not marked ready by the source.
	Unpublished Validity = "unpublished"

	// EmptyTerm definitions render to an empty term string.
	EmptyTerm Validity = "empty-term"

	// EmptyDefinition definitions have no body content.
	EmptyDefinition Validity = "empty-definition"
)

// Classify determines whether a definition is eligible for glossary
// publication. Only Valid entries are published; the same outcome
// drives the linkable-terms validity flag, so an excluded definition
// is never linked to from elsewhere.
func Classify(d types.Definition) Validity {
	if !d.Published {
		return Unpublished
	}
	if strings.TrimSpace(render.PlainText(d.Term)) == "" {
		return EmptyTerm
	}
	if strings.TrimSpace(render.PlainText(d.Definition)) == "" {
		return EmptyDefinition
	}
	return Valid
}
