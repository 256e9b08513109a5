// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Project identifies the documentation project whose content is fetched.
type Project struct {
	// ID is the project's page identifier in the content source.
	ID string `json:"id" yaml:"id"`

	// Name is the project's display name.
	Name string `json:"name" yaml:"name"`
}

// Definition is one glossary entry as fetched from the content source.
// Records are immutable once fetched; the pipeline never mutates them.
type Definition struct {
	// PageID is the record's unique page identifier.
	PageID string `json:"page_id" yaml:"page_id"`

	// Term is the glossary term as rich text.
	Term []RichText `json:"term" yaml:"term"`

	// Definition is the term's body as rich text.
	Definition []RichText `json:"definition" yaml:"definition"`

	// URL is the source page link.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Published reports whether the source marks the entry ready for
	// publication. Sources without the flag report true.
	Published bool `json:"published" yaml:"published"`
}

// FAQ is one question/answer entry as fetched from the content source.
type FAQ struct {
	// PageID is the record's unique page identifier.
	PageID string `json:"page_id" yaml:"page_id"`

	// Section groups entries under a heading in the output.
	Section string `json:"section" yaml:"section"`

	// Order sorts entries within a section, ascending.
	Order int `json:"order" yaml:"order"`

	// Question is the entry's heading text.
	Question string `json:"question" yaml:"question"`

	// Answer is the plain rich-text answer, used when Blocks is empty.
	Answer []RichText `json:"answer" yaml:"answer"`

	// Blocks is the entry's structured page content, possibly empty.
	// When present it takes precedence over Answer.
	Blocks []Block `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}
