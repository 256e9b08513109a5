// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the docsgen pipeline:
// rich-text spans and content blocks as fetched from the content source,
// the glossary and FAQ records built from them, and the stage
// configuration groups read from the config file.
package types

// RichText is one formatted span of text. A span optionally carries an
// external link (Href) or a reference to another page in the content
// source (MentionPageID); the renderer resolves the latter against the
// linkable-terms table.
type RichText struct {
	// Text is the span's plain content.
	Text string `json:"text" yaml:"text"`

	// Inline formatting flags.
	Bold          bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty" yaml:"italic,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Underline     bool `json:"underline,omitempty" yaml:"underline,omitempty"`
	Code          bool `json:"code,omitempty" yaml:"code,omitempty"`

	// Href is an external link target, if the span is a plain link.
	Href string `json:"href,omitempty" yaml:"href,omitempty"`

	// MentionPageID references another record's page ID. Resolved to a
	// glossary deep link when that record is valid, plain text otherwise.
	MentionPageID string `json:"mention_page_id,omitempty" yaml:"mention_page_id,omitempty"`
}

// BlockType identifies the shape of a content block.
type BlockType string

const (
	BlockParagraph    BlockType = "paragraph"
	BlockBulletedItem BlockType = "bulleted_list_item"
	BlockNumberedItem BlockType = "numbered_list_item"
	BlockQuote        BlockType = "quote"
	BlockCode         BlockType = "code"
)

// Block is one structured content block: a paragraph, list item, quote,
// or code fence, with its rich-text content.
type Block struct {
	// Type selects the block shape.
	Type BlockType `json:"type" yaml:"type"`

	// RichText is the block's inline content.
	RichText []RichText `json:"rich_text" yaml:"rich_text"`

	// Language is the fence language for code blocks (optional).
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}
