package render

import (
	"testing"

	"github.com/pdiddy/docsgen/pkg/types"
)

func para(text string) types.Block {
	return types.Block{Type: types.BlockParagraph, RichText: spans(text)}
}

func bullet(text string) types.Block {
	return types.Block{Type: types.BlockBulletedItem, RichText: spans(text)}
}

func numbered(text string) types.Block {
	return types.Block{Type: types.BlockNumberedItem, RichText: spans(text)}
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name   string
		blocks []types.Block
		want   string
	}{
		{
			"paragraphs joined by blank line",
			[]types.Block{para("first"), para("second")},
			"first\n\nsecond",
		},
		{
			"bulleted run forms one list",
			[]types.Block{bullet("a"), bullet("b"), bullet("c")},
			"- a\n- b\n- c",
		},
		{
			"numbered run counts from one",
			[]types.Block{numbered("a"), numbered("b")},
			"1. a\n2. b",
		},
		{
			"numbering restarts after a paragraph",
			[]types.Block{numbered("a"), para("break"), numbered("b")},
			"1. a\n\nbreak\n\n1. b",
		},
		{
			"mixed list kinds separate",
			[]types.Block{bullet("a"), numbered("b")},
			"- a\n\n1. b",
		},
		{
			"quote",
			[]types.Block{{Type: types.BlockQuote, RichText: spans("wise words")}},
			"> wise words",
		},
		{
			"code fence with language",
			[]types.Block{{Type: types.BlockCode, RichText: spans("x := 1"), Language: "go"}},
			"```go\nx := 1\n```",
		},
		{
			"unknown type degrades to paragraph",
			[]types.Block{{Type: types.BlockType("callout"), RichText: spans("note")}},
			"note",
		},
		{
			"empty paragraph dropped",
			[]types.Block{para(""), para("kept")},
			"kept",
		},
		{
			"empty input",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blocks(tt.blocks, nil); got != tt.want {
				t.Errorf("Blocks() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlocksResolveReferences(t *testing.T) {
	blocks := []types.Block{
		{Type: types.BlockParagraph, RichText: []types.RichText{
			{Text: "See "},
			{Text: "quorum", MentionPageID: "page-quorum"},
		}},
	}
	got := Blocks(blocks, testTerms())
	want := "See [quorum](/docs/glossary#quorum)"
	if got != want {
		t.Errorf("Blocks() = %q, want %q", got, want)
	}
}
