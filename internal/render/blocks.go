// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"
	"strings"

	"github.com/pdiddy/docsgen/pkg/types"
)

// Blocks renders a sequence of content blocks to markdown. Paragraphs
// and quotes are separated by blank lines; consecutive list items of
// the same kind form one list. Unknown block types degrade to plain
// paragraphs rather than failing.
func Blocks(blocks []types.Block, terms LinkableTerms) string {
	var parts []string
	for i := 0; i < len(blocks); {
		switch blocks[i].Type {
		case types.BlockBulletedItem:
			run := listRun(blocks, i, types.BlockBulletedItem)
			parts = append(parts, renderBulleted(blocks[i:i+run], terms))
			i += run
		case types.BlockNumberedItem:
			run := listRun(blocks, i, types.BlockNumberedItem)
			parts = append(parts, renderNumbered(blocks[i:i+run], terms))
			i += run
		case types.BlockQuote:
			parts = append(parts, "> "+Spans(blocks[i].RichText, terms))
			i++
		case types.BlockCode:
			parts = append(parts, renderCode(blocks[i]))
			i++
		default:
			// Paragraphs and anything unrecognized.
			if text := Spans(blocks[i].RichText, terms); text != "" {
				parts = append(parts, text)
			}
			i++
		}
	}
	return strings.Join(parts, "\n\n")
}

// listRun counts the consecutive blocks of kind starting at i.
func listRun(blocks []types.Block, i int, kind types.BlockType) int {
	n := 0
	for i+n < len(blocks) && blocks[i+n].Type == kind {
		n++
	}
	return n
}

func renderBulleted(items []types.Block, terms LinkableTerms) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + Spans(item.RichText, terms)
	}
	return strings.Join(lines, "\n")
}

func renderNumbered(items []types.Block, terms LinkableTerms) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = strconv.Itoa(i+1) + ". " + Spans(item.RichText, terms)
	}
	return strings.Join(lines, "\n")
}

func renderCode(block types.Block) string {
	// Fence content stays unformatted; markers inside code are literal.
	return "```" + block.Language + "\n" + PlainText(block.RichText) + "\n```"
}
