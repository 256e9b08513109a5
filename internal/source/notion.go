// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/pdiddy/docsgen/pkg/types"
)

// Property names expected on the Notion databases.
const (
	propDefinition = "Definition"
	propPublished  = "Published"
	propProject    = "Project"
	propSection    = "Section"
	propOrder      = "Order"
	propAnswer     = "Answer"
)

const queryPageSize = 100

// NotionSource fetches content from three Notion databases: projects,
// glossary definitions, and FAQ entries. Definitions and FAQs relate to
// a project through a "Project" relation property.
type NotionSource struct {
	client *notionapi.Client
	cfg    types.NotionConfig
}

// NewNotionSource builds a source from config. The token is required;
// database IDs are checked lazily by the operations that use them.
func NewNotionSource(cfg types.NotionConfig) (*NotionSource, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("notion token missing: set notion.token or .secrets/notion-api-key")
	}
	return &NotionSource{
		client: notionapi.NewClient(notionapi.Token(cfg.Token)),
		cfg:    cfg,
	}, nil
}

// FindProject scans the projects database for a page whose title
// matches name, case-insensitively. Volumes are small, so matching
// happens client-side rather than through the API filter surface.
func (s *NotionSource) FindProject(ctx context.Context, name string) (types.Project, error) {
	if s.cfg.ProjectsDB == "" {
		return types.Project{}, fmt.Errorf("notion.projects_db is not configured")
	}

	pages, err := s.queryAll(ctx, s.cfg.ProjectsDB)
	if err != nil {
		return types.Project{}, fmt.Errorf("listing projects: %w", err)
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for _, page := range pages {
		title := plainTitle(page)
		if strings.ToLower(strings.TrimSpace(title)) == want {
			return types.Project{ID: page.ID.String(), Name: title}, nil
		}
	}
	return types.Project{}, fmt.Errorf("project %q not found in projects database", name)
}

// ListDefinitions returns the glossary definitions related to the
// project, in database order.
func (s *NotionSource) ListDefinitions(ctx context.Context, projectID string) ([]types.Definition, error) {
	if s.cfg.GlossaryDB == "" {
		return nil, fmt.Errorf("notion.glossary_db is not configured")
	}

	pages, err := s.queryAll(ctx, s.cfg.GlossaryDB)
	if err != nil {
		return nil, fmt.Errorf("listing definitions: %w", err)
	}

	var defs []types.Definition
	for _, page := range pages {
		if !relatedToProject(page, projectID) {
			continue
		}
		defs = append(defs, definitionFromPage(page))
	}
	if err := validateDefinitions(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// ListFAQs returns the FAQ entries related to the project, in database
// order, including each entry's page blocks.
func (s *NotionSource) ListFAQs(ctx context.Context, projectID string) ([]types.FAQ, error) {
	if s.cfg.FAQDB == "" {
		return nil, fmt.Errorf("notion.faq_db is not configured")
	}

	pages, err := s.queryAll(ctx, s.cfg.FAQDB)
	if err != nil {
		return nil, fmt.Errorf("listing faqs: %w", err)
	}

	var faqs []types.FAQ
	for _, page := range pages {
		if !relatedToProject(page, projectID) {
			continue
		}
		faq := faqFromPage(page)
		blocks, err := s.pageBlocks(ctx, page.ID.String())
		if err != nil {
			return nil, fmt.Errorf("fetching blocks for %s: %w", page.ID.String(), err)
		}
		faq.Blocks = blocks
		faqs = append(faqs, faq)
	}
	if err := validateFAQs(faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// queryAll pages through a database query until exhausted.
func (s *NotionSource) queryAll(ctx context.Context, databaseID string) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor
	for {
		resp, err := s.client.Database.Query(ctx, notionapi.DatabaseID(databaseID), &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
			PageSize:    queryPageSize,
		})
		if err != nil {
			return nil, err
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}

// pageBlocks fetches a page's child blocks and maps the renderable ones.
func (s *NotionSource) pageBlocks(ctx context.Context, pageID string) ([]types.Block, error) {
	var all notionapi.Blocks
	cursor := ""
	for {
		resp, err := s.client.Block.GetChildren(ctx, notionapi.BlockID(pageID), &notionapi.Pagination{
			StartCursor: notionapi.Cursor(cursor),
			PageSize:    queryPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Results...)
		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}
	return mapBlocks(all), nil
}

// --- Notion → pkg/types mapping ---

func definitionFromPage(page notionapi.Page) types.Definition {
	return types.Definition{
		PageID:     page.ID.String(),
		Term:       mapRichText(titleSpans(page)),
		Definition: mapRichText(richTextProp(page, propDefinition)),
		URL:        page.URL,
		Published:  checkboxProp(page, propPublished),
	}
}

func faqFromPage(page notionapi.Page) types.FAQ {
	return types.FAQ{
		PageID:   page.ID.String(),
		Section:  selectProp(page, propSection),
		Order:    numberProp(page, propOrder),
		Question: plainTitle(page),
		Answer:   mapRichText(richTextProp(page, propAnswer)),
	}
}

// mapRichText converts Notion spans into source-agnostic spans.
func mapRichText(spans []notionapi.RichText) []types.RichText {
	out := make([]types.RichText, 0, len(spans))
	for _, rt := range spans {
		span := types.RichText{
			Text: spanText(rt),
			Href: externalHref(rt),
		}
		if rt.Annotations != nil {
			span.Bold = rt.Annotations.Bold
			span.Italic = rt.Annotations.Italic
			span.Strikethrough = rt.Annotations.Strikethrough
			span.Underline = rt.Annotations.Underline
			span.Code = rt.Annotations.Code
		}
		if rt.Mention != nil && rt.Mention.Page != nil {
			span.MentionPageID = rt.Mention.Page.ID.String()
			span.Href = ""
		}
		out = append(out, span)
	}
	return out
}

func spanText(rt notionapi.RichText) string {
	if rt.Text != nil {
		return rt.Text.Content
	}
	return rt.PlainText
}

// externalHref returns the span's outbound link, if any. Mention hrefs
// point back into Notion and are handled through the mention path.
func externalHref(rt notionapi.RichText) string {
	if rt.Text != nil && rt.Text.Link != nil {
		return rt.Text.Link.Url
	}
	return ""
}

// mapBlocks converts the renderable Notion block kinds. Anything else
// is dropped; the renderer has no representation for it.
func mapBlocks(blocks notionapi.Blocks) []types.Block {
	var out []types.Block
	for _, b := range blocks {
		switch v := b.(type) {
		case *notionapi.ParagraphBlock:
			out = append(out, types.Block{Type: types.BlockParagraph, RichText: mapRichText(v.Paragraph.RichText)})
		case *notionapi.BulletedListItemBlock:
			out = append(out, types.Block{Type: types.BlockBulletedItem, RichText: mapRichText(v.BulletedListItem.RichText)})
		case *notionapi.NumberedListItemBlock:
			out = append(out, types.Block{Type: types.BlockNumberedItem, RichText: mapRichText(v.NumberedListItem.RichText)})
		case *notionapi.QuoteBlock:
			out = append(out, types.Block{Type: types.BlockQuote, RichText: mapRichText(v.Quote.RichText)})
		case *notionapi.CodeBlock:
			out = append(out, types.Block{
				Type:     types.BlockCode,
				RichText: mapRichText(v.Code.RichText),
				Language: v.Code.Language,
			})
		}
	}
	return out
}

// --- property accessors ---

// titleSpans returns the page's title property content, whatever the
// property is named.
func titleSpans(page notionapi.Page) []notionapi.RichText {
	for _, prop := range page.Properties {
		if title, ok := prop.(*notionapi.TitleProperty); ok {
			return title.Title
		}
	}
	return nil
}

func plainTitle(page notionapi.Page) string {
	var b strings.Builder
	for _, rt := range titleSpans(page) {
		b.WriteString(spanText(rt))
	}
	return b.String()
}

func richTextProp(page notionapi.Page, name string) []notionapi.RichText {
	if prop, ok := page.Properties[name].(*notionapi.RichTextProperty); ok {
		return prop.RichText
	}
	return nil
}

// checkboxProp reads a checkbox, treating a missing property as true so
// databases without the flag publish everything.
func checkboxProp(page notionapi.Page, name string) bool {
	if prop, ok := page.Properties[name].(*notionapi.CheckboxProperty); ok {
		return prop.Checkbox
	}
	return true
}

func selectProp(page notionapi.Page, name string) string {
	if prop, ok := page.Properties[name].(*notionapi.SelectProperty); ok {
		return prop.Select.Name
	}
	return ""
}

func numberProp(page notionapi.Page, name string) int {
	if prop, ok := page.Properties[name].(*notionapi.NumberProperty); ok {
		return int(prop.Number)
	}
	return 0
}

// relatedToProject reports whether the page's Project relation contains
// projectID. Pages without the relation property are kept; the database
// itself is assumed to be project-scoped in that case.
func relatedToProject(page notionapi.Page, projectID string) bool {
	prop, ok := page.Properties[propProject].(*notionapi.RelationProperty)
	if !ok {
		return true
	}
	for _, rel := range prop.Relation {
		if string(rel.ID) == projectID {
			return true
		}
	}
	return false
}
