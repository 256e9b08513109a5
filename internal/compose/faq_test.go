package compose

import (
	"strings"
	"testing"

	"github.com/pdiddy/docsgen/pkg/types"
)

func faq(section string, order int, question, answer string) types.FAQ {
	return types.FAQ{
		PageID:   "faq-" + question,
		Section:  section,
		Order:    order,
		Question: question,
		Answer:   []types.RichText{{Text: answer}},
	}
}

// Sections appear in first-seen order; entries inside a section sort by
// ascending order value.
func TestFAQSectionAndOrder(t *testing.T) {
	faqs := []types.FAQ{
		faq("Voting", 2, "How do I vote twice?", "You cannot."),
		faq("Voting", 1, "How do I vote?", "With your keys."),
		faq("Rewards", 5, "When are rewards paid?", "Each cycle."),
	}

	got := FAQ(faqs, nil)

	iVoting := strings.Index(got, "### Voting")
	iRewards := strings.Index(got, "### Rewards")
	if iVoting < 0 || iRewards < 0 {
		t.Fatalf("missing section headings:\n%s", got)
	}
	if iVoting > iRewards {
		t.Errorf("Voting should precede Rewards:\n%s", got)
	}

	iFirst := strings.Index(got, "How do I vote?")
	iSecond := strings.Index(got, "How do I vote twice?")
	if !(iVoting < iFirst && iFirst < iSecond && iSecond < iRewards) {
		t.Errorf("entries out of order within Voting:\n%s", got)
	}
}

func TestFAQGolden(t *testing.T) {
	faqs := []types.FAQ{
		faq("Basics", 1, "What is this?", "A documentation pipeline."),
	}

	got := FAQ(faqs, nil)
	want := `### Basics

<dl>
  <dt>What is this?</dt>
  <dd>

A documentation pipeline.

  </dd>
</dl>
`
	if got != want {
		t.Errorf("FAQ() = %q, want %q", got, want)
	}
}

// Equal order values keep fetch order (stable sort).
func TestFAQStableSort(t *testing.T) {
	faqs := []types.FAQ{
		faq("S", 1, "first", "a"),
		faq("S", 1, "second", "b"),
	}

	got := FAQ(faqs, nil)
	if !(strings.Index(got, "first") < strings.Index(got, "second")) {
		t.Errorf("equal orders reordered:\n%s", got)
	}
}

// Structured blocks take precedence over the plain answer.
func TestFAQBlockAnswer(t *testing.T) {
	entry := faq("S", 1, "Steps?", "unused plain answer")
	entry.Blocks = []types.Block{
		{Type: types.BlockParagraph, RichText: []types.RichText{{Text: "Two steps:"}}},
		{Type: types.BlockBulletedItem, RichText: []types.RichText{{Text: "install"}}},
		{Type: types.BlockBulletedItem, RichText: []types.RichText{{Text: "run"}}},
	}

	got := FAQ([]types.FAQ{entry}, nil)

	if !strings.Contains(got, "Two steps:\n\n- install\n- run") {
		t.Errorf("blocks not rendered:\n%s", got)
	}
	if strings.Contains(got, "unused plain answer") {
		t.Errorf("plain answer used despite blocks:\n%s", got)
	}
}

func TestFAQEmpty(t *testing.T) {
	if got := FAQ(nil, nil); got != "" {
		t.Errorf("FAQ(nil) = %q, want empty", got)
	}
}
