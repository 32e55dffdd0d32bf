//nolint:testpackage // Testing internal pipeline stages requires same package access
package validator

import (
	"testing"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

func newTestResultClassifier() *ResultClassifier {
	return NewResultClassifier(logging.NewNop(), nil)
}

func TestResultClassifier_ContentSitePrecedence(t *testing.T) {
	c := newTestResultClassifier()

	tests := []struct {
		name string
		r    domain.SearchResult
	}{
		{
			name: "linkedin post full of commercial keywords",
			r: domain.SearchResult{
				Title:   "Best Platform - Pricing and Plans | LinkedIn",
				Snippet: "Sign up for a free trial of our software. Login to your dashboard.",
				URL:     "https://www.linkedin.com/posts/acme-12345",
			},
		},
		{
			name: "reddit thread",
			r: domain.SearchResult{
				Title: "What tool do you use for invoicing?",
				URL:   "https://reddit.com/r/smallbusiness/comments/abc",
			},
		},
		{
			name: "hacker news via subdomain",
			r: domain.SearchResult{
				Title: "Show HN: I built an invoicing app",
				URL:   "https://news.ycombinator.com/item?id=123",
			},
		},
		{
			name: "review aggregator",
			r: domain.SearchResult{
				Title: "Top 10 Invoicing Tools Compared",
				URL:   "https://www.g2.com/categories/invoicing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.r); got != domain.CategoryContent {
				t.Errorf("Classify() = %s, want %s", got, domain.CategoryContent)
			}
		})
	}
}

func TestResultClassifier_Commercial(t *testing.T) {
	c := newTestResultClassifier()

	r := domain.SearchResult{
		Title:   "Acme - Invoicing Software for Small Teams",
		Snippet: "Simple pricing. Start your free trial today.",
		URL:     "https://acme-invoicing.com",
	}
	if got := c.Classify(r); got != domain.CategoryCommercial {
		t.Errorf("Classify() = %s, want %s", got, domain.CategoryCommercial)
	}
}

func TestResultClassifier_SingleCueNotCommercial(t *testing.T) {
	c := newTestResultClassifier()

	// One identity keyword with no pricing or account cue is not enough
	// structural evidence of a first-party product site.
	r := domain.SearchResult{
		Title: "Thoughts on picking a project management tool",
		URL:   "https://example-consulting.com/notes",
	}
	if got := c.Classify(r); got == domain.CategoryCommercial {
		t.Errorf("single keyword classified as commercial")
	}
}

func TestResultClassifier_PricingPathCue(t *testing.T) {
	c := newTestResultClassifier()

	r := domain.SearchResult{
		Title: "Acme Platform",
		URL:   "https://acme.io/pricing",
	}
	if got := c.Classify(r); got != domain.CategoryCommercial {
		t.Errorf("Classify() = %s, want %s (identity cue plus pricing path)", got, domain.CategoryCommercial)
	}
}

func TestResultClassifier_DIY(t *testing.T) {
	c := newTestResultClassifier()

	tests := []domain.SearchResult{
		{
			Title: "How to build your own invoice generator in Python",
			URL:   "https://blog.example.dev/invoice-generator",
		},
		{
			Title:   "An open source expense tracker",
			Snippet: "Self hosted, MIT licensed",
			URL:     "https://example.io/expense-tracker",
		},
	}
	for _, r := range tests {
		if got := c.Classify(r); got != domain.CategoryDIY {
			t.Errorf("Classify(%q) = %s, want %s", r.Title, got, domain.CategoryDIY)
		}
	}
}

func TestResultClassifier_ContentVocabularyAndUnknown(t *testing.T) {
	c := newTestResultClassifier()

	content := domain.SearchResult{
		Title: "A complete guide to invoice management",
		URL:   "https://example-agency.com/resources",
	}
	if got := c.Classify(content); got != domain.CategoryContent {
		t.Errorf("Classify() = %s, want %s", got, domain.CategoryContent)
	}

	unknown := domain.SearchResult{
		Title: "Quarterly results announced",
		URL:   "https://example-corp.com/ir/q3",
	}
	if got := c.Classify(unknown); got != domain.CategoryUnknown {
		t.Errorf("Classify() = %s, want %s", got, domain.CategoryUnknown)
	}
}

func TestResultClassifier_UnparseableURL(t *testing.T) {
	c := newTestResultClassifier()

	// A URL that cannot be parsed skips the domain check instead of
	// failing; the text still classifies.
	r := domain.SearchResult{
		Title: "A complete guide to invoice management",
		URL:   "://not a url",
	}
	if got := c.Classify(r); got != domain.CategoryContent {
		t.Errorf("Classify() = %s, want %s", got, domain.CategoryContent)
	}

	empty := domain.SearchResult{Title: "Quarterly results announced"}
	if got := c.Classify(empty); got != domain.CategoryUnknown {
		t.Errorf("Classify() = %s, want %s", got, domain.CategoryUnknown)
	}
}

func TestResultClassifier_ExtraDomains(t *testing.T) {
	c := NewResultClassifier(logging.NewNop(), []string{"my-forum.example"})

	r := domain.SearchResult{
		Title: "Acme - Invoicing Software. Pricing and free trial.",
		URL:   "https://my-forum.example/t/acme-review",
	}
	if got := c.Classify(r); got != domain.CategoryContent {
		t.Errorf("Classify() = %s, want %s (configured content domain)", got, domain.CategoryContent)
	}
}

func TestResultClassifier_BatchIndependence(t *testing.T) {
	c := newTestResultClassifier()

	r := domain.SearchResult{
		Title: "A complete guide to invoice management",
		URL:   "https://example-agency.com/resources",
	}
	alone := c.Classify(r)

	batch := []domain.SearchResult{
		{Title: "Acme - Invoicing Software. Pricing, free trial.", URL: "https://acme.io"},
		r,
		{Title: "How to build your own tracker", URL: "https://diy.example"},
	}
	labels := c.ClassifyAll(batch)
	if labels[1] != alone {
		t.Errorf("classification depends on batch context: %s vs %s", labels[1], alone)
	}
}
