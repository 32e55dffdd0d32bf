//nolint:testpackage // Testing internal pipeline stages requires same package access
package validator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

func newTestExtractor(t *testing.T) *SignalExtractor {
	t.Helper()
	logger := logging.NewNop()
	return NewSignalExtractor(logger, NewNormalizer(logger), ExtractorOptions{})
}

func TestSignalExtractor_PriorityFirstMatchWins(t *testing.T) {
	e := newTestExtractor(t)

	// Intensity and complaint vocabulary in the same document: the
	// document counts once, under intensity only.
	results := []domain.SearchResult{
		{
			Title:   "Expense reports are a nightmare",
			Snippet: "So frustrating and tedious every single month",
			URL:     "https://example.com/post/1",
		},
	}

	counts, prov := e.Extract(results)
	want := domain.SignalCounts{IntensityCount: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}
	if len(prov[domain.SignalIntensity]) != 1 {
		t.Errorf("expected intensity provenance, got %v", prov)
	}
	if len(prov[domain.SignalComplaint]) != 0 {
		t.Errorf("document must not also count as complaint: %v", prov)
	}
}

func TestSignalExtractor_ExcludedPhraseContext(t *testing.T) {
	e := newTestExtractor(t)

	results := []domain.SearchResult{
		{
			Title:   "Automation bias in clinical decision making",
			Snippet: "A study of automation bias among radiologists",
			URL:     "https://example.org/study",
		},
	}

	counts, _ := e.Extract(results)
	if !counts.IsZero() {
		t.Errorf("automation inside excluded context must not count, got %+v", counts)
	}
}

func TestSignalExtractor_RequiredContext(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name string
		text string
		want domain.SignalCounts
	}{
		{
			name: "bare context keyword does not match",
			text: "This quarter was critical for the team",
			want: domain.SignalCounts{},
		},
		{
			name: "keyword with required phrase matches",
			text: "We have a critical issue with deployments",
			want: domain.SignalCounts{IntensityCount: 1},
		},
		{
			name: "blocking needs its phrase",
			text: "The blocking call returned early",
			want: domain.SignalCounts{},
		},
		{
			name: "blocking issue matches",
			text: "This is a blocking issue for the release",
			want: domain.SignalCounts{IntensityCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, _ := e.Extract([]domain.SearchResult{{Snippet: tt.text}})
			if counts != tt.want {
				t.Errorf("counts = %+v, want %+v", counts, tt.want)
			}
		})
	}
}

func TestSignalExtractor_CategoriesAcrossBatch(t *testing.T) {
	e := newTestExtractor(t)

	results := []domain.SearchResult{
		{Title: "I hate doing payroll", URL: "https://a.example/1"},
		{Title: "Monthly close is so frustrating", URL: "https://a.example/2"},
		{Title: "My spreadsheet to work around the export limit", URL: "https://a.example/3"},
		{Title: "Completely unrelated gardening article", URL: "https://a.example/4"},
		{URL: "https://a.example/blank"}, // blank text, skipped
	}

	counts, prov := e.Extract(results)
	want := domain.SignalCounts{IntensityCount: 1, ComplaintCount: 1, WorkaroundCount: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}

	wantProv := domain.SignalProvenance{
		domain.SignalIntensity:  {"https://a.example/1"},
		domain.SignalComplaint:  {"https://a.example/2"},
		domain.SignalWorkaround: {"https://a.example/3"},
	}
	if diff := cmp.Diff(wantProv, prov); diff != "" {
		t.Errorf("provenance mismatch (-want +got):\n%s", diff)
	}
}

func TestSignalExtractor_Deterministic(t *testing.T) {
	e := newTestExtractor(t)

	results := []domain.SearchResult{
		{Title: "Payroll is a nightmare", URL: "https://a.example/1"},
		{Title: "Tedious manual process", URL: "https://a.example/2"},
	}

	first, _ := e.Extract(results)
	second, _ := e.Extract(results)
	if first != second {
		t.Errorf("extraction not deterministic: %+v vs %+v", first, second)
	}

	// Order of unrelated co-results must not change a document's category.
	reversed := []domain.SearchResult{results[1], results[0]}
	third, _ := e.Extract(reversed)
	if first != third {
		t.Errorf("extraction depends on batch order: %+v vs %+v", first, third)
	}
}

func TestSignalExtractor_ExtraKeywords(t *testing.T) {
	logger := logging.NewNop()
	e := NewSignalExtractor(logger, NewNormalizer(logger), ExtractorOptions{
		ExtraKeywords: map[domain.SignalCategory][]string{
			domain.SignalComplaint: {"infuriating"},
		},
	})

	counts, _ := e.Extract([]domain.SearchResult{{Snippet: "the login flow is infuriating"}})
	want := domain.SignalCounts{ComplaintCount: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}
}
