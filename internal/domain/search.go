// Package domain defines the core types shared by the validation engine.
package domain

// SearchResult is one record returned by an external search provider.
// All fields are optional; the engine never mutates a result.
type SearchResult struct {
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Text returns the matchable text of the result (title plus snippet).
func (r SearchResult) Text() string {
	switch {
	case r.Title == "":
		return r.Snippet
	case r.Snippet == "":
		return r.Title
	default:
		return r.Title + " " + r.Snippet
	}
}

// ResultCategory labels what kind of page a search result points at.
type ResultCategory string

// Result categories. ContentSite precedence: a recognized content-site
// domain always classifies as CategoryContent, before any other check.
const (
	CategoryCommercial ResultCategory = "commercial"
	CategoryDIY        ResultCategory = "diy"
	CategoryContent    ResultCategory = "content"
	CategoryUnknown    ResultCategory = "unknown"
)

// QueryIntent names one of the four query buckets.
type QueryIntent string

// Query intents in generation order.
const (
	IntentComplaint  QueryIntent = "complaint"
	IntentWorkaround QueryIntent = "workaround"
	IntentTool       QueryIntent = "tool"
	IntentBlog       QueryIntent = "blog"
)

// QueryBuckets holds the generated queries for all four intents.
// Buckets are disjoint: no two buckets share a normalized query string.
type QueryBuckets struct {
	Complaint  []string `json:"complaint"`
	Workaround []string `json:"workaround"`
	Tool       []string `json:"tool"`
	Blog       []string `json:"blog"`
}

// Bucket returns the queries for a single intent.
func (b QueryBuckets) Bucket(intent QueryIntent) []string {
	switch intent {
	case IntentComplaint:
		return b.Complaint
	case IntentWorkaround:
		return b.Workaround
	case IntentTool:
		return b.Tool
	case IntentBlog:
		return b.Blog
	default:
		return nil
	}
}

// All returns every query across the four buckets, in bucket order.
func (b QueryBuckets) All() []string {
	out := make([]string, 0, len(b.Complaint)+len(b.Workaround)+len(b.Tool)+len(b.Blog))
	out = append(out, b.Complaint...)
	out = append(out, b.Workaround...)
	out = append(out, b.Tool...)
	out = append(out, b.Blog...)
	return out
}
