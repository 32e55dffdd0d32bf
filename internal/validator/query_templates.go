package validator

import "github.com/jonesrussell/market-validator/internal/domain"

// bucketBound is the fixed (min, max) query count for one bucket.
type bucketBound struct {
	Min int
	Max int
}

// defaultBucketBounds are the fixed per-bucket size bounds.
var defaultBucketBounds = map[domain.QueryIntent]bucketBound{
	domain.IntentComplaint:  {Min: 3, Max: 4},
	domain.IntentWorkaround: {Min: 3, Max: 4},
	domain.IntentTool:       {Min: 2, Max: 3},
	domain.IntentBlog:       {Min: 2, Max: 3},
}

// queryIntents is the fixed bucket generation order.
var queryIntents = []domain.QueryIntent{
	domain.IntentComplaint,
	domain.IntentWorkaround,
	domain.IntentTool,
	domain.IntentBlog,
}

// defaultQueryTemplates interpolate the normalized problem phrase (%s).
// Each template carries one distinguishing modifier so the four buckets
// probe disjoint intents; no two buckets may render the same string.
var defaultQueryTemplates = map[domain.QueryIntent][]string{
	domain.IntentComplaint: {
		"%s frustrating",
		"%s wasting time",
		"%s annoying",
		"why is %s so difficult",
	},
	domain.IntentWorkaround: {
		"how to automate %s",
		"%s workaround",
		"%s manual process",
		"%s spreadsheet template",
	},
	domain.IntentTool: {
		"%s tool",
		"%s software",
		"best tool for %s",
	},
	domain.IntentBlog: {
		"%s best practices",
		"how i handle %s",
		"%s guide",
	},
}

// emotionalModifiers are stripped when computing a query's core for the
// intra-bucket diversity pass: two queries that differ only by one of
// these are near-duplicates and only the first survives.
var emotionalModifiers = []string{
	"frustrating",
	"annoying",
	"so difficult",
	"so hard",
	"painful",
	"terrible",
	"awful",
}
