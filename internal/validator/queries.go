// queries.go implements the template-bounded search query generator.
package validator

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// QueryGenerator renders the four query buckets for a problem phrase.
// Templates and bounds are fixed at construction; generation is a pure
// function of the input text.
type QueryGenerator struct {
	norm      *Normalizer
	templates map[domain.QueryIntent][]string
	bounds    map[domain.QueryIntent]bucketBound
	logger    logging.Logger
}

// NewQueryGenerator creates a generator with the default templates.
func NewQueryGenerator(logger logging.Logger, norm *Normalizer) *QueryGenerator {
	return newQueryGenerator(logger, norm, defaultQueryTemplates, defaultBucketBounds)
}

func newQueryGenerator(
	logger logging.Logger,
	norm *Normalizer,
	templates map[domain.QueryIntent][]string,
	bounds map[domain.QueryIntent]bucketBound,
) *QueryGenerator {
	return &QueryGenerator{norm: norm, templates: templates, bounds: bounds, logger: logger}
}

// Generate normalizes the problem text and renders all four buckets.
// Buckets are disjoint, deduplicated, capped at their MAX bound and
// pruned for near-duplicates; a bucket below its MIN bound is returned
// as-is with a warning, never padded with invented queries.
func (g *QueryGenerator) Generate(problemText string) domain.QueryBuckets {
	phrase := g.norm.Normalize(problemText)
	if phrase == "" {
		g.logger.Warn("query generation skipped: problem text normalized to empty")
		return domain.QueryBuckets{}
	}

	var buckets domain.QueryBuckets
	seen := make(map[string]struct{})
	for _, intent := range queryIntents {
		queries := g.generateBucket(intent, phrase, seen)
		switch intent {
		case domain.IntentComplaint:
			buckets.Complaint = queries
		case domain.IntentWorkaround:
			buckets.Workaround = queries
		case domain.IntentTool:
			buckets.Tool = queries
		case domain.IntentBlog:
			buckets.Blog = queries
		}
	}
	return buckets
}

// generateBucket renders one bucket. The seen set spans all buckets so
// an identical string can never appear twice across the four intents.
func (g *QueryGenerator) generateBucket(
	intent domain.QueryIntent,
	phrase string,
	seen map[string]struct{},
) []string {
	bound := g.bounds[intent]
	templates := g.templates[intent]

	queries := make([]string, 0, len(templates))
	for _, tpl := range templates {
		q := strings.TrimSpace(fmt.Sprintf(tpl, phrase))
		key := canonicalQuery(q)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		queries = append(queries, q)
		if bound.Max > 0 && len(queries) == bound.Max {
			break
		}
	}

	queries = pruneNearDuplicates(queries)

	if len(queries) < bound.Min {
		g.logger.Warn("insufficient query templates for bucket",
			logging.String("intent", string(intent)),
			logging.Int("have", len(queries)),
			logging.Int("min", bound.Min))
	}
	return queries
}

// canonicalQuery is the case- and whitespace-insensitive dedup key.
func canonicalQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// pruneNearDuplicates keeps only the first query per emotional core.
// The bucket is never padded back up afterward.
func pruneNearDuplicates(queries []string) []string {
	kept := make([]string, 0, len(queries))
	cores := make(map[string]struct{}, len(queries))
	for _, q := range queries {
		core := queryCore(q)
		if _, dup := cores[core]; dup {
			continue
		}
		cores[core] = struct{}{}
		kept = append(kept, q)
	}
	return kept
}

// queryCore strips the fixed emotional modifiers from a query.
func queryCore(q string) string {
	core := " " + canonicalQuery(q) + " "
	for _, mod := range emotionalModifiers {
		core = strings.ReplaceAll(core, " "+mod+" ", " ")
	}
	return strings.TrimSpace(core)
}
