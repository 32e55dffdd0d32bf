// signals.go implements demand-signal extraction over search results,
// using an Aho-Corasick automaton for single-pass keyword matching.
package validator

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// compiledKeyword is a lexicon entry with all phrases pre-stemmed.
type compiledKeyword struct {
	term     string
	pattern  string // space-padded stem phrase fed to the automaton
	requires []string
	excludes []string
}

// compiledRule is one category's compiled keyword list.
type compiledRule struct {
	category domain.SignalCategory
	keywords []compiledKeyword
}

type keywordRef struct {
	rule    int
	keyword int
}

// SignalExtractor produces per-category evidence counts from search
// results. Each result contributes to at most one category, chosen by
// the fixed priority intensity > complaint > workaround, so the three
// counts stay statistically independent.
type SignalExtractor struct {
	norm          *Normalizer
	rules         []compiledRule
	matcher       *ahocorasick.Matcher
	patterns      []string
	patternRefs   map[string][]keywordRef
	globalExclude []string
	logger        logging.Logger
}

// ExtractorOptions extends the built-in lexicon. Extra entries are
// merged at construction; the extractor is immutable afterward.
type ExtractorOptions struct {
	// ExtraKeywords adds plain keywords per category.
	ExtraKeywords map[domain.SignalCategory][]string
	// ExtraExcludedPhrases suppress any keyword match when present.
	ExtraExcludedPhrases []string
}

// NewSignalExtractor compiles the lexicon and builds the automaton.
func NewSignalExtractor(logger logging.Logger, norm *Normalizer, opts ExtractorOptions) *SignalExtractor {
	e := &SignalExtractor{
		norm:        norm,
		patternRefs: make(map[string][]keywordRef),
		logger:      logger,
	}
	for _, phrase := range opts.ExtraExcludedPhrases {
		if p := stemPhrase(phrase); p != "" {
			e.globalExclude = append(e.globalExclude, p)
		}
	}

	for ri, rule := range defaultSignalRules() {
		cr := compiledRule{category: rule.Category}
		keywords := rule.Keywords
		for _, extra := range opts.ExtraKeywords[rule.Category] {
			keywords = append(keywords, signalKeyword{Term: extra})
		}
		for _, kw := range keywords {
			ck := compileKeyword(kw)
			if ck.pattern == "" {
				continue
			}
			ref := keywordRef{rule: ri, keyword: len(cr.keywords)}
			if _, seen := e.patternRefs[ck.pattern]; !seen {
				e.patterns = append(e.patterns, ck.pattern)
			}
			e.patternRefs[ck.pattern] = append(e.patternRefs[ck.pattern], ref)
			cr.keywords = append(cr.keywords, ck)
		}
		e.rules = append(e.rules, cr)
	}

	if len(e.patterns) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(e.patterns)
	}

	logger.Debug("signal extractor initialized",
		logging.Int("categories", len(e.rules)),
		logging.Int("patterns", len(e.patterns)))
	return e
}

func compileKeyword(kw signalKeyword) compiledKeyword {
	p := stemPhrase(kw.Term)
	if p == "" {
		return compiledKeyword{}
	}
	ck := compiledKeyword{term: kw.Term, pattern: " " + p + " "}
	for _, r := range kw.Requires {
		if sp := stemPhrase(r); sp != "" {
			ck.requires = append(ck.requires, sp)
		}
	}
	for _, x := range kw.Excludes {
		if sp := stemPhrase(x); sp != "" {
			ck.excludes = append(ck.excludes, sp)
		}
	}
	return ck
}

// Extract counts demand signals across a batch of results. Blank
// results are skipped. The returned provenance maps each category to
// the URLs that contributed to it, for debugging only.
func (e *SignalExtractor) Extract(results []domain.SearchResult) (domain.SignalCounts, domain.SignalProvenance) {
	var counts domain.SignalCounts
	prov := make(domain.SignalProvenance)

	for _, r := range results {
		text := r.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		cat, ok := e.categorize(e.norm.Preprocess(text))
		if !ok {
			continue
		}
		switch cat {
		case domain.SignalIntensity:
			counts.IntensityCount++
		case domain.SignalComplaint:
			counts.ComplaintCount++
		case domain.SignalWorkaround:
			counts.WorkaroundCount++
		}
		if r.URL != "" {
			prov[cat] = append(prov[cat], r.URL)
		}
	}

	e.logger.Debug("signals extracted",
		logging.Int("results", len(results)),
		logging.Int("intensity", counts.IntensityCount),
		logging.Int("complaint", counts.ComplaintCount),
		logging.Int("workaround", counts.WorkaroundCount))
	return counts, prov
}

// categorize assigns one result's text to the first matching category
// in priority order, or reports no match.
func (e *SignalExtractor) categorize(pre *Preprocessed) (domain.SignalCategory, bool) {
	if e.matcher == nil || pre.StemText == "" {
		return "", false
	}

	hit := make(map[keywordRef]struct{})
	for _, idx := range e.matcher.Match([]byte(pre.StemText)) {
		if idx < 0 || idx >= len(e.patterns) {
			continue
		}
		for _, ref := range e.patternRefs[e.patterns[idx]] {
			hit[ref] = struct{}{}
		}
	}
	if len(hit) == 0 {
		return "", false
	}

	for ri, rule := range e.rules {
		for ki, kw := range rule.keywords {
			if _, ok := hit[keywordRef{rule: ri, keyword: ki}]; !ok {
				continue
			}
			if e.excluded(pre, kw) || !required(pre, kw) {
				continue
			}
			return rule.category, true
		}
	}
	return "", false
}

// excluded reports whether any excluded-phrase context is present.
func (e *SignalExtractor) excluded(pre *Preprocessed, kw compiledKeyword) bool {
	for _, x := range kw.excludes {
		if pre.HasPhrase(x) {
			return true
		}
	}
	for _, x := range e.globalExclude {
		if pre.HasPhrase(x) {
			return true
		}
	}
	return false
}

// required reports whether the keyword's context requirement is met.
// Keywords without requirements always pass.
func required(pre *Preprocessed, kw compiledKeyword) bool {
	if len(kw.requires) == 0 {
		return true
	}
	for _, r := range kw.requires {
		if pre.HasPhrase(r) {
			return true
		}
	}
	return false
}
