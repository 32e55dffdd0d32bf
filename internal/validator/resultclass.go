// resultclass.go classifies a single search result as commercial, diy,
// content or unknown. The content-site domain check runs first and is
// final; classification never depends on other results in a batch.
package validator

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// Structural cue vocabularies for commercial detection. A result is
// commercial only when cues from at least two of the three groups are
// present; one stray keyword is never enough.
var (
	pricingCues = []string{
		"pricing", "free trial", "sign up", "signup", "get started",
		"request a demo", "book a demo", "per month", "per user",
		"subscribe", "plans",
	}
	identityCues = []string{
		"platform", "software", "app", "tool", "solution",
		"product", "api", "saas", "all in one", "built for",
	}
	accountCues = []string{
		"dashboard", "login", "log in", "account", "workspace",
		"integrations", "admin console", "single sign on",
	}
	pricingPathCues = []string{"/pricing", "/plans", "/signup", "/demo", "/trial"}
)

// minCommercialCueGroups is how many distinct cue groups a first-party
// site must exhibit to classify as commercial.
const minCommercialCueGroups = 2

// diyCues indicate tutorial / build-your-own / open-source pages.
var diyCues = []string{
	"how to build", "build your own", "tutorial", "diy",
	"open source", "github", "step by step", "from scratch",
	"self hosted", "roll your own",
}

// discussionCues indicate explanatory or discussion content.
var discussionCues = []string{
	"guide", "tips", "review", "comparison", "vs", "what is",
	"why", "how to", "explained", "best practices", "discussion",
	"thoughts", "experience",
}

// ResultClassifier labels search results. It is stateless apart from
// its immutable domain table and safe for concurrent use.
type ResultClassifier struct {
	contentDomains map[string]struct{}
	logger         logging.Logger
}

// NewResultClassifier builds a classifier from the default content-site
// table plus any extra domains from configuration.
func NewResultClassifier(logger logging.Logger, extraDomains []string) *ResultClassifier {
	domains := make(map[string]struct{}, len(defaultContentDomains)+len(extraDomains))
	for _, d := range defaultContentDomains {
		domains[strings.ToLower(d)] = struct{}{}
	}
	for _, d := range extraDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains[d] = struct{}{}
		}
	}
	return &ResultClassifier{contentDomains: domains, logger: logger}
}

// Classify labels one search result. Identical input always yields an
// identical label.
func (c *ResultClassifier) Classify(r domain.SearchResult) domain.ResultCategory {
	// Step 1: content-site domains win unconditionally.
	if host, registrable, ok := parseDomain(r.URL); ok {
		if c.isContentSite(host, registrable) {
			return domain.CategoryContent
		}
	}

	text := paddedTokenText(r.Text())
	path := urlPath(r.URL)

	// Step 2: commercial needs independent cues from two groups.
	if c.isCommercial(text, path) {
		return domain.CategoryCommercial
	}

	// Step 3: DIY, only once commercial has been ruled out.
	if containsAnyCue(text, diyCues) {
		return domain.CategoryDIY
	}

	// Step 4: discussion vocabulary, else unknown.
	if containsAnyCue(text, discussionCues) {
		return domain.CategoryContent
	}
	return domain.CategoryUnknown
}

// ClassifyAll labels a batch, one result at a time. Ratio independence
// holds by construction: each label is a function of its result alone.
func (c *ResultClassifier) ClassifyAll(results []domain.SearchResult) []domain.ResultCategory {
	out := make([]domain.ResultCategory, len(results))
	counts := make(map[domain.ResultCategory]int, 4)
	for i, r := range results {
		out[i] = c.Classify(r)
		counts[out[i]]++
	}
	c.logger.Debug("results classified",
		logging.Int("total", len(results)),
		logging.Int("commercial", counts[domain.CategoryCommercial]),
		logging.Int("diy", counts[domain.CategoryDIY]),
		logging.Int("content", counts[domain.CategoryContent]),
		logging.Int("unknown", counts[domain.CategoryUnknown]))
	return out
}

func (c *ResultClassifier) isContentSite(host, registrable string) bool {
	if _, ok := c.contentDomains[host]; ok {
		return true
	}
	if registrable != "" {
		if _, ok := c.contentDomains[registrable]; ok {
			return true
		}
	}
	return false
}

func (c *ResultClassifier) isCommercial(text, path string) bool {
	groups := 0
	if containsAnyCue(text, pricingCues) || containsAnyPath(path, pricingPathCues) {
		groups++
	}
	if containsAnyCue(text, identityCues) {
		groups++
	}
	if containsAnyCue(text, accountCues) {
		groups++
	}
	return groups >= minCommercialCueGroups
}

// parseDomain extracts the lowercased host and its registrable domain
// (eTLD+1) from a URL. An unparseable URL yields ok=false rather than
// an error; callers simply skip the domain check.
func parseDomain(raw string) (host, registrable string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", "", false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return "", "", false
	}
	host = strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, "", true
	}
	return host, d, true
}

func urlPath(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Path)
}

// paddedTokenText renders text as space-padded folded tokens so cue
// phrases match on word boundaries only.
func paddedTokenText(text string) string {
	toks := tokenize(fold(text))
	if len(toks) == 0 {
		return ""
	}
	return " " + strings.Join(toks, " ") + " "
}

func containsAnyCue(text string, cues []string) bool {
	if text == "" {
		return false
	}
	for _, cue := range cues {
		if strings.Contains(text, " "+cue+" ") {
			return true
		}
	}
	return false
}

func containsAnyPath(path string, cues []string) bool {
	if path == "" {
		return false
	}
	for _, cue := range cues {
		if strings.Contains(path, cue) {
			return true
		}
	}
	return false
}
