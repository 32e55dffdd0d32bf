// Package validator implements the deterministic market-validation
// engine: text normalization, signal extraction, query generation,
// result classification, severity scoring, leverage detection and the
// final validation synchronizer.
package validator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/jonesrussell/market-validator/internal/logging"
)

// stopwords filtered during normalization. Negation words are kept
// separately because they flip the meaning of a problem statement.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "but": {}, "by": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {},
	"for": {}, "from": {}, "had": {}, "has": {}, "have": {}, "he": {},
	"her": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "me": {}, "my": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "so": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "them": {}, "they": {}, "this": {}, "to": {},
	"too": {}, "very": {}, "was": {}, "we": {}, "were": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "while": {},
	"who": {}, "why": {}, "will": {}, "with": {}, "would": {},
	"you": {}, "your": {},
}

// negations are retained even though most stopword lists drop them.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "can't": {}, "cant": {}, "cannot": {},
}

// fillers are frequency words that add no meaning to a problem phrase.
var fillers = map[string]struct{}{
	"every": {}, "day": {}, "daily": {}, "everyday": {},
	"always": {}, "constantly": {},
}

// Normalizer is the deterministic tokenize/lemmatize pipeline. It has
// no state beyond a logger and is safe for concurrent use.
type Normalizer struct {
	logger logging.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(logger logging.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize runs the full pipeline: case-fold, tokenize, drop
// stopwords (keeping negations), lemmatize, drop filler words,
// deduplicate preserving first occurrence, join with single spaces.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x),
// and its output never contains duplicate tokens. Empty or
// whitespace-only input yields the empty string.
func (n *Normalizer) Normalize(text string) string {
	tokens := tokenize(fold(text))
	if len(tokens) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isStopword(tok) || isFiller(tok) {
			continue
		}
		lemma := lemmatize(tok)
		// Lemmas are re-checked so a plural collapsing onto a stopword
		// or filler cannot survive one pass and vanish on the next.
		if lemma == "" || isStopword(lemma) || isFiller(lemma) {
			continue
		}
		if _, dup := seen[lemma]; dup {
			continue
		}
		seen[lemma] = struct{}{}
		out = append(out, lemma)
	}
	return strings.Join(out, " ")
}

// fold lowercases text with Unicode case folding.
func fold(text string) string {
	return cases.Fold().String(text)
}

// tokenize splits folded text into word tokens. Letters, digits and
// word-internal apostrophes are kept; everything else separates.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, strings.Trim(b.String(), "'"))
			b.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			b.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()

	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isStopword(tok string) bool {
	if _, neg := negations[tok]; neg {
		return false
	}
	_, ok := stopwords[tok]
	return ok
}

func isFiller(tok string) bool {
	_, ok := fillers[tok]
	return ok
}

// lemmatize reduces a token to its base form, preferring the shorter
// of the verb-form and noun-form lemma. Tokens with apostrophes
// (contractions) are left alone.
func lemmatize(tok string) string {
	if strings.ContainsRune(tok, '\'') {
		return tok
	}
	v := verbLemma(tok)
	n := nounLemma(tok)
	if len(v) <= len(n) {
		return v
	}
	return n
}

// stem is the matching form of a token: its lemma with a trailing "e"
// stripped, so that "waste", "wasting" and "wasted" all share "wast".
// Used by the signal extractor, never in user-visible output.
func stem(tok string) string {
	l := lemmatize(tok)
	if len(l) > 3 && strings.HasSuffix(l, "e") {
		return l[:len(l)-1]
	}
	return l
}

// Length guards below keep short words intact ("sing", "bed") and make
// the lemma a fixed point: no rule ever applies twice to one word.
func verbLemma(w string) string {
	switch {
	case strings.HasSuffix(w, "ying") && len(w) > 5:
		return w[:len(w)-4] + "y"
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return undouble(w[:len(w)-3])
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		return undouble(w[:len(w)-2])
	default:
		return pluralLemma(w)
	}
}

func nounLemma(w string) string {
	return pluralLemma(w)
}

func pluralLemma(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && len(w) > 3 &&
		!strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is"):
		return w[:len(w)-1]
	default:
		return w
	}
}

// undouble collapses a doubled trailing consonant ("runn" -> "run"),
// except for l, s and z where English keeps the double letter.
func undouble(w string) string {
	if len(w) < 3 {
		return w
	}
	last := w[len(w)-1]
	if last != w[len(w)-2] {
		return w
	}
	switch last {
	case 'l', 's', 'z':
		return w
	}
	return w[:len(w)-1]
}
