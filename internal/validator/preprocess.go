package validator

import "strings"

// Preprocessed is the sibling view of a text used for keyword matching:
// raw tokens, their stems, and stem n-grams. Unlike Normalize output it
// keeps stopwords and duplicates, because phrase context checks (for
// example "automation bias") need the original word sequence.
type Preprocessed struct {
	Tokens   []string
	Stems    []string
	Bigrams  []string
	Trigrams []string

	// StemText is the stems joined and padded with single spaces, the
	// form the Aho-Corasick matcher runs over.
	StemText string

	// phrases indexes all stem uni/bi/trigrams for O(1) presence checks.
	phrases map[string]struct{}
}

// Preprocess tokenizes and stems a raw text. The result is immutable;
// identical input always yields an identical result.
func (n *Normalizer) Preprocess(text string) *Preprocessed {
	tokens := tokenize(fold(text))
	stems := make([]string, len(tokens))
	for i, tok := range tokens {
		stems[i] = stem(tok)
	}

	p := &Preprocessed{
		Tokens:  tokens,
		Stems:   stems,
		phrases: make(map[string]struct{}, len(stems)*3),
	}
	for i, s := range stems {
		p.phrases[s] = struct{}{}
		if i+1 < len(stems) {
			bi := s + " " + stems[i+1]
			p.Bigrams = append(p.Bigrams, bi)
			p.phrases[bi] = struct{}{}
		}
		if i+2 < len(stems) {
			tri := s + " " + stems[i+1] + " " + stems[i+2]
			p.Trigrams = append(p.Trigrams, tri)
			p.phrases[tri] = struct{}{}
		}
	}
	if len(stems) > 0 {
		p.StemText = " " + strings.Join(stems, " ") + " "
	}
	return p
}

// HasPhrase reports whether a stemmed phrase of up to three words
// occurs in the text.
func (p *Preprocessed) HasPhrase(stemmedPhrase string) bool {
	_, ok := p.phrases[stemmedPhrase]
	return ok
}

// Empty reports whether the text produced no tokens at all.
func (p *Preprocessed) Empty() bool {
	return len(p.Tokens) == 0
}

// stemPhrase stems every word of a configured phrase so it can be
// compared against Preprocessed stems.
func stemPhrase(phrase string) string {
	toks := tokenize(fold(phrase))
	stems := make([]string, len(toks))
	for i, t := range toks {
		stems[i] = stem(t)
	}
	return strings.Join(stems, " ")
}
