package validator

import "github.com/jonesrussell/market-validator/internal/domain"

// signalKeyword is one lexicon entry. Term is matched by stem; Requires
// lists context phrases of which at least one must be present for the
// match to count; Excludes lists phrases whose presence suppresses the
// match (for example "automation bias" must not count as "automation").
type signalKeyword struct {
	Term     string
	Requires []string
	Excludes []string
}

// signalRule groups the keywords of one category. Rules are evaluated
// in slice order, which encodes the matching priority
// intensity > complaint > workaround.
type signalRule struct {
	Category domain.SignalCategory
	Keywords []signalKeyword
}

// defaultSignalRules is the built-in demand-signal lexicon. It is a
// tunable data asset, not logic: entries may be extended through
// configuration but never mutated at runtime.
func defaultSignalRules() []signalRule {
	return []signalRule{
		{
			Category: domain.SignalIntensity,
			Keywords: []signalKeyword{
				{Term: "nightmare"},
				{Term: "unbearable"},
				{Term: "desperate"},
				{Term: "hate"},
				{Term: "impossible"},
				{Term: "urgent"},
				{Term: "fed up"},
				{Term: "waste hours"},
				{Term: "drives me crazy"},
				{Term: "killing", Requires: []string{"killing me", "killing us", "killing our"}},
				{Term: "critical", Requires: []string{
					"critical issue", "critical problem", "mission critical", "business critical",
				}},
				{Term: "severe", Requires: []string{"severe problem", "severe pain", "severe issue"}},
				{Term: "blocking", Requires: []string{
					"blocking me", "blocking us", "blocking our", "blocking issue",
				}},
			},
		},
		{
			Category: domain.SignalComplaint,
			Keywords: []signalKeyword{
				{Term: "frustrating"},
				{Term: "annoying"},
				{Term: "tedious"},
				{Term: "painful"},
				{Term: "hassle"},
				{Term: "struggle"},
				{Term: "struggling"},
				{Term: "complain"},
				{Term: "complaint"},
				{Term: "time consuming"},
				{Term: "error prone"},
				{Term: "clunky"},
				{Term: "cumbersome"},
			},
		},
		{
			Category: domain.SignalWorkaround,
			Keywords: []signalKeyword{
				{Term: "workaround"},
				{Term: "work around"},
				{Term: "hack"},
				{Term: "hacky"},
				{Term: "manually"},
				{Term: "manual process"},
				{Term: "spreadsheet"},
				{Term: "duct tape"},
				{Term: "copy paste"},
				{Term: "macro"},
				{Term: "script"},
				{Term: "automate", Excludes: []string{"automation bias"}},
				{Term: "automation", Excludes: []string{"automation bias"}},
			},
		},
	}
}
