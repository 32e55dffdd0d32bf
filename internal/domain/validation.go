package domain

import "time"

// ProblemValidity says whether the evidence supports the problem being real.
type ProblemValidity string

// Problem validity values.
const (
	ProblemReal ProblemValidity = "REAL"
	ProblemWeak ProblemValidity = "WEAK"
)

// LeveragePresence says whether any leverage flag fired.
type LeveragePresence string

// Leverage presence values.
const (
	LeveragePresent LeveragePresence = "PRESENT"
	LeverageNone    LeveragePresence = "NONE"
)

// ValidationClass is the final outcome of an evaluation.
type ValidationClass string

// Validation classes.
const (
	StrongFoundation    ValidationClass = "STRONG_FOUNDATION"
	RealProblemWeakEdge ValidationClass = "REAL_PROBLEM_WEAK_EDGE"
	WeakFoundation      ValidationClass = "WEAK_FOUNDATION"
)

// ValidationState is the synchronized outcome: a pure function of the
// problem level and the fired leverage flags. Market context is carried
// elsewhere on the report and never participates here.
type ValidationState struct {
	ProblemValidity  ProblemValidity  `json:"problem_validity"`
	LeveragePresence LeveragePresence `json:"leverage_presence"`
	ValidationClass  ValidationClass  `json:"validation_class"`
}

// EvaluationRequest is the full input for one evaluation: the problem
// statement, the search results gathered by the external provider, and
// the intake-validated solution facts plus market context.
type EvaluationRequest struct {
	ProblemText string         `json:"problem_text" yaml:"problem_text"`
	Results     []SearchResult `json:"results"      yaml:"results"`
	Facts       LeverageFacts  `json:"facts"        yaml:"facts"`
	Market      MarketContext  `json:"market"       yaml:"market"`
}

// EvaluationReport is the complete output of one evaluation. Reports
// are built fresh per request and never persisted by the engine.
type EvaluationReport struct {
	ID          string `json:"id"`
	ProblemText string `json:"problem_text"`

	Queries    QueryBuckets     `json:"queries"`
	Categories []ResultCategory `json:"categories,omitempty"`

	Signals      SignalCounts     `json:"signals"`
	SignalLevels SignalLevels     `json:"signal_levels"`
	Provenance   SignalProvenance `json:"provenance,omitempty"`

	ProblemLevel ProblemLevel   `json:"problem_level"`
	Leverage     []LeverageFlag `json:"leverage"`
	Validation   ValidationState `json:"validation"`

	// Market context rides along for narration only.
	Market MarketContext `json:"market"`

	Narrative        string    `json:"narrative,omitempty"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}
