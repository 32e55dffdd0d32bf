package domain

// SignalCategory names one of the three demand-signal buckets.
type SignalCategory string

// Signal categories in priority order: a result that matches more than
// one category is counted only under the highest-priority match.
const (
	SignalIntensity  SignalCategory = "intensity"
	SignalComplaint  SignalCategory = "complaint"
	SignalWorkaround SignalCategory = "workaround"
)

// SignalCategories lists the categories in matching priority order.
var SignalCategories = []SignalCategory{SignalIntensity, SignalComplaint, SignalWorkaround}

// SignalCounts holds per-category evidence counts extracted from a
// batch of search results. Counts are non-negative; each result
// contributes to at most one category.
type SignalCounts struct {
	IntensityCount  int `json:"intensity_count"`
	ComplaintCount  int `json:"complaint_count"`
	WorkaroundCount int `json:"workaround_count"`
}

// IsZero reports whether no signal was observed at all.
func (s SignalCounts) IsZero() bool {
	return s.IntensityCount == 0 && s.ComplaintCount == 0 && s.WorkaroundCount == 0
}

// Count returns the count for a single category.
func (s SignalCounts) Count(cat SignalCategory) int {
	switch cat {
	case SignalIntensity:
		return s.IntensityCount
	case SignalComplaint:
		return s.ComplaintCount
	case SignalWorkaround:
		return s.WorkaroundCount
	default:
		return 0
	}
}

// SignalLevel buckets a raw count into LOW, MEDIUM or HIGH.
type SignalLevel string

// Signal levels.
const (
	SignalLow    SignalLevel = "LOW"
	SignalMedium SignalLevel = "MEDIUM"
	SignalHigh   SignalLevel = "HIGH"
)

// Fixed count thresholds for signal levels.
const (
	signalMediumFloor = 2
	signalHighFloor   = 5
)

// LevelForCount maps a count to its signal level:
// below 2 is LOW, 2 through 4 is MEDIUM, 5 and above is HIGH.
func LevelForCount(n int) SignalLevel {
	switch {
	case n >= signalHighFloor:
		return SignalHigh
	case n >= signalMediumFloor:
		return SignalMedium
	default:
		return SignalLow
	}
}

// SignalLevels is the level view of a SignalCounts.
type SignalLevels struct {
	Intensity  SignalLevel `json:"intensity"`
	Complaint  SignalLevel `json:"complaint"`
	Workaround SignalLevel `json:"workaround"`
}

// Levels derives the per-category levels from the counts.
func (s SignalCounts) Levels() SignalLevels {
	return SignalLevels{
		Intensity:  LevelForCount(s.IntensityCount),
		Complaint:  LevelForCount(s.ComplaintCount),
		Workaround: LevelForCount(s.WorkaroundCount),
	}
}

// SignalProvenance records which result URLs contributed to each
// category. Debugging aid only; never feeds back into scoring.
type SignalProvenance map[SignalCategory][]string

// ProblemLevel is the severity classification of the problem.
type ProblemLevel string

// Problem severity levels, weakest to strongest.
const (
	ProblemLow      ProblemLevel = "LOW"
	ProblemModerate ProblemLevel = "MODERATE"
	ProblemSevere   ProblemLevel = "SEVERE"
	ProblemDrastic  ProblemLevel = "DRASTIC"
)
