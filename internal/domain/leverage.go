package domain

// MarketLevel is a coarse LOW/MEDIUM/HIGH market enum supplied by the
// structured-intake layer.
type MarketLevel string

// Market levels.
const (
	MarketLow    MarketLevel = "LOW"
	MarketMedium MarketLevel = "MEDIUM"
	MarketHigh   MarketLevel = "HIGH"
)

// Rank orders market levels for threshold comparisons. Unknown values
// rank below LOW so they never satisfy a threshold.
func (m MarketLevel) Rank() int {
	switch m {
	case MarketLow:
		return 1
	case MarketMedium:
		return 2
	case MarketHigh:
		return 3
	default:
		return 0
	}
}

// Valid reports whether the value is one of the three known levels.
func (m MarketLevel) Valid() bool {
	return m == MarketLow || m == MarketMedium || m == MarketHigh
}

// MarketContext carries the three market enums. It is recorded on the
// evaluation report for narration but never alters the validation class.
type MarketContext struct {
	AutomationRelevance MarketLevel `json:"automation_relevance" yaml:"automation_relevance"`
	SubstitutePressure  MarketLevel `json:"substitute_pressure"  yaml:"substitute_pressure"`
	ContentSaturation   MarketLevel `json:"content_saturation"   yaml:"content_saturation"`
}

// LeverageFacts are the structured, intake-validated facts about the
// candidate solution. The three cost booleans are explicit signals; a
// solution that merely automates labor does not get cost leverage.
type LeverageFacts struct {
	ReplacesHumanLabor    bool `json:"replaces_human_labor"    yaml:"replaces_human_labor"`
	StepReductionRatio    int  `json:"step_reduction_ratio"    yaml:"step_reduction_ratio"`
	DeliversFinalAnswer   bool `json:"delivers_final_answer"   yaml:"delivers_final_answer"`
	UniqueDataAccess      bool `json:"unique_data_access"      yaml:"unique_data_access"`
	WorksUnderConstraints bool `json:"works_under_constraints" yaml:"works_under_constraints"`

	HasPricingDelta        bool `json:"has_pricing_delta,omitempty"        yaml:"has_pricing_delta"`
	HasInfrastructureShift bool `json:"has_infrastructure_shift,omitempty" yaml:"has_infrastructure_shift"`
	HasDistributionShift   bool `json:"has_distribution_shift,omitempty"   yaml:"has_distribution_shift"`
}

// LeverageKind names one of the five competitive-leverage flags.
// The set is closed; no new kinds exist at runtime.
type LeverageKind string

// Leverage kinds.
const (
	LeverageCost       LeverageKind = "COST"
	LeverageTime       LeverageKind = "TIME"
	LeverageCognitive  LeverageKind = "COGNITIVE"
	LeverageAccess     LeverageKind = "ACCESS"
	LeverageConstraint LeverageKind = "CONSTRAINT"
)

// LeverageKinds lists the five kinds in reporting order.
var LeverageKinds = []LeverageKind{
	LeverageCost,
	LeverageTime,
	LeverageCognitive,
	LeverageAccess,
	LeverageConstraint,
}

// LeverageFlag is one evaluated leverage rule: whether it fired and a
// human-readable reason either way.
type LeverageFlag struct {
	Kind    LeverageKind `json:"kind"`
	Present bool         `json:"present"`
	Reason  string       `json:"reason"`
}

// FiredFlags filters a flag set down to the flags that fired.
func FiredFlags(flags []LeverageFlag) []LeverageFlag {
	fired := make([]LeverageFlag, 0, len(flags))
	for _, f := range flags {
		if f.Present {
			fired = append(fired, f)
		}
	}
	return fired
}
