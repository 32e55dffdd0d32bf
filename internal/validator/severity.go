// severity.go derives the problem level from signal counts: a weighted
// score followed by a fixed chain of corrective guardrails.
package validator

import (
	"fmt"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// Scoring weights and level thresholds.
const (
	intensityWeight  = 3
	complaintWeight  = 2
	workaroundWeight = 1

	drasticFloor  = 15
	severeFloor   = 8
	moderateFloor = 4

	// workaroundCap bounds the effective workaround count when neither
	// intensity nor complaints back it up, so workaround volume alone
	// cannot inflate severity.
	workaroundCap          = 3
	workaroundCapComplaint = 1
)

// SeverityClassifier maps signal counts to a problem level.
type SeverityClassifier struct {
	logger logging.Logger
}

// NewSeverityClassifier creates a SeverityClassifier.
func NewSeverityClassifier(logger logging.Logger) *SeverityClassifier {
	return &SeverityClassifier{logger: logger}
}

// levelGuard is one corrective rule in the post-scoring chain. Guards
// are pure Level -> Level functions applied in fixed order; each is
// idempotent.
type levelGuard struct {
	name  string
	apply func(domain.ProblemLevel) domain.ProblemLevel
}

// Classify derives the problem level. Guardrail downgrades are logged
// and their post-conditions re-checked; a failed assertion means a
// logic defect and surfaces as an error wrapping domain.ErrInvariant
// rather than a silently wrong level.
func (c *SeverityClassifier) Classify(sig domain.SignalCounts) (domain.ProblemLevel, error) {
	if err := validateCounts(sig); err != nil {
		return "", err
	}

	// Guardrail 1: zero signal means LOW, no scoring.
	if sig.IsZero() {
		c.logger.Debug("severity: zero-signal floor applied")
		return domain.ProblemLow, nil
	}

	// Guardrail 2: cap effective workaround volume without support.
	effective := sig.WorkaroundCount
	if sig.IntensityCount == 0 && sig.ComplaintCount <= workaroundCapComplaint && effective > workaroundCap {
		c.logger.Debug("severity: workaround cap applied",
			logging.Int("raw", sig.WorkaroundCount),
			logging.Int("capped", workaroundCap))
		effective = workaroundCap
	}

	score := intensityWeight*sig.IntensityCount +
		complaintWeight*sig.ComplaintCount +
		workaroundWeight*effective
	level := levelForScore(score)

	for _, g := range c.guards(sig) {
		next := g.apply(level)
		if next != level {
			c.logger.Info("severity guardrail downgrade",
				logging.String("guard", g.name),
				logging.String("from", string(level)),
				logging.String("to", string(next)))
		}
		level = next
	}

	if err := assertSeverityInvariants(level, sig); err != nil {
		return "", err
	}

	c.logger.Debug("severity classified",
		logging.Int("score", score),
		logging.String("level", string(level)))
	return level, nil
}

func levelForScore(score int) domain.ProblemLevel {
	switch {
	case score >= drasticFloor:
		return domain.ProblemDrastic
	case score >= severeFloor:
		return domain.ProblemSevere
	case score >= moderateFloor:
		return domain.ProblemModerate
	default:
		return domain.ProblemLow
	}
}

// guards returns the fixed downgrade chain closed over the counts.
func (c *SeverityClassifier) guards(sig domain.SignalCounts) []levelGuard {
	return []levelGuard{
		{
			// Guardrail 3: DRASTIC demands HIGH intensity.
			name: "drastic_requires_high_intensity",
			apply: func(l domain.ProblemLevel) domain.ProblemLevel {
				if l == domain.ProblemDrastic && domain.LevelForCount(sig.IntensityCount) != domain.SignalHigh {
					return domain.ProblemSevere
				}
				return l
			},
		},
		{
			// Guardrail 4: SEVERE demands at least one intensity signal.
			name: "severe_requires_intensity",
			apply: func(l domain.ProblemLevel) domain.ProblemLevel {
				if l == domain.ProblemSevere && sig.IntensityCount < 1 {
					return domain.ProblemModerate
				}
				return l
			},
		},
	}
}

func validateCounts(sig domain.SignalCounts) error {
	if sig.IntensityCount < 0 {
		return domain.NewValidationError("signals.intensity_count", "must be non-negative")
	}
	if sig.ComplaintCount < 0 {
		return domain.NewValidationError("signals.complaint_count", "must be non-negative")
	}
	if sig.WorkaroundCount < 0 {
		return domain.NewValidationError("signals.workaround_count", "must be non-negative")
	}
	return nil
}

// assertSeverityInvariants re-verifies the guardrail post-conditions.
func assertSeverityInvariants(level domain.ProblemLevel, sig domain.SignalCounts) error {
	if level == domain.ProblemDrastic && domain.LevelForCount(sig.IntensityCount) != domain.SignalHigh {
		return fmt.Errorf("%w: DRASTIC with intensity count %d", domain.ErrInvariant, sig.IntensityCount)
	}
	if level == domain.ProblemSevere && sig.IntensityCount < 1 {
		return fmt.Errorf("%w: SEVERE with zero intensity", domain.ErrInvariant)
	}
	return nil
}
