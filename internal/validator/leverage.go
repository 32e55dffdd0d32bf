// leverage.go evaluates the five competitive-leverage rules. Every
// rule runs unconditionally; any subset may fire.
package validator

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

// stepReductionFloor is the ratio at which step reduction alone counts
// as time leverage.
const stepReductionFloor = 5

// LeverageEngine turns validated facts and market enums into the fixed
// set of five leverage flags.
type LeverageEngine struct {
	logger logging.Logger
}

// NewLeverageEngine creates a LeverageEngine.
func NewLeverageEngine(logger logging.Logger) *LeverageEngine {
	return &LeverageEngine{logger: logger}
}

// Detect validates the input and evaluates all five rules. The
// returned slice always holds exactly the five kinds in fixed order,
// fired or not; use domain.FiredFlags for the fired subset.
func (e *LeverageEngine) Detect(facts domain.LeverageFacts, market domain.MarketContext) ([]domain.LeverageFlag, error) {
	if err := validateLeverageInput(facts, market); err != nil {
		return nil, err
	}

	flags := []domain.LeverageFlag{
		costFlag(facts),
		timeFlag(facts, market),
		cognitiveFlag(facts, market),
		accessFlag(facts),
		constraintFlag(facts),
	}

	fired := domain.FiredFlags(flags)
	names := make([]string, len(fired))
	for i, f := range fired {
		names[i] = string(f.Kind)
	}
	e.logger.Debug("leverage detected",
		logging.Int("fired", len(fired)),
		logging.Strings("flags", names))
	return flags, nil
}

// validateLeverageInput rejects out-of-range or inconsistent input
// before any rule runs. Input is never coerced.
func validateLeverageInput(facts domain.LeverageFacts, market domain.MarketContext) error {
	if facts.StepReductionRatio < 0 {
		return domain.NewValidationError("facts.step_reduction_ratio", "must be non-negative")
	}
	if !market.AutomationRelevance.Valid() {
		return domain.NewValidationError("market.automation_relevance",
			fmt.Sprintf("unknown level %q", market.AutomationRelevance))
	}
	if !market.SubstitutePressure.Valid() {
		return domain.NewValidationError("market.substitute_pressure",
			fmt.Sprintf("unknown level %q", market.SubstitutePressure))
	}
	if !market.ContentSaturation.Valid() {
		return domain.NewValidationError("market.content_saturation",
			fmt.Sprintf("unknown level %q", market.ContentSaturation))
	}
	if facts.StepReductionRatio == 0 && market.AutomationRelevance == domain.MarketHigh {
		return domain.NewValidationError("facts.step_reduction_ratio",
			"is 0 while market.automation_relevance is HIGH")
	}
	return nil
}

// costFlag fires only on explicit cost-structure signals. Automation or
// labor replacement alone is time leverage, not cost leverage.
func costFlag(facts domain.LeverageFacts) domain.LeverageFlag {
	var signals []string
	if facts.HasPricingDelta {
		signals = append(signals, "pricing delta")
	}
	if facts.HasInfrastructureShift {
		signals = append(signals, "infrastructure shift")
	}
	if facts.HasDistributionShift {
		signals = append(signals, "distribution shift")
	}
	if len(signals) == 0 {
		return domain.LeverageFlag{
			Kind:   domain.LeverageCost,
			Reason: "no explicit cost-structure advantage",
		}
	}
	return domain.LeverageFlag{
		Kind:    domain.LeverageCost,
		Present: true,
		Reason:  "cost advantage via " + strings.Join(signals, ", "),
	}
}

func timeFlag(facts domain.LeverageFacts, market domain.MarketContext) domain.LeverageFlag {
	if facts.StepReductionRatio >= stepReductionFloor {
		return domain.LeverageFlag{
			Kind:    domain.LeverageTime,
			Present: true,
			Reason:  fmt.Sprintf("reduces steps by a factor of %d", facts.StepReductionRatio),
		}
	}
	if market.AutomationRelevance == domain.MarketHigh &&
		market.SubstitutePressure.Rank() >= domain.MarketMedium.Rank() {
		return domain.LeverageFlag{
			Kind:    domain.LeverageTime,
			Present: true,
			Reason:  "high automation relevance under substitute pressure",
		}
	}
	return domain.LeverageFlag{
		Kind:   domain.LeverageTime,
		Reason: "no meaningful time saving",
	}
}

func cognitiveFlag(facts domain.LeverageFacts, market domain.MarketContext) domain.LeverageFlag {
	if facts.DeliversFinalAnswer &&
		market.ContentSaturation.Rank() >= domain.MarketMedium.Rank() {
		return domain.LeverageFlag{
			Kind:    domain.LeverageCognitive,
			Present: true,
			Reason:  "delivers a final answer in a saturated content market",
		}
	}
	return domain.LeverageFlag{
		Kind:   domain.LeverageCognitive,
		Reason: "does not remove decision burden",
	}
}

func accessFlag(facts domain.LeverageFacts) domain.LeverageFlag {
	if facts.UniqueDataAccess {
		return domain.LeverageFlag{
			Kind:    domain.LeverageAccess,
			Present: true,
			Reason:  "relies on data competitors cannot reach",
		}
	}
	return domain.LeverageFlag{
		Kind:   domain.LeverageAccess,
		Reason: "no unique data access",
	}
}

func constraintFlag(facts domain.LeverageFacts) domain.LeverageFlag {
	if facts.WorksUnderConstraints {
		return domain.LeverageFlag{
			Kind:    domain.LeverageConstraint,
			Present: true,
			Reason:  "works under constraints competitors cannot satisfy",
		}
	}
	return domain.LeverageFlag{
		Kind:   domain.LeverageConstraint,
		Reason: "no constraint advantage",
	}
}
