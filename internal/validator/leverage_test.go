//nolint:testpackage // Testing internal pipeline stages requires same package access
package validator

import (
	"testing"

	"github.com/jonesrussell/market-validator/internal/domain"
	"github.com/jonesrussell/market-validator/internal/logging"
)

func allLow() domain.MarketContext {
	return domain.MarketContext{
		AutomationRelevance: domain.MarketLow,
		SubstitutePressure:  domain.MarketLow,
		ContentSaturation:   domain.MarketLow,
	}
}

func firedKinds(flags []domain.LeverageFlag) map[domain.LeverageKind]bool {
	out := make(map[domain.LeverageKind]bool)
	for _, f := range domain.FiredFlags(flags) {
		out[f.Kind] = true
	}
	return out
}

func TestLeverageEngine_CostNeedsExplicitSignal(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	// Labor replacement and automation relevance alone must not trip
	// the cost flag.
	facts := domain.LeverageFacts{
		ReplacesHumanLabor: true,
		StepReductionRatio: 6,
	}
	market := domain.MarketContext{
		AutomationRelevance: domain.MarketHigh,
		SubstitutePressure:  domain.MarketMedium,
		ContentSaturation:   domain.MarketLow,
	}

	flags, err := e.Detect(facts, market)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fired := firedKinds(flags)
	if fired[domain.LeverageCost] {
		t.Error("COST fired without an explicit cost signal")
	}
	if !fired[domain.LeverageTime] {
		t.Error("TIME should fire for a 6x step reduction")
	}
}

func TestLeverageEngine_PricingDeltaAloneFiresCost(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	facts := domain.LeverageFacts{HasPricingDelta: true}
	flags, err := e.Detect(facts, allLow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fired := firedKinds(flags)
	if !fired[domain.LeverageCost] {
		t.Error("COST should fire on pricing delta alone")
	}
	if len(fired) != 1 {
		t.Errorf("expected only COST, got %v", fired)
	}
}

func TestLeverageEngine_TimeRule(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	tests := []struct {
		name   string
		facts  domain.LeverageFacts
		market domain.MarketContext
		want   bool
	}{
		{
			name:   "ratio at floor",
			facts:  domain.LeverageFacts{StepReductionRatio: 5},
			market: allLow(),
			want:   true,
		},
		{
			name:   "ratio below floor and quiet market",
			facts:  domain.LeverageFacts{StepReductionRatio: 4},
			market: allLow(),
			want:   false,
		},
		{
			name:  "market pressure without big ratio",
			facts: domain.LeverageFacts{StepReductionRatio: 2},
			market: domain.MarketContext{
				AutomationRelevance: domain.MarketHigh,
				SubstitutePressure:  domain.MarketMedium,
				ContentSaturation:   domain.MarketLow,
			},
			want: true,
		},
		{
			name:  "medium automation is not enough",
			facts: domain.LeverageFacts{StepReductionRatio: 2},
			market: domain.MarketContext{
				AutomationRelevance: domain.MarketMedium,
				SubstitutePressure:  domain.MarketHigh,
				ContentSaturation:   domain.MarketLow,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := e.Detect(tt.facts, tt.market)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := firedKinds(flags)[domain.LeverageTime]; got != tt.want {
				t.Errorf("TIME fired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeverageEngine_CognitiveAccessConstraint(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	market := allLow()
	market.ContentSaturation = domain.MarketMedium

	facts := domain.LeverageFacts{
		DeliversFinalAnswer:   true,
		UniqueDataAccess:      true,
		WorksUnderConstraints: true,
	}
	flags, err := e.Detect(facts, market)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fired := firedKinds(flags)
	for _, kind := range []domain.LeverageKind{
		domain.LeverageCognitive, domain.LeverageAccess, domain.LeverageConstraint,
	} {
		if !fired[kind] {
			t.Errorf("%s should have fired", kind)
		}
	}

	// Low saturation removes only the cognitive edge.
	flags, err = e.Detect(facts, allLow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fired = firedKinds(flags)
	if fired[domain.LeverageCognitive] {
		t.Error("COGNITIVE must not fire in a low-saturation market")
	}
	if !fired[domain.LeverageAccess] || !fired[domain.LeverageConstraint] {
		t.Error("ACCESS and CONSTRAINT are market independent")
	}
}

func TestLeverageEngine_ClosedFlagSet(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	flags, err := e.Detect(domain.LeverageFacts{}, allLow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flags) != len(domain.LeverageKinds) {
		t.Fatalf("expected %d flags, got %d", len(domain.LeverageKinds), len(flags))
	}
	for i, kind := range domain.LeverageKinds {
		if flags[i].Kind != kind {
			t.Errorf("flag %d = %s, want %s", i, flags[i].Kind, kind)
		}
		if flags[i].Reason == "" {
			t.Errorf("flag %s has no reason", kind)
		}
	}
}

func TestLeverageEngine_InputValidation(t *testing.T) {
	e := NewLeverageEngine(logging.NewNop())

	tests := []struct {
		name   string
		facts  domain.LeverageFacts
		market domain.MarketContext
	}{
		{
			name:   "negative step reduction",
			facts:  domain.LeverageFacts{StepReductionRatio: -1},
			market: allLow(),
		},
		{
			name:   "unknown market level",
			facts:  domain.LeverageFacts{},
			market: domain.MarketContext{AutomationRelevance: "EXTREME", SubstitutePressure: domain.MarketLow, ContentSaturation: domain.MarketLow},
		},
		{
			name:   "empty market level",
			facts:  domain.LeverageFacts{},
			market: domain.MarketContext{},
		},
		{
			name:  "zero ratio contradicts high automation relevance",
			facts: domain.LeverageFacts{StepReductionRatio: 0},
			market: domain.MarketContext{
				AutomationRelevance: domain.MarketHigh,
				SubstitutePressure:  domain.MarketLow,
				ContentSaturation:   domain.MarketLow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Detect(tt.facts, tt.market)
			if !domain.IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
