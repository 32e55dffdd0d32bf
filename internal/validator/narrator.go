package validator

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/market-validator/internal/domain"
)

// Narrator renders a human-readable summary of a finished report. It
// reads the report and never writes it; the engine's decisions are
// made before narration runs. Implementations backed by an external
// language model live outside this module and are injected here.
type Narrator interface {
	Narrate(report *domain.EvaluationReport) string
}

// StubNarrator is the deterministic built-in narrator.
type StubNarrator struct{}

// Narrate produces a fixed-template summary from the report.
func (StubNarrator) Narrate(r *domain.EvaluationReport) string {
	fired := domain.FiredFlags(r.Leverage)
	kinds := make([]string, len(fired))
	for i, f := range fired {
		kinds[i] = string(f.Kind)
	}
	leverage := "no leverage flags fired"
	if len(kinds) > 0 {
		leverage = "leverage: " + strings.Join(kinds, ", ")
	}
	return fmt.Sprintf("Problem severity is %s (%d intensity, %d complaint, %d workaround signals); %s. Verdict: %s.",
		r.ProblemLevel,
		r.Signals.IntensityCount,
		r.Signals.ComplaintCount,
		r.Signals.WorkaroundCount,
		leverage,
		r.Validation.ValidationClass)
}
