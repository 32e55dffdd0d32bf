//nolint:testpackage // Testing internal pipeline stages requires same package access
package validator

import (
	"testing"

	"github.com/jonesrussell/market-validator/internal/domain"
)

func accessFired() []domain.LeverageFlag {
	return []domain.LeverageFlag{
		{Kind: domain.LeverageAccess, Present: true, Reason: "unique data"},
	}
}

func TestSynchronizeValidation(t *testing.T) {
	tests := []struct {
		name  string
		level domain.ProblemLevel
		flags []domain.LeverageFlag
		want  domain.ValidationState
	}{
		{
			name:  "drastic with leverage",
			level: domain.ProblemDrastic,
			flags: accessFired(),
			want: domain.ValidationState{
				ProblemValidity:  domain.ProblemReal,
				LeveragePresence: domain.LeveragePresent,
				ValidationClass:  domain.StrongFoundation,
			},
		},
		{
			name:  "severe without leverage",
			level: domain.ProblemSevere,
			flags: nil,
			want: domain.ValidationState{
				ProblemValidity:  domain.ProblemReal,
				LeveragePresence: domain.LeverageNone,
				ValidationClass:  domain.RealProblemWeakEdge,
			},
		},
		{
			name:  "moderate with leverage",
			level: domain.ProblemModerate,
			flags: accessFired(),
			want: domain.ValidationState{
				ProblemValidity:  domain.ProblemWeak,
				LeveragePresence: domain.LeveragePresent,
				ValidationClass:  domain.WeakFoundation,
			},
		},
		{
			name:  "low without leverage",
			level: domain.ProblemLow,
			flags: nil,
			want: domain.ValidationState{
				ProblemValidity:  domain.ProblemWeak,
				LeveragePresence: domain.LeverageNone,
				ValidationClass:  domain.WeakFoundation,
			},
		},
		{
			name:  "unfired flags count as none",
			level: domain.ProblemSevere,
			flags: []domain.LeverageFlag{
				{Kind: domain.LeverageCost, Present: false, Reason: "none"},
				{Kind: domain.LeverageTime, Present: false, Reason: "none"},
			},
			want: domain.ValidationState{
				ProblemValidity:  domain.ProblemReal,
				LeveragePresence: domain.LeverageNone,
				ValidationClass:  domain.RealProblemWeakEdge,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynchronizeValidation(tt.level, tt.flags)
			if got != tt.want {
				t.Errorf("SynchronizeValidation(%s) = %+v, want %+v", tt.level, got, tt.want)
			}
		})
	}
}
