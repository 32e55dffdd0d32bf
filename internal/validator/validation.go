// validation.go synchronizes severity and leverage into the final
// validation class. A pure 2x2 lookup; market context never enters.
package validator

import "github.com/jonesrussell/market-validator/internal/domain"

// SynchronizeValidation combines the problem level and the leverage
// flag set into the final validation state. Two calls with identical
// arguments always return the identical state, whatever market context
// surrounds them.
func SynchronizeValidation(level domain.ProblemLevel, flags []domain.LeverageFlag) domain.ValidationState {
	validity := domain.ProblemWeak
	if level == domain.ProblemSevere || level == domain.ProblemDrastic {
		validity = domain.ProblemReal
	}

	presence := domain.LeverageNone
	if len(domain.FiredFlags(flags)) > 0 {
		presence = domain.LeveragePresent
	}

	var class domain.ValidationClass
	switch {
	case validity == domain.ProblemReal && presence == domain.LeveragePresent:
		class = domain.StrongFoundation
	case validity == domain.ProblemReal:
		class = domain.RealProblemWeakEdge
	default:
		class = domain.WeakFoundation
	}

	return domain.ValidationState{
		ProblemValidity:  validity,
		LeveragePresence: presence,
		ValidationClass:  class,
	}
}
