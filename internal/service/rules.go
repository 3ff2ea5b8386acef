package service

import (
	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
)

// Classify decides how a lookup result is answered. Identity is resolved
// before the payment track, and the payment track before payment existence.
// OutcomeDeclaration means the caller should go on and render the document.
func Classify(result *domain.StudentLookupResult) domain.OutcomeKind {
	switch {
	case result == nil || !result.Found:
		return domain.OutcomeNotFound
	case !format.IsPDFEligibleGroup(result.GroupID):
		return domain.OutcomeNonPDFGroup
	case len(result.Payments) == 0:
		return domain.OutcomeNoEligiblePayments
	default:
		return domain.OutcomeDeclaration
	}
}
