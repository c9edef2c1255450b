package enums

import "fmt"

// EligibilityReason explains why a cart may or may not proceed to checkout.
type EligibilityReason string

const (
	EligibilityReasonOK              EligibilityReason = "OK"
	EligibilityReasonEmptyCart       EligibilityReason = "EMPTY_CART"
	EligibilityReasonMixedCategories EligibilityReason = "MIXED_CATEGORIES"
	EligibilityReasonBelowMOQ        EligibilityReason = "BELOW_MOQ"
)

var validEligibilityReasons = []EligibilityReason{
	EligibilityReasonOK,
	EligibilityReasonEmptyCart,
	EligibilityReasonMixedCategories,
	EligibilityReasonBelowMOQ,
}

// String implements fmt.Stringer.
func (r EligibilityReason) String() string {
	return string(r)
}

// IsValid reports whether the value is a known EligibilityReason.
func (r EligibilityReason) IsValid() bool {
	for _, candidate := range validEligibilityReasons {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseEligibilityReason converts raw input into an EligibilityReason.
func ParseEligibilityReason(value string) (EligibilityReason, error) {
	for _, candidate := range validEligibilityReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid eligibility reason %q", value)
}
