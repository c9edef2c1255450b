package enums

import "fmt"

// TierKind discriminates the pricing tier variants carried by a product.
type TierKind string

const (
	// TierKindQuantity maps a quantity range to a fixed per-unit price.
	TierKindQuantity TierKind = "quantity"
	// TierKindWeight is an informational price-per-kg band; it never changes totals.
	TierKindWeight TierKind = "weight"
)

var validTierKinds = []TierKind{
	TierKindQuantity,
	TierKindWeight,
}

// String implements fmt.Stringer.
func (k TierKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known TierKind.
func (k TierKind) IsValid() bool {
	for _, candidate := range validTierKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseTierKind converts raw input into a TierKind.
func ParseTierKind(value string) (TierKind, error) {
	for _, candidate := range validTierKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tier kind %q", value)
}
