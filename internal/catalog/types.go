package catalog

import (
	"encoding/json"
	"strings"

	"github.com/oceanlink/bulkcart-backend/pkg/enums"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// PricingTier is the tagged union of the two tier shapes a product can carry.
// Kind is assigned exactly once, when the tier is decoded from catalog or
// persisted cart data, so downstream pricing code switches on the tag instead
// of probing fields.
type PricingTier struct {
	Kind enums.TierKind

	// Quantity tier: a quantity range mapped to a fixed per-unit price.
	MinQuantity int
	MaxQuantity *int
	UnitPrice   decimal.Decimal
	UnitLabel   string

	// Weight band: informational price-per-kg range. Never changes totals.
	MinWeight  decimal.Decimal
	MaxWeight  decimal.Decimal
	PricePerKg decimal.Decimal
}

type quantityTierJSON struct {
	MinQuantity  int             `json:"minQuantity"`
	MaxQuantity  *int            `json:"maxQuantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	UnitLabel    string          `json:"unitLabel,omitempty"`
}

type weightBandJSON struct {
	MinWeight  decimal.Decimal `json:"minWeight"`
	MaxWeight  decimal.Decimal `json:"maxWeight"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
}

// UnmarshalJSON discriminates the tier shape. Weight bands are recognized by
// their weight-range fields; everything else decodes as a quantity tier.
// Catalog data names the per-unit rate inconsistently (pricePerUnit,
// pricePerTire, pricePerTon, ...), so any pricePer-prefixed key is accepted
// and its suffix doubles as the unit label when none is given.
func (t *PricingTier) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if _, ok := raw["minWeight"]; ok {
		t.Kind = enums.TierKindWeight
		t.MinWeight = money.Parse(raw["minWeight"])
		t.MaxWeight = money.Parse(raw["maxWeight"])
		t.PricePerKg = money.Parse(raw["pricePerKg"])
		return nil
	}

	t.Kind = enums.TierKindQuantity
	t.MinQuantity = int(money.Parse(raw["minQuantity"]).IntPart())
	if max, ok := raw["maxQuantity"]; ok && max != nil {
		v := int(money.Parse(max).IntPart())
		t.MaxQuantity = &v
	}
	if label, ok := raw["unitLabel"].(string); ok {
		t.UnitLabel = label
	}
	for key, value := range raw {
		if !strings.HasPrefix(key, "pricePer") || key == "pricePerKg" {
			continue
		}
		t.UnitPrice = money.Parse(value)
		if t.UnitLabel == "" {
			t.UnitLabel = unitLabelFromKey(key)
		}
		break
	}
	return nil
}

// MarshalJSON writes each variant back in its canonical shape so persisted
// cart snapshots round-trip through UnmarshalJSON.
func (t PricingTier) MarshalJSON() ([]byte, error) {
	if t.Kind == enums.TierKindWeight {
		return json.Marshal(weightBandJSON{
			MinWeight:  t.MinWeight,
			MaxWeight:  t.MaxWeight,
			PricePerKg: t.PricePerKg,
		})
	}
	return json.Marshal(quantityTierJSON{
		MinQuantity:  t.MinQuantity,
		MaxQuantity:  t.MaxQuantity,
		PricePerUnit: t.UnitPrice,
		UnitLabel:    t.UnitLabel,
	})
}

func unitLabelFromKey(key string) string {
	suffix := strings.ToLower(strings.TrimPrefix(key, "pricePer"))
	if suffix == "" || suffix == "unit" {
		return ""
	}
	if !strings.HasSuffix(suffix, "s") {
		suffix += "s"
	}
	return suffix
}

// PricingDefinition is the pricing block snapshotted into a cart line item
// when a product is added. Immutable for the lifetime of the session.
type PricingDefinition struct {
	BasePrice  decimal.Decimal
	OfferPrice *decimal.Decimal
	Tiers      []PricingTier
	MOQ        int
	MOQUnit    string
	Category   string
}

// ListPrice returns the standalone price for one unit, preferring a positive
// offer price over the base price.
func (d PricingDefinition) ListPrice() decimal.Decimal {
	if d.OfferPrice != nil && d.OfferPrice.IsPositive() {
		return *d.OfferPrice
	}
	return d.BasePrice
}

// HasWeightBands reports whether the tier list carries informational weight
// bands instead of quantity tiers.
func (d PricingDefinition) HasWeightBands() bool {
	return len(d.Tiers) > 0 && d.Tiers[0].Kind == enums.TierKindWeight
}

// Product is one sellable catalog entry after flattening.
type Product struct {
	ID          string
	Name        string
	Description string
	Image       string
	Subcategory string
	Attributes  map[string]any
	Pricing     PricingDefinition
}
