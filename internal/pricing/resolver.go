// Package pricing resolves a line item quantity against its product pricing
// definition. Products price in one of four ways: a flat list price, an offer
// price below the base price, published quantity tiers with per-unit volume
// rates, or informational weight bands for goods priced by final weight.
package pricing

import (
	"fmt"

	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	"github.com/oceanlink/bulkcart-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Quote is the derived price for one line item. Never persisted; recomputed
// on demand. Amounts keep full precision, rounding happens at the response
// edge only.
type Quote struct {
	Mode      enums.PricingMode
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	TierLabel string
}

// Resolve computes the quote for quantity units of a product.
//
// Priority order: weight bands win over everything but never change the
// total, which still uses the list price since final weight is unknown until
// fulfillment. Quantity tiers apply the first tier whose range contains the
// quantity; below the first tier the buyer pays the standalone list price
// (offer-fallback). A quantity falling in a range gap resolves to the last
// tier's rate rather than failing on inconsistent catalog data.
func Resolve(def catalog.PricingDefinition, quantity int) Quote {
	if quantity < 1 {
		quantity = 1
	}
	qty := decimal.NewFromInt(int64(quantity))

	if def.HasWeightBands() {
		unit := def.ListPrice()
		return Quote{
			Mode:      enums.PricingModeWeightInformation,
			UnitPrice: unit,
			Total:     unit.Mul(qty),
		}
	}

	if len(def.Tiers) > 0 {
		if quantity < def.Tiers[0].MinQuantity {
			unit := def.ListPrice()
			return Quote{
				Mode:      enums.PricingModeOfferFallback,
				UnitPrice: unit,
				Total:     unit.Mul(qty),
			}
		}
		tier := selectTier(def.Tiers, quantity)
		return Quote{
			Mode:      enums.PricingModeTiered,
			UnitPrice: tier.UnitPrice,
			Total:     tier.UnitPrice.Mul(qty),
			TierLabel: tierLabel(tier, def.MOQUnit),
		}
	}

	unit := def.ListPrice()
	return Quote{
		Mode:      enums.PricingModeStandard,
		UnitPrice: unit,
		Total:     unit.Mul(qty),
	}
}

func selectTier(tiers []catalog.PricingTier, quantity int) catalog.PricingTier {
	for _, tier := range tiers {
		if quantity < tier.MinQuantity {
			continue
		}
		if tier.MaxQuantity == nil || quantity <= *tier.MaxQuantity {
			return tier
		}
	}
	// Range gap in catalog data. The last tier's rate is the deterministic
	// fallback so a quote always exists.
	return tiers[len(tiers)-1]
}

func tierLabel(tier catalog.PricingTier, fallbackUnit string) string {
	unit := tier.UnitLabel
	if unit == "" {
		unit = fallbackUnit
	}
	bounds := fmt.Sprintf("%d+", tier.MinQuantity)
	if tier.MaxQuantity != nil {
		bounds = fmt.Sprintf("%d-%d", tier.MinQuantity, *tier.MaxQuantity)
	}
	if unit == "" {
		return bounds
	}
	return bounds + " " + unit
}
