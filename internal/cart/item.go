package cart

import (
	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// Item is one cart line: the chosen quantity plus a flattened snapshot of the
// product's pricing rules taken at add-time. The snapshot, not the live
// catalog, prices the line for the rest of the session.
type Item struct {
	ProductID    string                `json:"productId"`
	Name         string                `json:"name"`
	Quantity     int                   `json:"quantity"`
	Price        decimal.Decimal       `json:"price"`
	OfferPrice   *decimal.Decimal      `json:"offerPrice,omitempty"`
	PricingTiers []catalog.PricingTier `json:"pricingTiers,omitempty"`
	Category     string                `json:"category"`
	MOQ          int                   `json:"moq"`
	MOQUnit      string                `json:"moqUnit"`
	Image        string                `json:"image,omitempty"`
}

func newItem(product catalog.Product, quantity int) Item {
	return Item{
		ProductID:    product.ID,
		Name:         product.Name,
		Quantity:     quantity,
		Price:        product.Pricing.BasePrice,
		OfferPrice:   product.Pricing.OfferPrice,
		PricingTiers: product.Pricing.Tiers,
		Category:     product.Pricing.Category,
		MOQ:          product.Pricing.MOQ,
		MOQUnit:      product.Pricing.MOQUnit,
		Image:        product.Image,
	}
}

// Pricing reconstructs the pricing definition view of the snapshot.
func (i Item) Pricing() catalog.PricingDefinition {
	return catalog.PricingDefinition{
		BasePrice:  i.Price,
		OfferPrice: i.OfferPrice,
		Tiers:      i.PricingTiers,
		MOQ:        i.MOQ,
		MOQUnit:    i.MOQUnit,
		Category:   i.Category,
	}
}

// Snapshot is the read-only aggregate view handed to eligibility checks.
type Snapshot struct {
	Items      []Item
	ItemCount  int
	Categories []string
}
