package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanlink/bulkcart-backend/pkg/enums"
	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", raw, err)
	}
	return d
}

const catalogFixture = `[
  {
    "name": "Truck Tires",
    "subcategories": [
      {
        "name": "Heavy Duty",
        "products": [
          {
            "id": 101,
            "name": "All-Season Radial",
            "price": "$120.00",
            "offerPrice": "$95.00",
            "moq": "50 tires",
            "pricingTiers": [
              {"minQuantity": 51, "maxQuantity": null, "pricePerTire": 80},
              {"minQuantity": 20, "maxQuantity": 50, "pricePerTire": 90}
            ]
          }
        ]
      }
    ]
  },
  {
    "name": "Frozen Fish",
    "subcategories": [
      {
        "name": "Whole",
        "products": [
          {
            "id": "fish-1",
            "name": "Frozen Mackerel",
            "price": 8.5,
            "keyAttributes": {"MOQ": "100 kg"},
            "pricingTiers": [
              {"minWeight": 200, "maxWeight": 500, "pricePerKg": 7.8}
            ]
          }
        ]
      }
    ]
  },
  {
    "name": "Dry Food",
    "products": [
      {"id": "rice-1", "name": "Jasmine Rice 25kg", "price": "not priced yet"}
    ]
  }
]`

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.json")
	if err := os.WriteFile(path, []byte(catalogFixture), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	c, err := Load(Config{Path: path, DefaultMOQ: 50, DefaultMOQUnit: "units"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return c
}

func TestLoadFlattensAndResolvesPricing(t *testing.T) {
	c := loadFixture(t)

	if got := len(c.Products()); got != 3 {
		t.Fatalf("expected 3 products, got %d", got)
	}

	tire, err := c.Product("101")
	if err != nil {
		t.Fatalf("lookup by numeric id failed: %v", err)
	}
	if tire.Pricing.Category != "Truck Tires" {
		t.Fatalf("category not inherited from parent, got %q", tire.Pricing.Category)
	}
	if tire.Subcategory != "Heavy Duty" {
		t.Fatalf("subcategory not inherited, got %q", tire.Subcategory)
	}
	if !tire.Pricing.BasePrice.Equal(dec(t, "120")) {
		t.Fatalf("base price mismatch: %s", tire.Pricing.BasePrice)
	}
	if tire.Pricing.OfferPrice == nil || !tire.Pricing.OfferPrice.Equal(dec(t, "95")) {
		t.Fatalf("offer price mismatch: %v", tire.Pricing.OfferPrice)
	}
	if tire.Pricing.MOQ != 50 || tire.Pricing.MOQUnit != "tires" {
		t.Fatalf("moq string not parsed: %d %s", tire.Pricing.MOQ, tire.Pricing.MOQUnit)
	}
}

func TestLoadSortsQuantityTiersAscending(t *testing.T) {
	c := loadFixture(t)
	tire, _ := c.Product("101")

	tiers := tire.Pricing.Tiers
	if len(tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(tiers))
	}
	if tiers[0].MinQuantity != 20 || tiers[1].MinQuantity != 51 {
		t.Fatalf("tiers not sorted ascending: %d, %d", tiers[0].MinQuantity, tiers[1].MinQuantity)
	}
	if tiers[0].Kind != enums.TierKindQuantity {
		t.Fatalf("expected quantity kind, got %s", tiers[0].Kind)
	}
	if tiers[0].UnitLabel != "tires" {
		t.Fatalf("unit label not derived from rate key, got %q", tiers[0].UnitLabel)
	}
	if !tiers[0].UnitPrice.Equal(dec(t, "90")) {
		t.Fatalf("unit price mismatch: %s", tiers[0].UnitPrice)
	}
	if tiers[1].MaxQuantity != nil {
		t.Fatalf("expected unbounded last tier, got %v", *tiers[1].MaxQuantity)
	}
}

func TestLoadDiscriminatesWeightBands(t *testing.T) {
	c := loadFixture(t)
	fish, err := c.Product("fish-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if !fish.Pricing.HasWeightBands() {
		t.Fatal("expected weight bands")
	}
	band := fish.Pricing.Tiers[0]
	if band.Kind != enums.TierKindWeight {
		t.Fatalf("expected weight kind, got %s", band.Kind)
	}
	if !band.PricePerKg.Equal(dec(t, "7.8")) {
		t.Fatalf("price per kg mismatch: %s", band.PricePerKg)
	}
	if fish.Pricing.MOQ != 100 || fish.Pricing.MOQUnit != "kg" {
		t.Fatalf("moq from key attributes not parsed: %d %s", fish.Pricing.MOQ, fish.Pricing.MOQUnit)
	}
}

func TestLoadAppliesMOQDefaultsAndSoftPrices(t *testing.T) {
	c := loadFixture(t)
	rice, err := c.Product("rice-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if rice.Pricing.MOQ != 50 || rice.Pricing.MOQUnit != "units" {
		t.Fatalf("defaults not applied: %d %s", rice.Pricing.MOQ, rice.Pricing.MOQUnit)
	}
	if !rice.Pricing.BasePrice.IsZero() {
		t.Fatalf("unparsable price should resolve to zero, got %s", rice.Pricing.BasePrice)
	}
	if rice.Pricing.OfferPrice != nil {
		t.Fatal("missing offer price should stay nil")
	}
}

func TestProductNotFound(t *testing.T) {
	c := loadFixture(t)
	_, err := c.Product("missing")
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCategoriesAndFilter(t *testing.T) {
	c := loadFixture(t)
	cats := c.Categories()
	if len(cats) != 3 || cats[0] != "Truck Tires" {
		t.Fatalf("unexpected categories: %v", cats)
	}
	if got := c.ProductsByCategory("truck tires"); len(got) != 1 {
		t.Fatalf("case-insensitive filter failed, got %d products", len(got))
	}
}

func TestPricingTierRoundTrip(t *testing.T) {
	c := loadFixture(t)
	tire, _ := c.Product("101")

	encoded, err := json.Marshal(tire.Pricing.Tiers)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded []PricingTier
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded[0].Kind != enums.TierKindQuantity || decoded[0].UnitLabel != "tires" {
		t.Fatalf("quantity tier did not round-trip: %+v", decoded[0])
	}
	if !decoded[0].UnitPrice.Equal(tire.Pricing.Tiers[0].UnitPrice) {
		t.Fatalf("unit price did not round-trip: %s", decoded[0].UnitPrice)
	}
}
