package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
)

// Config controls catalog loading. The MOQ defaults apply to products whose
// catalog entry carries no usable minimum-order data.
type Config struct {
	Path           string
	DefaultMOQ     int
	DefaultMOQUnit string
}

// Catalog serves read-only product lookups for the lifetime of the process.
type Catalog struct {
	products   []Product
	byID       map[string]int
	categories []string
}

type categoryJSON struct {
	Name          string            `json:"name"`
	Subcategories []subcategoryJSON `json:"subcategories"`
	Products      []productJSON     `json:"products"`
}

type subcategoryJSON struct {
	Name     string        `json:"name"`
	Products []productJSON `json:"products"`
}

type productJSON struct {
	ID            flexString     `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	Price         any            `json:"price"`
	OfferPrice    any            `json:"offerPrice"`
	PricingTiers  []PricingTier  `json:"pricingTiers"`
	MOQ           any            `json:"moq"`
	MOQUnit       string         `json:"moqUnit"`
	KeyAttributes map[string]any `json:"keyAttributes"`
}

// flexString accepts both string and numeric ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Load reads the category tree from disk and flattens it into products with
// fully resolved pricing definitions.
func Load(cfg Config) (*Catalog, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var tree []categoryJSON
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding catalog file: %w", err)
	}

	c := &Catalog{byID: make(map[string]int)}
	for _, category := range tree {
		c.categories = append(c.categories, category.Name)
		for _, raw := range category.Products {
			c.append(buildProduct(raw, category.Name, "", cfg))
		}
		for _, sub := range category.Subcategories {
			for _, raw := range sub.Products {
				c.append(buildProduct(raw, category.Name, sub.Name, cfg))
			}
		}
	}
	return c, nil
}

func (c *Catalog) append(p Product) {
	if p.ID == "" {
		return
	}
	if _, exists := c.byID[p.ID]; exists {
		return
	}
	c.byID[p.ID] = len(c.products)
	c.products = append(c.products, p)
}

func buildProduct(raw productJSON, category, subcategory string, cfg Config) Product {
	moq, unit, ok := parseMOQ(raw.MOQ)
	if !ok {
		moq, unit, ok = parseMOQ(attributeMOQ(raw.KeyAttributes))
	}
	if !ok {
		moq = cfg.DefaultMOQ
	}
	if unit == "" {
		unit = raw.MOQUnit
	}
	if unit == "" {
		unit = cfg.DefaultMOQUnit
	}

	tiers := append([]PricingTier(nil), raw.PricingTiers...)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinQuantity < tiers[j].MinQuantity
	})

	pricing := PricingDefinition{
		BasePrice: money.Parse(raw.Price),
		Tiers:     tiers,
		MOQ:       moq,
		MOQUnit:   unit,
		Category:  category,
	}
	if offer := money.Parse(raw.OfferPrice); offer.IsPositive() {
		pricing.OfferPrice = &offer
	}

	return Product{
		ID:          string(raw.ID),
		Name:        raw.Name,
		Description: raw.Description,
		Image:       raw.Image,
		Subcategory: subcategory,
		Attributes:  raw.KeyAttributes,
		Pricing:     pricing,
	}
}

func attributeMOQ(attrs map[string]any) any {
	for key, value := range attrs {
		if strings.EqualFold(key, "moq") {
			return value
		}
	}
	return nil
}

// parseMOQ accepts a bare number or a "50 tires" style string carrying the
// quantity and its unit together.
func parseMOQ(value any) (int, string, bool) {
	switch v := value.(type) {
	case nil:
		return 0, "", false
	case string:
		fields := strings.Fields(v)
		if len(fields) == 0 {
			return 0, "", false
		}
		qty, err := strconv.Atoi(fields[0])
		if err != nil || qty <= 0 {
			return 0, "", false
		}
		return qty, strings.Join(fields[1:], " "), true
	default:
		qty := int(money.Parse(value).IntPart())
		if qty <= 0 {
			return 0, "", false
		}
		return qty, "", true
	}
}

// Product returns the catalog entry for id.
func (c *Catalog) Product(id string) (Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return c.products[idx], nil
}

// Products returns every catalog entry in catalog order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Categories returns the top-level category names in catalog order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// ProductsByCategory filters products by category name, case-insensitively.
func (c *Catalog) ProductsByCategory(name string) []Product {
	var out []Product
	for _, p := range c.products {
		if strings.EqualFold(p.Pricing.Category, name) {
			out = append(out, p)
		}
	}
	return out
}
