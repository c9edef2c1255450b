package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oceanlink/bulkcart-backend/api/responses"
	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
)

type productView struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	Image        string                `json:"image,omitempty"`
	Category     string                `json:"category"`
	Subcategory  string                `json:"subcategory,omitempty"`
	Price        string                `json:"price"`
	OfferPrice   string                `json:"offerPrice,omitempty"`
	PricingTiers []catalog.PricingTier `json:"pricingTiers,omitempty"`
	MOQ          int                   `json:"moq"`
	MOQUnit      string                `json:"moqUnit"`
	Attributes   map[string]any        `json:"keyAttributes,omitempty"`
}

func newProductView(p catalog.Product) productView {
	view := productView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		Category:     p.Pricing.Category,
		Subcategory:  p.Subcategory,
		Price:        money.Display(p.Pricing.BasePrice),
		PricingTiers: p.Pricing.Tiers,
		MOQ:          p.Pricing.MOQ,
		MOQUnit:      p.Pricing.MOQUnit,
		Attributes:   p.Attributes,
	}
	if p.Pricing.OfferPrice != nil {
		view.OfferPrice = money.Display(*p.Pricing.OfferPrice)
	}
	return view
}

// CatalogProducts lists the flattened catalog, optionally filtered by the
// category query parameter.
func CatalogProducts(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		products := cat.Products()
		if category := r.URL.Query().Get("category"); category != "" {
			products = cat.ProductsByCategory(category)
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, newProductView(p))
		}
		responses.WriteSuccess(w, views)
	}
}

// CatalogProductDetail fetches one product by id.
func CatalogProductDetail(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, err := cat.Product(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductView(product))
	}
}

// CatalogCategories lists the top-level category names.
func CatalogCategories(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, cat.Categories())
	}
}
