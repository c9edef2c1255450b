package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oceanlink/bulkcart-backend/api/middleware"
	"github.com/oceanlink/bulkcart-backend/api/responses"
	"github.com/oceanlink/bulkcart-backend/api/validators"
	cartsvc "github.com/oceanlink/bulkcart-backend/internal/cart"
	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	"github.com/oceanlink/bulkcart-backend/internal/pricing"
	pkgerrors "github.com/oceanlink/bulkcart-backend/pkg/errors"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/oceanlink/bulkcart-backend/pkg/money"
)

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemView struct {
	ProductID   string                `json:"productId"`
	Name        string                `json:"name"`
	Quantity    int                   `json:"quantity"`
	PricingMode string                `json:"pricingMode"`
	UnitPrice   string                `json:"unitPrice"`
	LineTotal   string                `json:"lineTotal"`
	TierLabel   string                `json:"tierLabel,omitempty"`
	WeightBands []catalog.PricingTier `json:"weightBands,omitempty"`
	Category    string                `json:"category"`
	Image       string                `json:"image,omitempty"`
}

type cartView struct {
	Items      []cartItemView `json:"items"`
	ItemCount  int            `json:"itemCount"`
	Categories []string       `json:"categories"`
	Subtotal   string         `json:"subtotal"`
}

func newCartView(store *cartsvc.Store) cartView {
	items := store.Items()
	views := make([]cartItemView, 0, len(items))
	for _, item := range items {
		def := item.Pricing()
		quote := pricing.Resolve(def, item.Quantity)
		view := cartItemView{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			PricingMode: quote.Mode.String(),
			UnitPrice:   money.Display(quote.UnitPrice),
			LineTotal:   money.Display(quote.Total),
			TierLabel:   quote.TierLabel,
			Category:    item.Category,
			Image:       item.Image,
		}
		if def.HasWeightBands() {
			view.WeightBands = def.Tiers
		}
		views = append(views, view)
	}
	return cartView{
		Items:      views,
		ItemCount:  store.ItemCount(),
		Categories: store.Categories(),
		Subtotal:   money.Display(store.Total()),
	}
}

func loadStore(r *http.Request, persister cartsvc.Persister, logg *logger.Logger) (*cartsvc.Store, error) {
	sessionID := middleware.CartSessionFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart session not resolved")
	}
	return cartsvc.NewStore(r.Context(), sessionID, persister, logg), nil
}

// CartFetch returns the session's cart with every line priced.
func CartFetch(persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartAddItem adds a product to the cart, merging quantity when the product
// is already present.
func CartAddItem(cat *catalog.Catalog, persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := cat.Product(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Add(r.Context(), product, payload.Quantity)
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartUpdateQuantity sets a line's quantity; anything below one removes it.
func CartUpdateQuantity(persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), payload.Quantity)
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartRemoveItem deletes one line from the cart.
func CartRemoveItem(persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartClear empties the cart and its persisted snapshot.
func CartClear(persister cartsvc.Persister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := loadStore(r, persister, logg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(store))
	}
}
