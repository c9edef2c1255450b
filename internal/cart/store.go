// Package cart holds the per-session shopping cart: an ordered, deduplicated
// list of line items persisted as one JSON array under the session's key.
//
// Persistence is deliberately forgiving. A snapshot that fails to load or
// parse yields an empty cart, and a failed write is logged and swallowed so
// the in-memory cart stays authoritative for the rest of the session.
package cart

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/oceanlink/bulkcart-backend/internal/catalog"
	"github.com/oceanlink/bulkcart-backend/internal/pricing"
	"github.com/oceanlink/bulkcart-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Persister stores the serialized cart snapshot for a session.
type Persister interface {
	Save(ctx context.Context, sessionID string, payload []byte) error
	Load(ctx context.Context, sessionID string) ([]byte, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// Store owns one session's cart. It is the only mutation path for line
// items; callers never modify items directly.
type Store struct {
	sessionID string
	persister Persister
	logg      *logger.Logger
	items     []Item
}

// NewStore loads the persisted snapshot for sessionID. Any load or parse
// failure starts the session with an empty cart.
func NewStore(ctx context.Context, sessionID string, persister Persister, logg *logger.Logger) *Store {
	s := &Store{sessionID: sessionID, persister: persister, logg: logg}
	if persister == nil {
		return s
	}

	payload, found, err := persister.Load(ctx, sessionID)
	if err != nil {
		logg.Warn(ctx, "loading cart snapshot failed, starting empty")
		return s
	}
	if !found {
		return s
	}
	var items []Item
	if err := json.Unmarshal(payload, &items); err != nil {
		logg.Warn(ctx, "cart snapshot unreadable, starting empty")
		return s
	}
	s.items = items
	return s
}

// Add merges quantity into an existing line for the same product or appends
// a new line with a snapshot of the product's pricing. Quantities below one
// add a single unit.
func (s *Store) Add(ctx context.Context, product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, newItem(product, quantity))
	s.persist(ctx)
}

// UpdateQuantity sets a line's quantity in place. A quantity below one is a
// removal request, not an error.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		s.Remove(ctx, productID)
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Remove deletes the matching line. Removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Total sums the resolved line totals across the cart.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(pricing.Resolve(item.Pricing(), item.Quantity).Total)
	}
	return total
}

// ItemCount sums line quantities.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Categories returns the distinct lowercased categories across lines, in
// first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{}, len(s.items))
	var out []string
	for _, item := range s.items {
		if item.Category == "" {
			continue
		}
		normalized := strings.ToLower(item.Category)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// Snapshot captures the aggregates eligibility checks need.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:      s.Items(),
		ItemCount:  s.ItemCount(),
		Categories: s.Categories(),
	}
}

func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if len(s.items) == 0 {
		if err := s.persister.Delete(ctx, s.sessionID); err != nil {
			s.logg.Warn(ctx, "deleting cart snapshot failed")
		}
		return
	}
	payload, err := json.Marshal(s.items)
	if err != nil {
		s.logg.Warn(ctx, "encoding cart snapshot failed")
		return
	}
	if err := s.persister.Save(ctx, s.sessionID, payload); err != nil {
		s.logg.Warn(ctx, "saving cart snapshot failed")
	}
}
