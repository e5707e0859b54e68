// Package cart maintains the shopper's cart line items in durable
// client-local storage. The persisted JSON array under the cart key is the
// sole source of truth: every operation re-reads it, and every mutation
// writes it back before returning (write-through, never deferred).
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yeneshop/storefront/pkg/idx"
	"github.com/yeneshop/storefront/pkg/pricing"
	"github.com/yeneshop/storefront/pkg/slogx"
	"github.com/yeneshop/storefront/pkg/storage"
)

// ErrInvalidQuantity rejects an add with a quantity below one. Quantity
// updates below one are silent no-ops instead, see UpdateQuantity.
var ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")

// Store is the cart store. It owns the cart key in the injected storage
// and nothing else.
type Store struct {
	store storage.Store
}

// NewStore creates a cart store over the given storage.
func NewStore(store storage.Store) *Store {
	return &Store{store: store}
}

// AddItemParams describes a shopping action: the product/variant being
// added and the display attributes to capture on the new line.
type AddItemParams struct {
	ProductID string
	VariantID string
	Name      string
	UnitPrice float64
	Quantity  int
	Color     string
	Size      string
	ImageURL  string
}

// Load reads the persisted cart. A missing key, corrupt JSON or
// non-array content degrades to an empty cart rather than surfacing an
// error: a broken cart should never take the storefront down.
func (s *Store) Load(ctx context.Context) []LineItem {
	raw, err := s.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slogx.FromContext(ctx).Warn("failed to read stored cart, starting empty", "error", err)
		}
		return []LineItem{}
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slogx.FromContext(ctx).Warn("stored cart is corrupt, starting empty", "error", err)
		return []LineItem{}
	}

	// Validate on load: entries that lost their identity or quantity in a
	// legacy schema don't make it back in.
	valid := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			continue
		}
		if item.ID == "" {
			item.ID = idx.New().String()
		}
		valid = append(valid, item)
	}
	if dropped := len(items) - len(valid); dropped > 0 {
		slogx.FromContext(ctx).Warn("dropped invalid cart entries on load", "dropped", dropped)
	}
	return valid
}

// AddItem merges the product/variant into the cart: a line with the same
// merge key just accumulates quantity (price and attributes of the
// existing line are left untouched), anything else appends a new line with
// a fresh id. The updated cart is persisted before returning.
func (s *Store) AddItem(ctx context.Context, p AddItemParams) ([]LineItem, error) {
	if p.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	incoming := LineItem{
		ID:            idx.New().String(),
		ProductID:     p.ProductID,
		VariantID:     p.VariantID,
		Name:          p.Name,
		UnitPrice:     p.UnitPrice,
		Quantity:      p.Quantity,
		SelectedColor: p.Color,
		SelectedSize:  p.Size,
		ImageURL:      p.ImageURL,
	}

	items := s.Load(ctx)
	for i := range items {
		if items[i].mergeKey() == incoming.mergeKey() {
			items[i].Quantity += p.Quantity
			return s.persist(ctx, items)
		}
	}

	return s.persist(ctx, append(items, incoming))
}

// UpdateQuantity replaces the quantity of the identified line. A quantity
// below one or an unknown id leaves the cart unchanged without an error:
// stale ids from concurrent UI re-renders are expected, not exceptional.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) ([]LineItem, error) {
	items := s.Load(ctx)
	if quantity < 1 {
		return items, nil
	}

	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			return s.persist(ctx, items)
		}
	}
	return items, nil
}

// RemoveItem removes the identified line; unknown ids are a no-op.
func (s *Store) RemoveItem(ctx context.Context, itemID string) ([]LineItem, error) {
	items := s.Load(ctx)

	kept := make([]LineItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if !removed {
		return items, nil
	}
	return s.persist(ctx, kept)
}

// Clear persists an empty cart. Checkout calls this only after the order
// submission is confirmed.
func (s *Store) Clear(ctx context.Context) ([]LineItem, error) {
	return s.persist(ctx, []LineItem{})
}

// Total computes the cart total fresh from storage on every call.
func (s *Store) Total(ctx context.Context) float64 {
	var total float64
	for _, item := range s.Load(ctx) {
		total += pricing.LinePrice(item.UnitPrice, 0, item.Quantity)
	}
	return total
}

// persist is the single write-through point for every mutation.
func (s *Store) persist(ctx context.Context, items []LineItem) ([]LineItem, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("cart: failed to encode cart: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyCart, string(raw)); err != nil {
		return nil, fmt.Errorf("cart: failed to persist cart: %w", err)
	}
	return items, nil
}
