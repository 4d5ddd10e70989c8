// Package cart keeps each session's cart as an ordered list of line
// items behind the stash blob port. Every mutation persists the whole
// list; an unreadable payload loads as an empty cart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"bakehouse/models"
	"bakehouse/stash"
)

var ErrQuantityTooLow = errors.New("quantity below minimum")

type Store struct {
	blob        stash.Blob
	minQuantity int
}

func NewStore(blob stash.Blob, minQuantity int) *Store {
	if minQuantity < 1 {
		minQuantity = 1
	}
	return &Store{blob: blob, minQuantity: minQuantity}
}

func key(sessionID string) string {
	return "cart:" + sessionID
}

// load never fails: missing or corrupt state means an empty cart.
func (s *Store) load(ctx context.Context, sessionID string) []models.CartItem {
	data, ok, err := s.blob.Load(ctx, key(sessionID))
	if err != nil {
		log.Println("cart load error:", err)
		return []models.CartItem{}
	}
	if !ok {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Println("cart unmarshal error:", err)
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

func (s *Store) save(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.blob.Save(ctx, key(sessionID), data)
}

// Add appends a new line item. Duplicate adds for the same product stay
// separate lines; nothing is ever merged.
func (s *Store) Add(ctx context.Context, sessionID string, product models.Product, quantity int, addOns []models.AddOn, variant *models.ProductVariant) (models.CartItem, error) {
	if quantity < s.minQuantity {
		return models.CartItem{}, ErrQuantityTooLow
	}
	if addOns == nil {
		addOns = []models.AddOn{}
	}

	item := models.CartItem{
		ProductID:       product.ID,
		Product:         product,
		Quantity:        quantity,
		SelectedAddOns:  addOns,
		SelectedVariant: variant,
	}
	item.Recompute()

	items := append(s.load(ctx, sessionID), item)
	if err := s.save(ctx, sessionID, items); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Remove drops the line at index; out-of-range is a silent no-op.
func (s *Store) Remove(ctx context.Context, sessionID string, index int) error {
	items := s.load(ctx, sessionID)
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	return s.save(ctx, sessionID, items)
}

// UpdateQuantity overwrites the line's quantity and recomputes its
// total from the line's own base price and add-ons. Quantities below 1
// and out-of-range indexes leave the cart untouched.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) error {
	if quantity < 1 {
		return nil
	}
	items := s.load(ctx, sessionID)
	if index < 0 || index >= len(items) {
		return nil
	}
	items[index].Quantity = quantity
	items[index].Recompute()
	return s.save(ctx, sessionID, items)
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.blob.Delete(ctx, key(sessionID))
}

// Items returns the cart lines in insertion order.
func (s *Store) Items(ctx context.Context, sessionID string) []models.CartItem {
	return s.load(ctx, sessionID)
}

// Total sums every line's totalPrice.
func (s *Store) Total(ctx context.Context, sessionID string) int {
	total := 0
	for _, item := range s.load(ctx, sessionID) {
		total += item.TotalPrice
	}
	return total
}

// ItemCount sums quantities, not lines.
func (s *Store) ItemCount(ctx context.Context, sessionID string) int {
	count := 0
	for _, item := range s.load(ctx, sessionID) {
		count += item.Quantity
	}
	return count
}
