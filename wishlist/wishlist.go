// Package wishlist keeps each session's favorited products, a set
// deduplicated by product id. Same persistence pattern as the cart,
// under its own key.
package wishlist

import (
	"context"
	"encoding/json"
	"log"

	"bakehouse/models"
	"bakehouse/stash"
)

type Store struct {
	blob stash.Blob
}

func NewStore(blob stash.Blob) *Store {
	return &Store{blob: blob}
}

func key(sessionID string) string {
	return "wishlist:" + sessionID
}

func (s *Store) load(ctx context.Context, sessionID string) []models.Product {
	data, ok, err := s.blob.Load(ctx, key(sessionID))
	if err != nil {
		log.Println("wishlist load error:", err)
		return []models.Product{}
	}
	if !ok {
		return []models.Product{}
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Println("wishlist unmarshal error:", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

func (s *Store) save(ctx context.Context, sessionID string, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.blob.Save(ctx, key(sessionID), data)
}

// Add is idempotent: a product already present is left alone.
func (s *Store) Add(ctx context.Context, sessionID string, product models.Product) error {
	products := s.load(ctx, sessionID)
	for _, p := range products {
		if p.ID == product.ID {
			return nil
		}
	}
	return s.save(ctx, sessionID, append(products, product))
}

// Remove is a no-op when the product is absent.
func (s *Store) Remove(ctx context.Context, sessionID string, productID int) error {
	products := s.load(ctx, sessionID)
	for i, p := range products {
		if p.ID == productID {
			return s.save(ctx, sessionID, append(products[:i], products[i+1:]...))
		}
	}
	return nil
}

// Toggle adds the product if absent, removes it if present.
func (s *Store) Toggle(ctx context.Context, sessionID string, product models.Product) error {
	if s.Contains(ctx, sessionID, product.ID) {
		return s.Remove(ctx, sessionID, product.ID)
	}
	return s.Add(ctx, sessionID, product)
}

func (s *Store) Contains(ctx context.Context, sessionID string, productID int) bool {
	for _, p := range s.load(ctx, sessionID) {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *Store) Products(ctx context.Context, sessionID string) []models.Product {
	return s.load(ctx, sessionID)
}

func (s *Store) Count(ctx context.Context, sessionID string) int {
	return len(s.load(ctx, sessionID))
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.blob.Delete(ctx, key(sessionID))
}
