package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"bakehouse/catalog"
	"bakehouse/middleware"
	"bakehouse/models"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// AddToCart appends a line item. The product, add-ons, and variant are
// resolved from the catalog by id, so prices always come from the
// server-side definitions.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		ProductID int   `json:"productId"`
		Quantity  int   `json:"quantity"`
		AddOnIDs  []int `json:"addOnIds"`
		VariantID *int  `json:"variantId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	product, ok := catalog.ByID(body.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	addOns := []models.AddOn{}
	for _, id := range body.AddOnIDs {
		found := false
		for _, a := range product.AddOns {
			if a.ID == id {
				addOns = append(addOns, a)
				found = true
				break
			}
		}
		if !found {
			http.Error(w, "Unknown add-on for this product", http.StatusBadRequest)
			return
		}
	}

	var variant *models.ProductVariant
	if body.VariantID != nil {
		for _, v := range product.Variants {
			if v.ID == *body.VariantID {
				variant = &v
				break
			}
		}
		if variant == nil {
			http.Error(w, "Unknown variant for this product", http.StatusBadRequest)
			return
		}
	}

	item, err := h.Store.Add(ctx, middleware.SessionID(r), product, body.Quantity, addOns, variant)
	if errors.Is(err, ErrQuantityTooLow) {
		http.Error(w, "Quantity must be at least 1", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GetCart returns the session's cart lines in insertion order.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, h.Store.Items(ctx, middleware.SessionID(r)))
}

// GetCartSummary returns the running total and item count for the header badge.
func (h *Handler) GetCartSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID := middleware.SessionID(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total":     h.Store.Total(ctx, sessionID),
		"itemCount": h.Store.ItemCount(ctx, sessionID),
	})
}

// UpdateQuantity overwrites one line's quantity.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateQuantity(ctx, middleware.SessionID(r), index, body.Quantity); err != nil {
		log.Println("UpdateQuantity save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveFromCart drops one line.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}

	if err := h.Store.Remove(ctx, middleware.SessionID(r), index); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.Clear(ctx, middleware.SessionID(r)); err != nil {
		log.Println("ClearCart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
