package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"bakehouse/catalog"
	"bakehouse/middleware"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func decodeProductID(r *http.Request) (int, bool) {
	var body struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return 0, false
	}
	return body.ProductID, true
}

// GetWishlist returns the session's favorited products.
func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	utils.RespondWithJSON(w, http.StatusOK, h.Store.Products(ctx, middleware.SessionID(r)))
}

// AddToWishlist favorites a product; already-present products are left alone.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, ok := decodeProductID(r)
	if !ok {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	product, ok := catalog.ByID(productID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := h.Store.Add(ctx, middleware.SessionID(r), product); err != nil {
		log.Println("AddToWishlist save error:", err)
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// ToggleWishlist flips a product's membership and reports the new state.
func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, ok := decodeProductID(r)
	if !ok {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	product, ok := catalog.ByID(productID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	sessionID := middleware.SessionID(r)
	if err := h.Store.Toggle(ctx, sessionID, product); err != nil {
		log.Println("ToggleWishlist save error:", err)
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"inWishlist": h.Store.Contains(ctx, sessionID, productID),
		"count":      h.Store.Count(ctx, sessionID),
	})
}

// CheckWishlist reports whether one product is favorited.
func (h *Handler) CheckWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, err := strconv.Atoi(ps.ByName("productid"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"inWishlist": h.Store.Contains(ctx, middleware.SessionID(r), productID),
	})
}

// RemoveFromWishlist unfavorites a product; absent products are a no-op.
func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID, err := strconv.Atoi(ps.ByName("productid"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.Store.Remove(ctx, middleware.SessionID(r), productID); err != nil {
		log.Println("RemoveFromWishlist save error:", err)
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearWishlist empties the session's wishlist.
func (h *Handler) ClearWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.Clear(ctx, middleware.SessionID(r)); err != nil {
		log.Println("ClearWishlist error:", err)
		http.Error(w, "Failed to clear wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
