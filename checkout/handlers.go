package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"bakehouse/cart"
	"bakehouse/middleware"
	"bakehouse/models"
	"bakehouse/stash"
	"bakehouse/utils"
	"bakehouse/whatsapp"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Cart     *cart.Store
	Blob     stash.Blob
	Compiler *Compiler
}

func NewHandler(cartStore *cart.Store, blob stash.Blob, compiler *Compiler) *Handler {
	return &Handler{Cart: cartStore, Blob: blob, Compiler: compiler}
}

func orderKey(sessionID string) string {
	return "order:" + sessionID
}

// PlaceOrder compiles the session's cart into an order, builds the
// WhatsApp handoff link, clears the cart, and keeps the order under the
// session's last-order key for the confirmation screen. Nothing else
// persists it.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var body struct {
		Customer        models.Customer        `json:"customer"`
		DeliveryAddress models.DeliveryAddress `json:"deliveryAddress"`
		DeliveryOption  models.DeliveryOption  `json:"deliveryOption"`
		PaymentMethod   models.PaymentMethod   `json:"paymentMethod"`
		PaymentProofURL string                 `json:"paymentProofUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	sessionID := middleware.SessionID(r)
	in := Input{
		Items:           h.Cart.Items(ctx, sessionID),
		Customer:        body.Customer,
		Address:         body.DeliveryAddress,
		DeliveryOption:  body.DeliveryOption,
		PaymentMethod:   body.PaymentMethod,
		PaymentProofURL: body.PaymentProofURL,
	}

	if err := Validate(in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.Compiler.Compile(in)
	if err != nil {
		log.Println("PlaceOrder compile error:", err)
		http.Error(w, "Order compilation failed", http.StatusInternalServerError)
		return
	}

	message := h.Compiler.Message(order)
	link := whatsapp.Link(h.Compiler.WhatsAppNumber, message)

	if data, err := json.Marshal(order); err == nil {
		if err := h.Blob.Save(ctx, orderKey(sessionID), data); err != nil {
			log.Println("PlaceOrder order save error:", err)
		}
	}

	if err := h.Cart.Clear(ctx, sessionID); err != nil {
		log.Println("PlaceOrder cart clear error:", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"order":       order,
		"message":     message,
		"whatsappUrl": link,
	})
}

// GetQuote previews the cost breakdown for the current cart and a
// delivery option, without touching anything.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	option := models.DeliveryOption(r.URL.Query().Get("delivery"))
	if option == "" {
		option = models.DeliveryStandard
	}

	totals, err := h.Compiler.Quote(h.Cart.Items(ctx, middleware.SessionID(r)), option)
	if errors.Is(err, ErrUnknownDelivery) {
		http.Error(w, "Unknown delivery option", http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, totals)
}

func (h *Handler) lastOrder(ctx context.Context, sessionID string) (models.Order, bool) {
	data, ok, err := h.Blob.Load(ctx, orderKey(sessionID))
	if err != nil || !ok {
		return models.Order{}, false
	}
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		log.Println("last order unmarshal error:", err)
		return models.Order{}, false
	}
	return order, true
}

// GetLastOrder returns the session's most recent compiled order.
func (h *Handler) GetLastOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := h.lastOrder(ctx, middleware.SessionID(r))
	if !ok {
		http.Error(w, "No order for this session", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GetReceipt renders the last order as a PDF receipt.
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := h.lastOrder(ctx, middleware.SessionID(r))
	if !ok {
		http.Error(w, "No order for this session", http.StatusNotFound)
		return
	}

	pdf, err := h.Compiler.Receipt(order)
	if err != nil {
		log.Println("GetReceipt error:", err)
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=receipt-"+order.Reference+".pdf")
	w.Write(pdf)
}

// GetHandoffQR renders the last order's WhatsApp link as a PNG QR code.
func (h *Handler) GetHandoffQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := h.lastOrder(ctx, middleware.SessionID(r))
	if !ok {
		http.Error(w, "No order for this session", http.StatusNotFound)
		return
	}

	link := whatsapp.Link(h.Compiler.WhatsAppNumber, h.Compiler.Message(order))
	png, err := whatsapp.QR(link, 256)
	if err != nil {
		log.Println("GetHandoffQR error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
