package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakehouse/cart"
	"bakehouse/catalog"
	"bakehouse/middleware"
	"bakehouse/stash"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handle httprouter.Handle, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-Session-ID", "test-session")
	rec := httptest.NewRecorder()
	middleware.WithSession(handle)(rec, req, nil)
	return rec
}

func newTestHandler(t *testing.T) (*Handler, *cart.Store, stash.Blob) {
	t.Helper()
	blob := stash.NewMemory()
	cartStore := cart.NewStore(blob, 1)
	return NewHandler(cartStore, blob, testCompiler()), cartStore, blob
}

func fillCart(t *testing.T, cartStore *cart.Store) {
	t.Helper()
	jollof, ok := catalog.ByID(2)
	require.True(t, ok)
	_, err := cartStore.Add(context.Background(), "test-session", jollof, 2, nil, nil)
	require.NoError(t, err)
}

const codOrder = `{
	"customer": {"name": "Ama Kargbo", "phone": "+23276000000"},
	"deliveryAddress": {"street": "12 Siaka Stevens St", "city": "Freetown", "zipCode": "00232"},
	"deliveryOption": "standard",
	"paymentMethod": "cod"
}`

func TestPlaceOrderHandler(t *testing.T) {
	h, cartStore, _ := newTestHandler(t)
	fillCart(t, cartStore)

	rec := doRequest(t, h.PlaceOrder, http.MethodPost, "/api/checkout", codOrder)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Order struct {
			Reference string `json:"reference"`
			Subtotal  int    `json:"subtotal"`
			Total     int    `json:"total"`
			Status    string `json:"status"`
		} `json:"order"`
		Message     string `json:"message"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Jollof Rice 65000 × 2 + standard 10000 + 5% tax
	assert.Equal(t, 130000, resp.Order.Subtotal)
	assert.Equal(t, 146500, resp.Order.Total)
	assert.Equal(t, "confirmed", resp.Order.Status)
	assert.Contains(t, resp.Message, resp.Order.Reference)
	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/232033680260?text="))

	// successful checkout clears the cart
	assert.Empty(t, cartStore.Items(context.Background(), "test-session"))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h.PlaceOrder, http.MethodPost, "/api/checkout", codOrder)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrderMissingProof(t *testing.T) {
	h, cartStore, _ := newTestHandler(t)
	fillCart(t, cartStore)

	body := strings.Replace(codOrder, `"cod"`, `"orange-money"`, 1)
	rec := doRequest(t, h.PlaceOrder, http.MethodPost, "/api/checkout", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// a failed validation leaves the cart untouched
	assert.Len(t, cartStore.Items(context.Background(), "test-session"), 1)
}

func TestGetQuoteHandler(t *testing.T) {
	h, cartStore, _ := newTestHandler(t)
	fillCart(t, cartStore)

	rec := doRequest(t, h.GetQuote, http.MethodGet, "/api/checkout/quote?delivery=express", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var totals Totals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 130000, totals.Subtotal)
	assert.Equal(t, 25000, totals.DeliveryFee)
	assert.Equal(t, totals.Subtotal+totals.DeliveryFee+totals.Tax, totals.Total)

	rec = doRequest(t, h.GetQuote, http.MethodGet, "/api/checkout/quote?delivery=drone", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLastOrderAndReceipt(t *testing.T) {
	h, cartStore, _ := newTestHandler(t)

	rec := doRequest(t, h.GetLastOrder, http.MethodGet, "/api/orders/last", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	fillCart(t, cartStore)
	rec = doRequest(t, h.PlaceOrder, http.MethodPost, "/api/checkout", codOrder)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h.GetLastOrder, http.MethodGet, "/api/orders/last", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h.GetReceipt, http.MethodGet, "/api/orders/receipt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = doRequest(t, h.GetHandoffQR, http.MethodGet, "/api/orders/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
