package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakehouse/middleware"
	"bakehouse/stash"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handle httprouter.Handle, method, target, body string, ps httprouter.Params) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("X-Session-ID", "test-session")
	rec := httptest.NewRecorder()
	middleware.WithSession(handle)(rec, req, ps)
	return rec
}

func TestAddToCartHandler(t *testing.T) {
	h := NewHandler(NewStore(stash.NewMemory(), 1))

	rec := doRequest(t, h.AddToCart, http.MethodPost, "/api/cart/items",
		`{"productId":2,"quantity":2,"addOnIds":[4]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item struct {
		TotalPrice int `json:"totalPrice"`
		Quantity   int `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	// Jollof Rice 65000 + Extra Chicken 18000, × 2
	assert.Equal(t, 166000, item.TotalPrice)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddToCartHandlerRejectsBadInput(t *testing.T) {
	h := NewHandler(NewStore(stash.NewMemory(), 1))

	cases := map[string]struct {
		body string
		code int
	}{
		"zero quantity":   {`{"productId":2,"quantity":0}`, http.StatusBadRequest},
		"unknown product": {`{"productId":999,"quantity":1}`, http.StatusNotFound},
		"unknown add-on":  {`{"productId":2,"quantity":1,"addOnIds":[999]}`, http.StatusBadRequest},
		"unknown variant": {`{"productId":2,"quantity":1,"variantId":5}`, http.StatusBadRequest},
		"malformed json":  {`{"productId":`, http.StatusBadRequest},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(t, h.AddToCart, http.MethodPost, "/api/cart/items", tc.body, nil)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCartSummaryHandler(t *testing.T) {
	h := NewHandler(NewStore(stash.NewMemory(), 1))

	rec := doRequest(t, h.AddToCart, http.MethodPost, "/api/cart/items",
		`{"productId":4,"quantity":3}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h.GetCartSummary, http.MethodGet, "/api/cart/summary", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Total     int `json:"total"`
		ItemCount int `json:"itemCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 45000, summary.Total) // Meat Pie 15000 × 3
	assert.Equal(t, 3, summary.ItemCount)
}

func TestUpdateAndRemoveHandlers(t *testing.T) {
	h := NewHandler(NewStore(stash.NewMemory(), 1))

	rec := doRequest(t, h.AddToCart, http.MethodPost, "/api/cart/items",
		`{"productId":6,"quantity":1}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	ps := httprouter.Params{{Key: "index", Value: "0"}}
	rec = doRequest(t, h.UpdateQuantity, http.MethodPut, "/api/cart/items/0", `{"quantity":4}`, ps)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h.GetCart, http.MethodGet, "/api/cart", "", nil)
	var items []struct {
		Quantity int `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	rec = doRequest(t, h.RemoveFromCart, http.MethodDelete, "/api/cart/items/0", "", ps)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h.GetCart, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
