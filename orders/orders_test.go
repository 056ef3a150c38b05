package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkpress/cart"
	"inkpress/globals"
	"inkpress/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	insertErr error
	findErr   error
	inserted  []models.Order
	byNumber  map[string]models.Order
}

func (f *fakeBackend) Insert(ctx context.Context, order models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *fakeBackend) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if order, ok := f.byNumber[orderNumber]; ok {
		return &order, nil
	}
	return nil, nil
}

func testInput() CreateInput {
	return CreateInput{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		ShippingAddress: models.ShippingAddress{
			AddressLine1: "12 Analytical Row",
			City:         "London",
			Postcode:     "EC1A 1AA",
			Country:      "United Kingdom",
		},
		Items: []models.OrderItem{
			{ProductID: "p1", ProductName: "Business Cards", Quantity: 2, Price: 10.00},
		},
		TotalAmount: 20.00,
	}
}

func TestCreateSetsPendingAndPersists(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend)

	order, err := svc.Create(context.Background(), testInput())
	require.NoError(t, err)

	require.Equal(t, models.OrderPending, order.Status)
	require.Regexp(t, orderNumberPattern, order.OrderNumber)
	require.NotEmpty(t, order.OrderID)
	require.Nil(t, order.CustomerPhone)
	require.False(t, order.CreatedAt.IsZero())

	require.Len(t, backend.inserted, 1)
	require.Equal(t, order.OrderNumber, backend.inserted[0].OrderNumber)
}

func TestCreatePropagatesBackendFailure(t *testing.T) {
	backend := &fakeBackend{insertErr: errors.New("write concern failed")}
	svc := NewService(backend)

	_, err := svc.Create(context.Background(), testInput())
	require.Error(t, err)
	require.Empty(t, backend.inserted)
}

func TestByNumberAbsentIsNotAnError(t *testing.T) {
	svc := NewService(&fakeBackend{})

	order, err := svc.ByNumber(context.Background(), "ORD-0-XXXXXXX")
	require.NoError(t, err)
	require.Nil(t, order)
}

// --- handler tests ---

func sessionRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(r.Context(), globals.SessionIDKey, "test-session")
	return r.WithContext(ctx)
}

func checkoutBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"customerName":  "Ada Lovelace",
		"customerEmail": "ada@example.com",
		"shippingAddress": map[string]string{
			"addressLine1": "12 Analytical Row",
			"city":         "London",
			"postcode":     "EC1A 1AA",
			"country":      "United Kingdom",
		},
	})
	require.NoError(t, err)
	return body
}

func seededCarts(t *testing.T) *cart.Store {
	t.Helper()
	carts := cart.NewStore()
	c := carts.Get("test-session")
	require.NoError(t, c.AddItem(models.Product{ProductID: "p1", Name: "Business Cards"}, 2, nil, 10.00))
	require.NoError(t, c.AddItem(models.Product{ProductID: "p2", Name: "Flyers"}, 1, nil, 5.50))
	return carts
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	backend := &fakeBackend{}
	carts := seededCarts(t)
	h := NewHandler(NewService(backend), carts)

	w := httptest.NewRecorder()
	h.PlaceOrder(w, sessionRequest(http.MethodPost, "/api/orders", checkoutBody(t)), nil)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, backend.inserted, 1)
	require.InDelta(t, 25.50, backend.inserted[0].TotalAmount, 1e-9)
	require.Len(t, backend.inserted[0].Items, 2)

	// cart emptied only after the confirmed insert
	require.Zero(t, carts.Get("test-session").TotalItems())
}

func TestPlaceOrderKeepsCartOnFailure(t *testing.T) {
	backend := &fakeBackend{insertErr: errors.New("store unavailable")}
	carts := seededCarts(t)
	h := NewHandler(NewService(backend), carts)

	w := httptest.NewRecorder()
	h.PlaceOrder(w, sessionRequest(http.MethodPost, "/api/orders", checkoutBody(t)), nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	c := carts.Get("test-session")
	require.Len(t, c.Items(), 2)
	require.InDelta(t, 25.50, c.TotalPrice(), 1e-9)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	backend := &fakeBackend{}
	h := NewHandler(NewService(backend), cart.NewStore())

	w := httptest.NewRecorder()
	h.PlaceOrder(w, sessionRequest(http.MethodPost, "/api/orders", checkoutBody(t)), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, backend.inserted)
}

func TestPlaceOrderRejectsBadForm(t *testing.T) {
	h := NewHandler(NewService(&fakeBackend{}), seededCarts(t))

	body, err := json.Marshal(map[string]any{
		"customerName":  "A",
		"customerEmail": "not-an-email",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.PlaceOrder(w, sessionRequest(http.MethodPost, "/api/orders", body), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderDistinguishesNotFoundFromFailure(t *testing.T) {
	known := models.Order{OrderNumber: "ORD-1-AAAAAAA", Status: models.OrderPending}
	backend := &fakeBackend{byNumber: map[string]models.Order{known.OrderNumber: known}}
	h := NewHandler(NewService(backend), cart.NewStore())

	lookup := func(number string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/orders/"+number, nil)
		h.GetOrder(w, r, httprouter.Params{{Key: "orderNumber", Value: number}})
		return w
	}

	require.Equal(t, http.StatusOK, lookup(known.OrderNumber).Code)
	require.Equal(t, http.StatusNotFound, lookup("ORD-2-BBBBBBB").Code)

	backend.findErr = errors.New("store unavailable")
	require.Equal(t, http.StatusInternalServerError, lookup(known.OrderNumber).Code)
}
