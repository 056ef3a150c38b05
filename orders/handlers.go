package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/mail"
	"time"

	"inkpress/cart"
	"inkpress/middleware"
	"inkpress/models"
	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Service *Service
	Carts   *cart.Store
}

func NewHandler(service *Service, carts *cart.Store) *Handler {
	return &Handler{Service: service, Carts: carts}
}

type checkoutPayload struct {
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

func validateCheckout(p checkoutPayload) string {
	if len(p.CustomerName) < 2 {
		return "Name must be at least 2 characters"
	}
	if _, err := mail.ParseAddress(p.CustomerEmail); err != nil {
		return "Invalid email address"
	}
	if p.CustomerPhone != "" && len(p.CustomerPhone) < 10 {
		return "Phone number must be at least 10 digits"
	}
	if len(p.ShippingAddress.AddressLine1) < 5 {
		return "Address is required"
	}
	if len(p.ShippingAddress.City) < 2 {
		return "City is required"
	}
	if len(p.ShippingAddress.Postcode) < 5 {
		return "Valid postcode is required"
	}
	return ""
}

// PlaceOrder turns the session cart plus the checkout form into a persisted
// order. The cart is cleared only after the store confirms the insert, so a
// failed submission keeps the cart intact for a retry.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload checkoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("PlaceOrder decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if msg := validateCheckout(payload); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}
	if payload.ShippingAddress.Country == "" {
		payload.ShippingAddress.Country = "United Kingdom"
	}

	sessionCart := h.Carts.Get(middleware.SessionIDFromContext(r.Context()))
	cartItems := sessionCart.Items()
	if len(cartItems) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			Price:         item.Price,
			Customization: item.Customization,
		})
	}

	order, err := h.Service.Create(ctx, CreateInput{
		CustomerName:    payload.CustomerName,
		CustomerEmail:   payload.CustomerEmail,
		CustomerPhone:   payload.CustomerPhone,
		ShippingAddress: payload.ShippingAddress,
		Items:           items,
		TotalAmount:     sessionCart.TotalPrice(),
	})
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			log.Println("PlaceOrder invariant violation:", err)
		} else {
			log.Println("PlaceOrder error:", err)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	// only now is it safe to drop the cart contents
	sessionCart.Clear()

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrder looks up an order by its human-readable number. An unknown
// number is a 404 the tracking page renders as "not found"; a store failure
// is a 500 the page renders as "try again".
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := h.Service.ByNumber(ctx, ps.ByName("orderNumber"))
	if err != nil {
		log.Println("GetOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not look up order, please retry")
		return
	}
	if order == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
