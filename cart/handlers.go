package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"inkpress/catalog"
	"inkpress/middleware"
	"inkpress/models"
	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler exposes the session cart over HTTP. Price snapshots come from the
// catalog at add time; the client never supplies a price.
type Handler struct {
	Carts   *Store
	Catalog *catalog.Service
}

func NewHandler(carts *Store, cat *catalog.Service) *Handler {
	return &Handler{Carts: carts, Catalog: cat}
}

// cartView is the response shape for every cart endpoint: current entries
// plus derived totals, recomputed on each request.
type cartView struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func view(c *Cart) cartView {
	return cartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

func (h *Handler) sessionCart(r *http.Request) *Cart {
	return h.Carts.Get(middleware.SessionIDFromContext(r.Context()))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, view(h.sessionCart(r)))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID     string         `json:"productId"`
		Quantity      int            `json:"quantity"`
		Customization map[string]any `json:"customization"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	product, err := h.Catalog.ProductByID(ctx, payload.ProductID)
	if err != nil {
		log.Println("AddItem product lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load product")
		return
	}
	if product == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	c := h.sessionCart(r)
	if err := c.AddItem(*product, payload.Quantity, payload.Customization, product.BasePrice); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, view(c))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	c := h.sessionCart(r)
	if err := c.UpdateQuantity(ps.ByName("productId"), payload.Quantity); err != nil {
		if errors.Is(err, ErrQuantity) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not update cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, view(c))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c := h.sessionCart(r)
	c.RemoveItem(ps.ByName("productId"))
	utils.RespondWithJSON(w, http.StatusOK, view(c))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.sessionCart(r)
	c.Clear()
	utils.RespondWithJSON(w, http.StatusOK, view(c))
}
