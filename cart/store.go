package cart

import (
	"errors"
	"sort"
	"sync"
	"time"

	"inkpress/models"
)

// ErrQuantity is returned when an operation would set a quantity below 1.
var ErrQuantity = errors.New("quantity must be a positive integer")

// Cart holds the line items for one storefront session, keyed by product id
// with at most one entry per product. Methods are safe for concurrent use.
//
// The cart is plain in-memory state: no network calls, no persistence. It
// lives as long as the session and is emptied at checkout.
type Cart struct {
	mu    sync.Mutex
	items map[string]*models.CartItem
}

func New() *Cart {
	return &Cart{items: make(map[string]*models.CartItem)}
}

// AddItem inserts the product or, when it is already in the cart, merges the
// quantities. The price snapshot and customization recorded at first add are
// kept; a re-add never rewrites them.
func (c *Cart) AddItem(product models.Product, quantity int, customization map[string]any, price float64) error {
	if quantity <= 0 {
		return ErrQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[product.ProductID]; ok {
		existing.Quantity += quantity
		return nil
	}

	if customization == nil {
		customization = map[string]any{}
	}
	c.items[product.ProductID] = &models.CartItem{
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		Quantity:      quantity,
		Price:         price,
		Customization: customization,
		AddedAt:       time.Now(),
	}
	return nil
}

// RemoveItem deletes the entry for a product; no-op when absent.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, productID)
}

// UpdateQuantity sets the quantity for a product already in the cart.
// Quantities below 1 are rejected and leave the entry untouched; lines are
// removed through RemoveItem, never by zeroing them. Unknown product ids
// are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return ErrQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if item, ok := c.items[productID]; ok {
		item.Quantity = quantity
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*models.CartItem)
}

// Items returns a copy of the current entries, oldest first.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items
}

// TotalItems is the sum of quantities across all entries.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity across all entries, recomputed
// on every call.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Store tracks one cart per storefront session.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for a session, creating it on first touch.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := New()
	s.carts[sessionID] = c
	return c
}

// Drop discards a session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
