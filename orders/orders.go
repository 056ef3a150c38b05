package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkpress/models"
	"inkpress/utils"
)

// ErrNoRecord marks the invariant violation where the store reported a
// successful insert but handed back no record. Callers treat it as an I/O
// failure; logs keep it distinguishable.
var ErrNoRecord = errors.New("order store returned no record")

// Backend is the write/read surface the order flow needs from the backing
// store. The mongo implementation is the default; tests inject fakes.
type Backend interface {
	Insert(ctx context.Context, order models.Order) error
	FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
}

type CreateInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress models.ShippingAddress
	Items           []models.OrderItem
	TotalAmount     float64
}

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func NewMongoService() *Service {
	return NewService(mongoBackend{})
}

// Create persists a new order with a generated number and status "pending".
// It has no side effects beyond the insert; the HTTP handler owns clearing
// the session cart, and only after Create returns without error.
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Order, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return models.Order{}, fmt.Errorf("customer name and email are required")
	}
	if len(in.Items) == 0 {
		return models.Order{}, fmt.Errorf("order has no items")
	}

	var phone *string
	if in.CustomerPhone != "" {
		phone = &in.CustomerPhone
	}

	now := time.Now()
	order := models.Order{
		OrderID:         utils.GetUUID(),
		OrderNumber:     NewOrderNumber(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   phone,
		ShippingAddress: in.ShippingAddress,
		Items:           in.Items,
		TotalAmount:     in.TotalAmount,
		Status:          models.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.backend.Insert(ctx, order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ByNumber returns the order for a number, or nil when no such order exists.
// Absence is a normal outcome, not an error.
func (s *Service) ByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	return s.backend.FindByNumber(ctx, orderNumber)
}
