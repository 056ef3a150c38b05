package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// ShippingAddress is a plain value embedded in Order.
type ShippingAddress struct {
	AddressLine1 string `json:"addressLine1" bson:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	City         string `json:"city" bson:"city"`
	Postcode     string `json:"postcode" bson:"postcode"`
	Country      string `json:"country" bson:"country"`
}

// OrderItem snapshots a cart line at checkout. Name, price and customization
// are copied, not referenced, so catalog edits after placement do not rewrite
// order history.
type OrderItem struct {
	ProductID     string         `json:"productId" bson:"productId"`
	ProductName   string         `json:"productName" bson:"productName"`
	Quantity      int            `json:"quantity" bson:"quantity"`
	Price         float64        `json:"price" bson:"price"`
	Customization map[string]any `json:"customization" bson:"customization"`
}

// Order is a finalized checkout. Status is only ever advanced by the
// back-office, never through this API.
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	OrderNumber     string          `json:"orderNumber" bson:"orderNumber"`
	CustomerName    string          `json:"customerName" bson:"customerName"`
	CustomerEmail   string          `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone   *string         `json:"customerPhone" bson:"customerPhone"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	Items           []OrderItem     `json:"items" bson:"items"`
	TotalAmount     float64         `json:"totalAmount" bson:"totalAmount"`
	Status          OrderStatus     `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}
