package models

import "time"

// CartItem is a single line in a session's cart. Price is a snapshot of the
// product's unit price at add time; later catalog changes never reprice an
// item already in a cart.
type CartItem struct {
	ProductID     string         `json:"productId" bson:"productId"`
	ProductName   string         `json:"productName" bson:"productName"`
	Quantity      int            `json:"quantity" bson:"quantity"`
	Price         float64        `json:"price" bson:"price"`
	Customization map[string]any `json:"customization" bson:"customization"`
	AddedAt       time.Time      `json:"addedAt" bson:"addedAt"`
}
