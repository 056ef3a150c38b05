package models

import "time"

// Category groups products in the storefront.
type Category struct {
	CategoryID  string    `json:"categoryId" bson:"categoryId"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CustomizationOptions maps an option name ("size", "finish", ...) to the
// values a customer may pick. Option sets vary per product and mix strings
// with numbers, so the value lists are left loosely typed.
type CustomizationOptions map[string][]any

// Product is a catalog entry. Products are read-only from the storefront's
// point of view; edits happen out of band.
type Product struct {
	ProductID     string               `json:"productId" bson:"productId"`
	CategoryID    string               `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Name          string               `json:"name" bson:"name"`
	Slug          string               `json:"slug" bson:"slug"`
	Description   string               `json:"description,omitempty" bson:"description,omitempty"`
	BasePrice     float64              `json:"basePrice" bson:"basePrice"`
	ImageURL      string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Features      []string             `json:"features,omitempty" bson:"features,omitempty"`
	Customization CustomizationOptions `json:"customizationOptions,omitempty" bson:"customizationOptions,omitempty"`
	IsFeatured    bool                 `json:"isFeatured" bson:"isFeatured"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt"`
}

// GalleryItem is a showcase piece displayed on the gallery page.
type GalleryItem struct {
	ItemID      string    `json:"itemId" bson:"itemId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
