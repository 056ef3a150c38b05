package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"inkpress/cart"
	"inkpress/catalog"
	"inkpress/gallery"
	"inkpress/middleware"
	"inkpress/orders"
	"inkpress/quotes"
	"inkpress/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router, svc *catalog.Service) {
	router.GET("/api/catalog/categories", svc.GetCategories)
	router.GET("/api/catalog/products", svc.GetProducts)
	router.GET("/api/catalog/featured", svc.GetFeaturedProducts)
	router.GET("/api/catalog/product/:slug", svc.GetProduct)
}

func AddGalleryRoutes(router *httprouter.Router) {
	router.GET("/api/gallery", gallery.GetGalleryItems)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", middleware.WithSession(h.GetCart))
	router.POST("/api/cart/items", middleware.WithSession(h.AddItem))
	router.PUT("/api/cart/items/:productId", middleware.WithSession(h.UpdateItem))
	router.DELETE("/api/cart/items/:productId", middleware.WithSession(h.RemoveItem))
	router.DELETE("/api/cart", middleware.WithSession(h.ClearCart))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.WithSession(h.PlaceOrder)))
	router.GET("/api/orders/:orderNumber", h.GetOrder)
	router.GET("/api/orders/:orderNumber/qr", h.OrderQR)
	router.GET("/api/orders/:orderNumber/receipt", h.OrderReceipt)
}

func AddQuoteRoutes(router *httprouter.Router, h *quotes.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/quotes", rl.Limit(h.SubmitQuote))
}

// AddStaticRoutes serves uploaded quote artwork and its thumbnails.
func AddStaticRoutes(router *httprouter.Router) {
	dir := os.Getenv("STORAGE_DIR")
	if dir == "" {
		dir = "./static"
	}
	router.ServeFiles("/static/artwork/*filepath", http.Dir(filepath.Join(dir, "artwork")))
}
