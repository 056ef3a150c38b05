package catalog

import (
	"context"
	"log"
	"net/http"
	"time"

	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
)

func (s *Service) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := s.ListCategories(ctx)
	if err != nil {
		log.Println("GetCategories error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load categories")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// GetProducts lists the catalog, optionally filtered with ?category=<slug>.
func (s *Service) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := s.ListProducts(ctx, r.URL.Query().Get("category"))
	if err != nil {
		log.Println("GetProducts error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (s *Service) GetFeaturedProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	featured, err := s.ListFeatured(ctx)
	if err != nil {
		log.Println("GetFeaturedProducts error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load featured products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, featured)
}

func (s *Service) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := s.ProductBySlug(ctx, ps.ByName("slug"))
	if err != nil {
		log.Println("GetProduct error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load product")
		return
	}
	if product == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}
