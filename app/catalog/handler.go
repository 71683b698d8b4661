package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/storefront/catalog-service/app/api"
	"github.com/storefront/catalog-service/models"
	"go.uber.org/zap"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Rating      Rating  `json:"rating"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

func toProduct(p models.Product) Product {
	return Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Rating:      Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
		Image:       p.Image,
		Description: p.Description,
	}
}

func toProducts(ps []models.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out
}

type ProductProvider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

const (
	defaultLimit  = 20
	maxLimit      = 100
	featuredLimit = 4
	maxFeatured   = 20
)

type CatalogHandler struct {
	repo    ProductProvider
	log     *zap.Logger
	shuffle func(n int, swap func(i, j int))
}

func NewCatalogHandler(r ProductProvider, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo:    r,
		log:     log,
		shuffle: rand.Shuffle,
	}
}

// HandleGet lists the products matching the category, q and sort query parameters,
// paginated by offset and limit. Invalid parameter values fall back to their defaults.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Parse pagination query params
	offset := 0
	limit := defaultLimit

	if oStr := query.Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := query.Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			limit = clamp(l, 1, maxLimit)
		}
	}

	// Parse filters
	criteria := DefaultCriteria()
	if category := query.Get("category"); category != "" {
		criteria.Category = category
	}
	criteria.SearchText = query.Get("q")
	if order, ok := ParseSortOrder(query.Get("sort")); ok {
		criteria.SortOrder = order
	}

	res, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		h.log.Error("failed to get products", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	visible := DeriveVisibleProducts(res, criteria)

	start := min(offset, len(visible))
	end := min(start+limit, len(visible))

	api.OKResponse(w, Response{
		Total:    len(visible),
		Products: toProducts(visible[start:end]),
	})
}

// HandleGetFeatured returns a random selection of products for the landing page.
func (h *CatalogHandler) HandleGetFeatured(w http.ResponseWriter, r *http.Request) {
	limit := featuredLimit
	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			limit = clamp(l, 1, maxFeatured)
		}
	}

	res, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		h.log.Error("failed to get featured products", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	picked := make([]models.Product, len(res))
	copy(picked, res)
	h.shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:min(limit, len(picked))]

	api.OKResponse(w, Response{
		Total:    len(picked),
		Products: toProducts(picked),
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, models.ErrProductNotFound) {
		api.ErrorResponse(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.log.Error("failed to retrieve product", zap.Int("id", id), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.OKResponse(w, toProduct(*product))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
