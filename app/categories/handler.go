package categories

import (
	"context"
	"net/http"

	"github.com/storefront/catalog-service/app/api"
	"github.com/storefront/catalog-service/app/catalog"
	"github.com/storefront/catalog-service/models"
	"go.uber.org/zap"
)

type CategoryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CategoryProvider supplies the product snapshot the category options are derived from.
type CategoryProvider interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
}

type CategoryHandler struct {
	repo CategoryProvider
	log  *zap.Logger
}

func NewCategoryHandler(r CategoryProvider, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, log: log}
}

// HandleGetAll lists the categories present in the loaded products, in first-seen order.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		h.log.Error("failed to fetch categories", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	options := catalog.DeriveCategoryOptions(products)
	response := make([]CategoryResponse, len(options))
	for i, code := range options {
		c := models.NewCategory(code)
		response[i] = CategoryResponse{
			Code: c.Code,
			Name: c.Name,
		}
	}

	api.OKResponse(w, response)
}
