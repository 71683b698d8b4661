package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/storefront/catalog-service/app/account"
	"github.com/storefront/catalog-service/app/api"
	"github.com/storefront/catalog-service/app/catalog"
	"github.com/storefront/catalog-service/app/categories"
	"github.com/storefront/catalog-service/app/contact"
	"github.com/storefront/catalog-service/app/metrics"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the routes are served from.
type Dependencies struct {
	Products  catalog.ProductProvider
	Accounts  account.AccountService
	Submitter contact.FormSubmitter
	Log       *zap.Logger
}

func NewRouter(d Dependencies) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(d.Products, d.Log)
	categoryHandler := categories.NewCategoryHandler(d.Products, d.Log)
	accountHandler := account.NewAccountHandler(d.Accounts, d.Log)
	contactHandler := contact.NewContactHandler(d.Submitter, d.Log)

	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, metrics.Instrument(pattern, h))
	}

	handle("GET /products", catalogHandler.HandleGet)
	handle("GET /products/featured", catalogHandler.HandleGetFeatured)
	handle("GET /products/{id}", catalogHandler.HandleGetProduct)
	handle("GET /categories", categoryHandler.HandleGetAll)
	handle("POST /signup", accountHandler.HandleSignUp)
	handle("POST /login", accountHandler.HandleLogIn)
	handle("POST /contact", contactHandler.HandleSubmit)
	handle("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		api.OKResponse(w, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Instrument("GET /metrics", promhttp.Handler()))

	return mux
}
