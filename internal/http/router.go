package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/luminous-shop/catalog-api/docs"
	"github.com/luminous-shop/catalog-api/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handlers.HealthHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Get("/api/products", handlers.SearchProductsHandler)
		r.Get("/api/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/api/stats", handlers.StatsHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/admin/reload-products", handlers.ReloadProductsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
