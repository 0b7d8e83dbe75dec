package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomerRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

func New(
	customerController CustomerRouteRegistrar,
	accountController AccountRouteRegistrar,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	registerSwaggerRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	if customerController != nil {
		customerController.RegisterRoutes(r)
	}
	if accountController != nil {
		accountController.RegisterRoutes(r)
	}

	return r
}
