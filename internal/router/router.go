package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SolarGUY14/EasyCeipt/internal/handlers"
	"github.com/SolarGUY14/EasyCeipt/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	auth := middleware.NewMiddleware(deps.AuthVerifier)

	ph := handlers.NewPurchaseHandlers(deps)
	rh := handlers.NewReceiptHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(auth.Auth)
			r.Mount("/purchases", ph.PurchaseRoutes())
			r.Mount("/receipts", rh.ReceiptRoutes())
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}
