package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/alpha-site/internal/infra/http/handlers"
	appmw "github.com/xavierca1/alpha-site/internal/infra/http/middleware"
)

type routes struct {
	contact     *handlers.ContactHandler
	currency    *handlers.CurrencyHandler
	formOptions *handlers.FormOptionsHandler
	health      *handlers.HealthHandler
	limiter     *appmw.IPRateLimiter
}

func newRouter(allowedOrigins []string, h routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(h.limiter.Handler).Post("/contact", h.contact.Submit)
		r.Get("/currency", h.currency.Locale)
		r.Get("/pricing", h.currency.Pricing)
		r.Get("/budget-ranges", h.currency.BudgetRanges)
		r.Get("/form-options", h.formOptions.Handle)
	})

	return r
}
