package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/internal/usecase"
)

type LocaleResolver interface {
	Execute(ctx context.Context, coords *entity.Coordinates) entity.Locale
}

type PriceQuoter interface {
	Quote(ctx context.Context, coords *entity.Coordinates) usecase.PricingOutput
	BudgetOptions(ctx context.Context, coords *entity.Coordinates) usecase.BudgetOutput
}

// CurrencyHandler serves the localized price views. Every endpoint answers 200:
// a failed lookup is reported through locale.fallback, never as an error.
type CurrencyHandler struct {
	resolver LocaleResolver
	pricing  PriceQuoter
}

func NewCurrencyHandler(resolver LocaleResolver, pricing PriceQuoter) *CurrencyHandler {
	return &CurrencyHandler{resolver: resolver, pricing: pricing}
}

// GET /api/currency?lat=&lon=
func (h *CurrencyHandler) Locale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Execute(r.Context(), parseCoordinates(r)))
}

// GET /api/pricing?lat=&lon=
func (h *CurrencyHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pricing.Quote(r.Context(), parseCoordinates(r)))
}

// GET /api/budget-ranges?lat=&lon=
func (h *CurrencyHandler) BudgetRanges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pricing.BudgetOptions(r.Context(), parseCoordinates(r)))
}

// parseCoordinates returns nil unless both lat and lon are present and in range.
func parseCoordinates(r *http.Request) *entity.Coordinates {
	q := r.URL.Query()
	latStr, lonStr := q.Get("lat"), q.Get("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil
	}
	c := entity.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return nil
	}
	return &c
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
