package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/alpha-site/internal/entity"
)

// Geocoder maps a position to an ISO 3166 alpha-2 country code.
type Geocoder interface {
	CountryCode(ctx context.Context, lat, lon float64) (string, error)
}

// CountryDirectory maps a country code to its first listed currency code.
type CountryDirectory interface {
	CurrencyCode(ctx context.Context, countryCode string) (string, error)
}

// RateProvider returns units of each currency per one unit of base.
type RateProvider interface {
	Rates(ctx context.Context, base string) (map[string]float64, error)
}

// LookupCache stores lookup results between requests.
type LookupCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LeadNotifier delivers a lead to the business, by SMTP or through the queue.
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead entity.Lead) error
}

// LocaleResolver is what the pricing use case needs from currency resolution.
type LocaleResolver interface {
	Execute(ctx context.Context, coords *entity.Coordinates) entity.Locale
}

// PlanCatalog is the static list of priced packages and budget options.
type PlanCatalog interface {
	Plans() []entity.PricingCard
	BudgetRanges() []entity.BudgetRange
}

// Recorder receives business metrics. A nil Recorder is allowed.
type Recorder interface {
	RecordLeadSubmission(status string)
	RecordCurrencyResolution(outcome string)
	RecordIntegrationError(service string)
}

type nopRecorder struct{}

func (nopRecorder) RecordLeadSubmission(string)     {}
func (nopRecorder) RecordCurrencyResolution(string) {}
func (nopRecorder) RecordIntegrationError(string)   {}
