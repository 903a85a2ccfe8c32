package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

const (
	// Rates are always fetched against the catalog's reference currency.
	ReferenceCurrency = entity.DefaultCurrency

	OutcomeResolved      = "resolved"
	OutcomeNoCoordinates = "no_coordinates"
	OutcomeGeocode       = "geocode_failed"
	OutcomeCountry       = "country_failed"
	OutcomeRates         = "rates_failed"
	OutcomeMissingRate   = "missing_rate"
)

// stageError tags a lookup failure with the hop it happened in.
type stageError struct {
	outcome string
	err     error
}

func (e *stageError) Error() string { return e.outcome + ": " + e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

type ResolveCurrencyUseCase struct {
	Geocoder  Geocoder
	Countries CountryDirectory
	Rates     RateProvider
	Cache     LookupCache
	Timeout   time.Duration
	CacheTTL  time.Duration
	Recorder  Recorder
	Logger    *logging.Logger

	flights singleflight.Group
}

func NewResolveCurrencyUseCase(
	geocoder Geocoder,
	countries CountryDirectory,
	rates RateProvider,
	cache LookupCache,
	timeout time.Duration,
	cacheTTL time.Duration,
	recorder Recorder,
	logger *logging.Logger,
) *ResolveCurrencyUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ResolveCurrencyUseCase{
		Geocoder:  geocoder,
		Countries: countries,
		Rates:     rates,
		Cache:     cache,
		Timeout:   timeout,
		CacheTTL:  cacheTTL,
		Recorder:  recorder,
		Logger:    logger,
	}
}

// Execute never fails: any problem along the chain yields entity.FallbackLocale.
// A nil coords means the visitor denied or could not provide a position.
func (uc *ResolveCurrencyUseCase) Execute(ctx context.Context, coords *entity.Coordinates) entity.Locale {
	if coords == nil || !coords.Valid() {
		uc.Recorder.RecordCurrencyResolution(OutcomeNoCoordinates)
		return entity.FallbackLocale()
	}

	// four decimals is roughly 11m, plenty to merge requests from the same visitor
	key := fmt.Sprintf("locale:%.4f,%.4f", coords.Lat, coords.Lon)
	v, err, _ := uc.flights.Do(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.Timeout)
		defer cancel()
		return uc.resolve(lookupCtx, *coords)
	})
	if err != nil {
		outcome := OutcomeGeocode
		var se *stageError
		if errors.As(err, &se) {
			outcome = se.outcome
		}
		uc.Logger.Warn("currency resolution fell back to default", "stage", outcome, "error", err)
		uc.Recorder.RecordCurrencyResolution(outcome)
		return entity.FallbackLocale()
	}

	uc.Recorder.RecordCurrencyResolution(OutcomeResolved)
	return v.(entity.Locale)
}

func (uc *ResolveCurrencyUseCase) resolve(ctx context.Context, coords entity.Coordinates) (entity.Locale, error) {
	country, err := uc.Geocoder.CountryCode(ctx, coords.Lat, coords.Lon)
	if err != nil {
		uc.Recorder.RecordIntegrationError("geocode")
		return entity.Locale{}, &stageError{OutcomeGeocode, err}
	}

	currency, err := uc.currencyFor(ctx, country)
	if err != nil {
		return entity.Locale{}, &stageError{OutcomeCountry, err}
	}

	table, err := uc.RateTable(ctx)
	if err != nil {
		return entity.Locale{}, &stageError{OutcomeRates, err}
	}

	rate, ok := table[currency]
	if !ok || rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return entity.Locale{}, &stageError{OutcomeMissingRate, fmt.Errorf("no usable rate for %s", currency)}
	}

	return entity.Locale{
		CountryCode:  country,
		CurrencyCode: currency,
		Symbol:       entity.CurrencySymbol(currency),
		Rate:         rate,
	}, nil
}

func (uc *ResolveCurrencyUseCase) currencyFor(ctx context.Context, country string) (string, error) {
	key := "country:" + strings.ToUpper(country)

	var cached string
	if uc.cacheGet(ctx, key, &cached) && cached != "" {
		return cached, nil
	}

	v, err, _ := uc.flights.Do(key, func() (any, error) {
		return uc.Countries.CurrencyCode(ctx, country)
	})
	if err != nil {
		uc.Recorder.RecordIntegrationError("countries")
		return "", err
	}
	currency := v.(string)
	uc.cacheSet(ctx, key, currency)
	return currency, nil
}

// RateTable returns the reference-currency rate table, from cache when fresh.
func (uc *ResolveCurrencyUseCase) RateTable(ctx context.Context) (map[string]float64, error) {
	key := "rates:" + ReferenceCurrency

	var cached map[string]float64
	if uc.cacheGet(ctx, key, &cached) && len(cached) > 0 {
		return cached, nil
	}
	return uc.fetchRates(ctx)
}

// RefreshRates fetches a new table and overwrites the cached one.
func (uc *ResolveCurrencyUseCase) RefreshRates(ctx context.Context) error {
	_, err := uc.fetchRates(ctx)
	return err
}

func (uc *ResolveCurrencyUseCase) fetchRates(ctx context.Context) (map[string]float64, error) {
	key := "rates:" + ReferenceCurrency
	v, err, _ := uc.flights.Do(key, func() (any, error) {
		return uc.Rates.Rates(ctx, ReferenceCurrency)
	})
	if err != nil {
		uc.Recorder.RecordIntegrationError("rates")
		return nil, err
	}
	table := v.(map[string]float64)
	uc.cacheSet(ctx, key, table)
	return table, nil
}

func (uc *ResolveCurrencyUseCase) cacheGet(ctx context.Context, key string, dest any) bool {
	if uc.Cache == nil {
		return false
	}
	found, err := uc.Cache.Get(ctx, key, dest)
	if err != nil {
		uc.Logger.Warn("lookup cache read failed", "key", key, "error", err)
		return false
	}
	return found
}

func (uc *ResolveCurrencyUseCase) cacheSet(ctx context.Context, key string, value any) {
	if uc.Cache == nil || uc.CacheTTL <= 0 {
		return
	}
	if err := uc.Cache.Set(ctx, key, value, uc.CacheTTL); err != nil {
		uc.Logger.Warn("lookup cache write failed", "key", key, "error", err)
	}
}

// Convert applies a rate and rounds half away from zero.
func Convert(amount, rate float64) float64 {
	return math.Round(amount * rate)
}
