package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/internal/infra/cache"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

var capeTown = &entity.Coordinates{Lat: -33.9249, Lon: 18.4241}

type resolverFixture struct {
	geo       *MockGeocoder
	countries *MockCountries
	rates     *MockRates
	rec       *spyRecorder
	uc        *ResolveCurrencyUseCase
}

func newResolverFixture(c LookupCache) *resolverFixture {
	f := &resolverFixture{
		geo:       new(MockGeocoder),
		countries: new(MockCountries),
		rates:     new(MockRates),
		rec:       &spyRecorder{},
	}
	f.uc = NewResolveCurrencyUseCase(f.geo, f.countries, f.rates, c, time.Second, time.Hour, f.rec, logging.Discard())
	return f
}

func TestResolveCurrencySuccess(t *testing.T) {
	f := newResolverFixture(nil)
	f.geo.On("CountryCode", mock.Anything, -33.9249, 18.4241).Return("ZA", nil)
	f.countries.On("CurrencyCode", mock.Anything, "ZA").Return("ZAR", nil)
	f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"ZAR": 18.5, "EUR": 0.92}, nil)

	loc := f.uc.Execute(context.Background(), capeTown)

	assert.Equal(t, entity.Locale{CountryCode: "ZA", CurrencyCode: "ZAR", Symbol: "R", Rate: 18.5}, loc)
	assert.Equal(t, []string{OutcomeResolved}, f.rec.resolutions)
}

func TestResolveCurrencyFallbacks(t *testing.T) {
	boom := errors.New("boom")

	cases := []struct {
		name    string
		setup   func(f *resolverFixture)
		outcome string
	}{
		{
			name: "geocode fails",
			setup: func(f *resolverFixture) {
				f.geo.On("CountryCode", mock.Anything, mock.Anything, mock.Anything).Return("", boom)
			},
			outcome: OutcomeGeocode,
		},
		{
			name: "country lookup fails",
			setup: func(f *resolverFixture) {
				f.geo.On("CountryCode", mock.Anything, mock.Anything, mock.Anything).Return("ZA", nil)
				f.countries.On("CurrencyCode", mock.Anything, "ZA").Return("", boom)
			},
			outcome: OutcomeCountry,
		},
		{
			name: "rates fail",
			setup: func(f *resolverFixture) {
				f.geo.On("CountryCode", mock.Anything, mock.Anything, mock.Anything).Return("ZA", nil)
				f.countries.On("CurrencyCode", mock.Anything, "ZA").Return("ZAR", nil)
				f.rates.On("Rates", mock.Anything, "USD").Return(nil, boom)
			},
			outcome: OutcomeRates,
		},
		{
			name: "rate missing from table",
			setup: func(f *resolverFixture) {
				f.geo.On("CountryCode", mock.Anything, mock.Anything, mock.Anything).Return("AQ", nil)
				f.countries.On("CurrencyCode", mock.Anything, "AQ").Return("XYZ", nil)
				f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"ZAR": 18.5}, nil)
			},
			outcome: OutcomeMissingRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newResolverFixture(nil)
			tc.setup(f)

			loc := f.uc.Execute(context.Background(), capeTown)

			assert.Equal(t, entity.FallbackLocale(), loc)
			assert.Equal(t, []string{tc.outcome}, f.rec.resolutions)
		})
	}
}

func TestResolveCurrencyWithoutCoordinates(t *testing.T) {
	f := newResolverFixture(nil)

	assert.Equal(t, entity.FallbackLocale(), f.uc.Execute(context.Background(), nil))
	assert.Equal(t, entity.FallbackLocale(), f.uc.Execute(context.Background(), &entity.Coordinates{Lat: 200, Lon: 0}))

	f.geo.AssertNotCalled(t, "CountryCode", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{OutcomeNoCoordinates, OutcomeNoCoordinates}, f.rec.resolutions)
}

func TestResolveCurrencyUsesCache(t *testing.T) {
	f := newResolverFixture(cache.NewMemoryStore())
	f.geo.On("CountryCode", mock.Anything, mock.Anything, mock.Anything).Return("GB", nil).Twice()
	f.countries.On("CurrencyCode", mock.Anything, "GB").Return("GBP", nil).Once()
	f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"GBP": 0.79}, nil).Once()

	first := f.uc.Execute(context.Background(), &entity.Coordinates{Lat: 51.5, Lon: -0.12})
	second := f.uc.Execute(context.Background(), &entity.Coordinates{Lat: 53.48, Lon: -2.24})

	assert.Equal(t, first.CurrencyCode, second.CurrencyCode)
	assert.Equal(t, "£", second.Symbol)
	assert.Equal(t, 0.79, second.Rate)
	f.countries.AssertExpectations(t)
	f.rates.AssertExpectations(t)
}

func TestResolveCurrencyDeduplicatesConcurrentLookups(t *testing.T) {
	f := newResolverFixture(nil)
	release := make(chan struct{})
	f.geo.On("CountryCode", mock.Anything, -33.9249, 18.4241).
		Run(func(mock.Arguments) { <-release }).
		Return("ZA", nil)
	f.countries.On("CurrencyCode", mock.Anything, "ZA").Return("ZAR", nil)
	f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"ZAR": 18.5}, nil)

	const callers = 20
	results := make([]entity.Locale, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.uc.Execute(context.Background(), capeTown)
		}(i)
	}

	// let every caller join the in-flight lookup before the geocoder answers
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	want := entity.Locale{CountryCode: "ZA", CurrencyCode: "ZAR", Symbol: "R", Rate: 18.5}
	for _, got := range results {
		assert.Equal(t, want, got)
	}
	f.geo.AssertNumberOfCalls(t, "CountryCode", 1)
	f.countries.AssertNumberOfCalls(t, "CurrencyCode", 1)
	f.rates.AssertNumberOfCalls(t, "Rates", 1)
}

func TestRefreshRatesOverwritesCache(t *testing.T) {
	store := cache.NewMemoryStore()
	f := newResolverFixture(store)
	f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.9}, nil).Once()
	f.rates.On("Rates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.95}, nil).Once()

	assert.NoError(t, f.uc.RefreshRates(context.Background()))
	assert.NoError(t, f.uc.RefreshRates(context.Background()))

	table, err := f.uc.RateTable(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0.95, table["EUR"])
}

func TestConvert(t *testing.T) {
	assert.Equal(t, 1480.0, Convert(80, 18.5))
	assert.Equal(t, 74.0, Convert(80, 0.92))
	assert.Equal(t, 3.0, Convert(5, 0.5))
	assert.Equal(t, 80.0, Convert(80, 1))
}
