package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/alpha-site/internal/entity"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyLead(ctx context.Context, lead entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) CountryCode(ctx context.Context, lat, lon float64) (string, error) {
	args := m.Called(ctx, lat, lon)
	return args.String(0), args.Error(1)
}

type MockCountries struct {
	mock.Mock
}

func (m *MockCountries) CurrencyCode(ctx context.Context, countryCode string) (string, error) {
	args := m.Called(ctx, countryCode)
	return args.String(0), args.Error(1)
}

type MockRates struct {
	mock.Mock
}

func (m *MockRates) Rates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

// spyRecorder counts metric calls so tests can assert on outcomes.
type spyRecorder struct {
	mu          sync.Mutex
	leads       []string
	resolutions []string
	errors      []string
}

func (s *spyRecorder) RecordLeadSubmission(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, status)
}

func (s *spyRecorder) RecordCurrencyResolution(outcome string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolutions = append(s.resolutions, outcome)
}

func (s *spyRecorder) RecordIntegrationError(service string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, service)
}
