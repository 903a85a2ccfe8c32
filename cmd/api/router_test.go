package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/internal/infra/http/handlers"
	appmw "github.com/xavierca1/alpha-site/internal/infra/http/middleware"
	"github.com/xavierca1/alpha-site/internal/usecase"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

type okSubmitter struct{}

func (okSubmitter) Execute(ctx context.Context, in usecase.SubmitLeadInput) (*usecase.SubmitLeadOutput, error) {
	return &usecase.SubmitLeadOutput{Success: true, Message: "Email sent successfully!"}, nil
}

type fallbackResolver struct{}

func (fallbackResolver) Execute(ctx context.Context, coords *entity.Coordinates) entity.Locale {
	return entity.FallbackLocale()
}

type emptyQuoter struct{}

func (emptyQuoter) Quote(ctx context.Context, coords *entity.Coordinates) usecase.PricingOutput {
	return usecase.PricingOutput{Locale: entity.FallbackLocale()}
}

func (emptyQuoter) BudgetOptions(ctx context.Context, coords *entity.Coordinates) usecase.BudgetOutput {
	return usecase.BudgetOutput{Locale: entity.FallbackLocale()}
}

type emptyForm struct{}

func (emptyForm) Services() []entity.Option        { return nil }
func (emptyForm) TimelineOptions() []entity.Option { return nil }

func testRouter(perMinute int) http.Handler {
	return newRouter([]string{"http://localhost:3000"}, routes{
		contact:     handlers.NewContactHandler(okSubmitter{}, logging.Discard()),
		currency:    handlers.NewCurrencyHandler(fallbackResolver{}, emptyQuoter{}),
		formOptions: handlers.NewFormOptionsHandler(emptyForm{}),
		health:      handlers.NewHealthHandler(nil, "", nil, true),
		limiter:     appmw.NewIPRateLimiter(perMinute),
	})
}

func TestRouter_ContactRejectsOtherMethods(t *testing.T) {
	router := testRouter(10)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_ContactIsRateLimited(t *testing.T) {
	router := testRouter(2)
	body := `{"name":"Thabo","email":"thabo@example.com","serviceInterest":"web","projectDetails":"Site"}`

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.RemoteAddr = "203.0.113.7:5000"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	router := testRouter(10)

	for _, path := range []string{"/health", "/metrics", "/api/currency", "/api/pricing", "/api/budget-ranges", "/api/form-options"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := testRouter(10)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
