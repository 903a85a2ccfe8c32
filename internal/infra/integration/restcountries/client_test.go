package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCurrencyCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/ZA", r.URL.Path)
		w.Write([]byte(`[{"cca2":"ZA","currencies":{"ZAR":{"name":"South African rand","symbol":"R"}}}]`))
	}))
	defer srv.Close()

	code, err := NewClient(srv.URL+"/v3.1", time.Second).CurrencyCode(context.Background(), "ZA")

	require.NoError(t, err)
	assert.Equal(t, "ZAR", code)
}

func TestCurrencyCodeKeepsListingOrder(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[{"cca2":"PA","currencies":{"PAB":{"name":"Panamanian balboa"},"USD":{"name":"United States dollar"}}}]`)

	code, err := NewClient(srv.URL, time.Second).CurrencyCode(context.Background(), "PA")

	require.NoError(t, err)
	assert.Equal(t, "PAB", code)
}

func TestCurrencyCodeNoCurrencies(t *testing.T) {
	cases := []string{
		`[]`,
		`[{"cca2":"AQ"}]`,
		`[{"cca2":"AQ","currencies":{}}]`,
	}
	for _, body := range cases {
		srv := newServer(t, http.StatusOK, body)
		_, err := NewClient(srv.URL, time.Second).CurrencyCode(context.Background(), "AQ")
		assert.ErrorIs(t, err, ErrNoCurrency, body)
	}
}

func TestCurrencyCodeNotFound(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, `{"status":404,"message":"Not Found"}`)

	_, err := NewClient(srv.URL, time.Second).CurrencyCode(context.Background(), "XX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCurrencyCodeEmptyInput(t *testing.T) {
	_, err := NewClient("http://unused", time.Second).CurrencyCode(context.Background(), " ")
	assert.Error(t, err)
}
