package restcountries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNoCurrency = errors.New("restcountries: country has no currency")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CurrencyCode returns the first currency listed for an alpha-2 country code.
func (c *Client) CurrencyCode(ctx context.Context, countryCode string) (string, error) {
	countryCode = strings.TrimSpace(countryCode)
	if countryCode == "" {
		return "", fmt.Errorf("restcountries: empty country code")
	}
	endpoint := fmt.Sprintf("%s/alpha/%s", c.baseURL, url.PathEscape(countryCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("restcountries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("restcountries status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var countries []country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return "", fmt.Errorf("restcountries decode: %w", err)
	}
	if len(countries) == 0 {
		return "", ErrNoCurrency
	}

	code, err := firstKey(countries[0].Currencies)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(code), nil
}

// firstKey reads the first member name of a JSON object without building a map.
func firstKey(raw json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", ErrNoCurrency
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("restcountries currencies: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", fmt.Errorf("restcountries currencies: expected object")
	}
	if !dec.More() {
		return "", ErrNoCurrency
	}
	tok, err = dec.Token()
	if err != nil {
		return "", fmt.Errorf("restcountries currencies: %w", err)
	}
	key, _ := tok.(string)
	if key == "" {
		return "", ErrNoCurrency
	}
	return key, nil
}
