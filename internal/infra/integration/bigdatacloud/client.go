package bigdatacloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrNoCountry = errors.New("bigdatacloud: no country for coordinates")

// Client calls the free client-side reverse geocoding endpoint.
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

// CountryCode reverse geocodes a position to an ISO 3166 alpha-2 code.
func (c *Client) CountryCode(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("localityLanguage", "en")
	endpoint := fmt.Sprintf("%s/reverse-geocode-client?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("bigdatacloud request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("bigdatacloud status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("bigdatacloud decode: %w", err)
	}

	code := strings.ToUpper(strings.TrimSpace(out.CountryCode))
	if code == "" {
		return "", ErrNoCountry
	}
	return code, nil
}
