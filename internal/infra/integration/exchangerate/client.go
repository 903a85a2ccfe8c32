package exchangerate

import (
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

var ErrEmptyTable = errors.New("exchangerate: empty rate table")

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

// Rates fetches the latest table of units per one base currency.
func (c *Client) Rates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	endpoint := fmt.Sprintf("%s/latest/%s", c.baseURL, url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchangerate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("exchangerate status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("exchangerate decode: %w", err)
	}
	if len(out.Rates) == 0 {
		return nil, ErrEmptyTable
	}
	if out.Base != "" && !strings.EqualFold(out.Base, base) {
		return nil, fmt.Errorf("exchangerate: asked for base %s, got %s", base, out.Base)
	}
	return out.Rates, nil
}
