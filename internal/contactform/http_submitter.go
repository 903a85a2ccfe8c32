package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPSubmitter posts the form to a running API.
type HTTPSubmitter struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPSubmitter(baseURL string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Submit treats any non-2xx answer as a failure and surfaces the API message.
func (s *HTTPSubmitter) Submit(ctx context.Context, fields Fields) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("contactform: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("contactform: post: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var out apiResponse
		if json.Unmarshal(raw, &out) == nil && out.Message != "" {
			return fmt.Errorf("contactform: status %d: %s (%s)", resp.StatusCode, out.Message, out.Error)
		}
		return fmt.Errorf("contactform: status %d", resp.StatusCode)
	}
	return nil
}
