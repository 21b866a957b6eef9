// Package client is the widget's transport to the weather-search backend.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/i474232898/weather-search/internal/weather"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// APIError is a non-2xx answer from the backend. Message is the body's
// "error" field and may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather api: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the weather-search backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for baseURL. A nil httpClient gets a client
// without timeout; requests are bounded only by their context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Search posts the city query to /weather and decodes the report.
func (c *Client) Search(ctx context.Context, city string) (weather.Report, error) {
	body, err := json.Marshal(map[string]string{"city": city})
	if err != nil {
		return weather.Report{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/weather", bytes.NewReader(body))
	if err != nil {
		return weather.Report{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return weather.Report{}, fmt.Errorf("weather api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Report{}, fmt.Errorf("weather api: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		// A malformed error body still yields an APIError, without a message.
		_ = json.Unmarshal(raw, &e)
		return weather.Report{}, &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	var report weather.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return weather.Report{}, fmt.Errorf("weather api: decode report: %w", err)
	}
	if err := validate.Struct(report); err != nil {
		return weather.Report{}, fmt.Errorf("weather api: incomplete report: %w", err)
	}
	return report, nil
}

// Health reports whether the backend answers GET /health with 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("weather api: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode}
	}
	return nil
}

// Message returns the backend-provided error message carried by err, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
