// Package riskclient is the typed client for the Risk Banking scoring API,
// used by the riskctl dashboard. Its Predictor wraps the network call with
// the one-shot local fallback: any API failure degrades to the same scoring
// computation run locally, never to a crash.
package riskclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/JulienRip/riskbanking/internal/application/dto"
)

// Client calls the scoring service over HTTP with a bounded timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the scoring API at baseURL. Every request
// is bounded by timeout; there are no retries.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Health calls the liveness route.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.getJSON(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictDefault calls the prediction route for one client. A non-success
// status is returned as an error carrying the API's own error description.
func (c *Client) PredictDefault(ctx context.Context, clientID int64, path string) (*dto.PredictionResponse, error) {
	params := url.Values{}
	params.Set("client_id", strconv.FormatInt(clientID, 10))
	if path != "" {
		params.Set("path", path)
	}

	var out dto.PredictionResponse
	if err := c.getJSON(ctx, "/predict_default", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dataviz fetches the scatter plot HTML document.
func (c *Client) Dataviz(ctx context.Context, path string) (string, error) {
	params := url.Values{}
	if path != "" {
		params.Set("path", path)
	}

	body, err := c.get(ctx, "/get_dataviz", params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) getJSON(ctx context.Context, route string, params url.Values, out interface{}) error {
	body, err := c.get(ctx, route, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("malformed response from %s: %w", route, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, route string, params url.Values) ([]byte, error) {
	target := c.baseURL + route
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", route, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			detail := apiErr.ErrorDescription
			if detail == "" {
				detail = apiErr.Error
			}
			return nil, fmt.Errorf("API status %d: %s", resp.StatusCode, detail)
		}
		return nil, fmt.Errorf("API status %d", resp.StatusCode)
	}
	return body, nil
}
