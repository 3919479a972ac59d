package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/karpix25/parser-mass/internal/config"
)

const maxErrorBody = 300

// Client paces, retries and decodes GET requests against one upstream API.
// Pacing waits for the next request slot instead of failing, so the
// configured max-requests-per-minute is a shaping budget, not a hard cap.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      RetryPolicy
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	rpm := cfg.MaxReqPerMin
	if rpm < 1 {
		rpm = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		retry:      PolicyFromConfig(cfg.Retry),
		logger:     logger,
	}
}

// GetJSON performs a paced GET with the platform headers, retrying temporary
// failures per the client's policy, and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, header map[string]string, out any) error {
	return c.retry.Do(ctx, c.logger, rawURL, func() error {
		return c.getOnce(ctx, rawURL, query, header, out)
	})
}

func (c *Client) getOnce(ctx context.Context, rawURL string, query url.Values, header map[string]string, out any) error {
	u := rawURL
	if len(query) > 0 {
		u = rawURL + "?" + query.Encode()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
