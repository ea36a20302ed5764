package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/payload"
)

const acceptGeoJSON = "application/geo+json"

// Client fetches upstream JSON documents. A failed fetch is reported as
// absence; the cause is only logged.
type Client interface {
	Fetch(ctx context.Context, url string) (payload.Object, bool)
	GetHTTPClient() *http.Client
}

type client struct {
	userAgent string
	client    *http.Client
}

func NewClient(userAgent string, timeout time.Duration) Client {
	return &client{
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) Fetch(ctx context.Context, url string) (payload.Object, bool) {
	doc, status, err := c.get(ctx, url)
	if err != nil {
		event := log.Error().Err(err).Str("url", url)
		if status != 0 {
			event = event.Int("status", status)
		}
		event.Msg("upstream request failed")

		return nil, false
	}

	return doc, true
}

func (c *client) get(ctx context.Context, url string) (payload.Object, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("upstream returned status code: %d", resp.StatusCode)
	}

	doc, err := payload.Decode(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("upstream returned malformed JSON: %w", err)
	}

	return doc, resp.StatusCode, nil
}

func (c *client) GetHTTPClient() *http.Client {
	return c.client
}
