package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

// Client exposes operations to query the FX rate provider.
type Client interface {
	Latest(ctx context.Context, base string) (model.Rates, error)
}

// HTTPClient implements Client via the provider's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors JSON payload from the provider.
type response struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// NewHTTPClient creates FX provider client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse fx api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("fx api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Latest returns the provider's current rates quoted against base.
func (c *HTTPClient) Latest(ctx context.Context, base string) (model.Rates, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fx request: %v", domainErrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("fx rate request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: fx provider status %s", domainErrors.ErrUpstream, resp.Status)
	}

	var data response
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decode fx response: %v", domainErrors.ErrUpstream, err)
	}
	if data.Rates == nil {
		return nil, fmt.Errorf("%w: fx response has no rates", domainErrors.ErrUpstream)
	}
	return model.Rates(data.Rates), nil
}
