package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
)

// Client resolves an IP address to a location.
type Client interface {
	Lookup(ctx context.Context, ip string) (model.Location, error)
}

// HTTPClient implements Client against an ipapi.co compatible API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type response struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Currency    string `json:"currency"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// NewHTTPClient creates geolocation client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geo api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("geo api url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Lookup queries the provider for ip. An empty or unknown ip asks the provider
// to resolve the caller's own address.
func (c *HTTPClient) Lookup(ctx context.Context, ip string) (model.Location, error) {
	endpoint := *c.baseURL
	if ip == "" || ip == "unknown" {
		endpoint.Path = path.Join(endpoint.Path, "json") + "/"
	} else {
		endpoint.Path = path.Join(endpoint.Path, ip, "json") + "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.Location{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Location{}, fmt.Errorf("%w: geo request: %v", domainErrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geolocation request failed", slog.Int("status", resp.StatusCode))
		return model.Location{}, fmt.Errorf("%w: geo provider status %s", domainErrors.ErrUpstream, resp.Status)
	}

	var data response
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return model.Location{}, fmt.Errorf("%w: decode geo response: %v", domainErrors.ErrUpstream, err)
	}
	if data.Error {
		return model.Location{}, fmt.Errorf("%w: geo provider: %s", domainErrors.ErrUpstream, data.Reason)
	}
	if data.CountryCode == "" {
		return model.Location{}, fmt.Errorf("%w: geo response has no country", domainErrors.ErrUpstream)
	}

	return model.Location{
		CountryCode: data.CountryCode,
		CountryName: data.CountryName,
		Currency:    data.Currency,
		IP:          data.IP,
		City:        data.City,
		Region:      data.Region,
	}, nil
}
