// Package geo is a thin HTTP client for the external geo/IP provider.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/communityride/auth-service/internal/auth/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// The caller bounds each lookup with its own context deadline; this
		// is only a backstop.
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

type locateResponse struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Proxy   bool   `json:"proxy"`
}

func (c *Client) Locate(ctx context.Context, ip string) (domain.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/locate?ip="+url.QueryEscape(ip), nil)
	if err != nil {
		return domain.Location{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geo lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geo lookup returned status %d", resp.StatusCode)
	}

	var body locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, fmt.Errorf("geo lookup returned invalid body: %w", err)
	}
	if body.Country == "" {
		return domain.Location{}, nil
	}

	return domain.Location{
		Country: body.Country,
		City:    body.City,
		Proxy:   body.Proxy,
		Known:   true,
	}, nil
}
