// Package directory implements the HTTP client for the external company
// directory, plus a Redis cache in front of it.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	domain "github.com/mailroom/backend/internal/domain/directory"
)

// maxResponseSize is the maximum allowed response size from the directory API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client implements domain directory.CompanyDirectory over the directory's
// REST API
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new directory client with the given configuration
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// customerPayload mirrors one customer record on the wire
type customerPayload struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	FirstName string   `json:"firstName"`
	TaxID     string   `json:"taxId"`
	Emails    []string `json:"emails"`
	Phone     string   `json:"phone"`
}

type searchResponse struct {
	Customers []customerPayload `json:"customers"`
}

// SearchByName searches the directory for customers matching a company name.
// Transport failures and server errors surface as directory.ErrUnavailable so
// callers can tell an outage apart from zero matches.
func (c *Client) SearchByName(ctx context.Context, name string) ([]domain.CustomerRecord, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/api/v1/customers"
	if name != "" {
		endpoint += "?name=" + url.QueryEscape(name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrUnavailable, err)
	}

	records := make([]domain.CustomerRecord, 0, len(payload.Customers))
	for _, cust := range payload.Customers {
		records = append(records, domain.CustomerRecord{
			ID:        cust.ID,
			Name:      cust.Name,
			FirstName: cust.FirstName,
			TaxID:     cust.TaxID,
			Emails:    cust.Emails,
			Phone:     cust.Phone,
		})
	}

	return records, nil
}

// Ensure Client implements the domain directory contract
var _ domain.CompanyDirectory = (*Client)(nil)
