package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NextRouter/routingFlow/internal/model"
)

// statusResponse holds the part of the status endpoint's JSON body this
// client consumes. The endpoint also echoes its NIC configuration, but the
// interface set authoritative for a run comes from our own config file.
type statusResponse struct {
	Mappings map[string]string `json:"mappings"`
}

// Client fetches the routing snapshot from the status endpoint.
type Client struct {
	httpClient *http.Client
	statusURL  string
	timeout    time.Duration
}

// NewClient creates a status-source client. Each request is bounded by the
// given timeout.
func NewClient(statusURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		statusURL:  statusURL,
		timeout:    timeout,
	}
}

// FetchSnapshot requests the current IP-to-WAN assignments. Callers treat
// any error as "no snapshot available" and fall back to an empty Map.
func (c *Client) FetchSnapshot(ctx context.Context) ([]model.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	var status statusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}

	records := make([]model.Assignment, 0, len(status.Mappings))
	for ip, role := range status.Mappings {
		records = append(records, model.Assignment{IP: ip, Role: model.Role(role)})
	}
	return records, nil
}
