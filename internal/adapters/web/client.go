package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/corey/operator-gui/internal/ports"
)

// Client talks to a running operator-gui server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL (e.g. http://localhost:8080).
// Invocations have no client-side deadline since the server holds the
// response until operator-cli exits.
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// Ping returns true if the server answers /api/health.
func (c *Client) Ping() bool {
	hc := &http.Client{Timeout: 500 * time.Millisecond}
	resp, err := hc.Get(c.baseURL + "/api/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Health fetches the server's health report.
func (c *Client) Health() (*HealthResult, error) {
	resp, err := c.http.Get(c.baseURL + "/api/health")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health: unexpected status %s", resp.Status)
	}

	var result HealthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &result, nil
}

// Invoke posts to /start or /stop and returns once the server has ended the
// response. A nil error says nothing about whether operator-cli succeeded.
func (c *Client) Invoke(action ports.Action) error {
	resp, err := c.http.Post(c.baseURL+"/"+string(action), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %s", action, resp.Status)
	}
	return nil
}
