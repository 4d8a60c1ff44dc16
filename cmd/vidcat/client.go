package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP calls to the vidcatd server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new vidcatd API client. A refresh blocks until every
// source is synchronized, so timeout should be generous.
func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// StatusResponse is the response from GET /api/v1/status.
type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	SchemaVersion int64  `json:"schema_version"`
	Total         int    `json:"total"`
	Counts        []struct {
		Source string `json:"source"`
		Count  int    `json:"count"`
	} `json:"counts"`
	Sources []struct {
		Name string `json:"name"`
		Root string `json:"root"`
	} `json:"sources"`
}

// RefreshResponse is the response from GET /api/update_db?detail=1.
// Sync prints its local result in the same shape.
type RefreshResponse struct {
	RunID      string                   `json:"run_id"`
	DurationMS int64                    `json:"duration_ms"`
	Sources    map[string]SourceSummary `json:"sources"`
}

// SourceSummary is the outcome for one source.
type SourceSummary struct {
	Added   []string        `json:"added"`
	Skipped int             `json:"skipped"`
	Failed  []FailedSummary `json:"failed"`
	Error   string          `json:"error,omitempty"`
}

// FailedSummary is a file that could not be cataloged.
type FailedSummary struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Status returns server status and catalog counts.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh synchronizes all sources on the server and waits for the result.
func (c *Client) Refresh() (*RefreshResponse, error) {
	var resp RefreshResponse
	if err := c.get("/api/update_db?detail=1", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
