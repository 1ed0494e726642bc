package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KoboSteruS/atii/pkg/models"
)

// Client talks to the snapshot service over HTTP. It implements both the
// reconciler's Source and the store's Pusher. No explicit request timeout is
// configured; the transport's defaults apply.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// FetchSnapshot pulls the consolidated snapshot of all collections.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/data", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot request failed: %s", resp.Status)
	}

	var snapshot models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return &snapshot, nil
}

// Push sends the full replacement value of one collection. The response body
// is ignored on success.
func (c *Client) Push(ctx context.Context, collection models.Collection, value json.RawMessage) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/data/"+string(collection), bytes.NewReader(value))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push %s failed: %s", collection, resp.Status)
	}

	return nil
}
