// Package botcheck wraps the upstream bot-detection provider. The provider
// is consulted before any public submission is validated; a positive
// classification short-circuits the request with no writes.
package botcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/techdayconf/techday-backend/internal/config"
)

// Checker classifies a request as bot or human
type Checker interface {
	IsBot(ctx context.Context, remoteIP, userAgent, path string) (bool, error)
}

// Client calls the bot-detection provider over HTTP
type Client struct {
	endpoint string
	apiKey   string
	enabled  bool
	client   *http.Client
}

// NewClient creates a new bot-detection client. When disabled via
// configuration every check passes, which is the local-debugging mode.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.BotCheck.Endpoint,
		apiKey:   cfg.BotCheck.APIKey,
		enabled:  cfg.BotCheck.Enabled && cfg.BotCheck.Endpoint != "",
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type checkRequest struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Path      string `json:"path"`
}

type checkResponse struct {
	Bot bool `json:"bot"`
}

// IsBot asks the provider to classify the request
func (c *Client) IsBot(ctx context.Context, remoteIP, userAgent, path string) (bool, error) {
	if !c.enabled {
		return false, nil
	}

	payload, err := json.Marshal(checkRequest{IP: remoteIP, UserAgent: userAgent, Path: path})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("bot check provider returned status %d", resp.StatusCode)
	}

	var result checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.Bot, nil
}
