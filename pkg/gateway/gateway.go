// Package gateway is a thin client for the backend's settings, prompt and processing endpoints.
// Every call fails with NetworkError on transport errors or non-2xx status and with
// ProtocolError when the response body is unsuccessful or incomplete. It never retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

const maxResponseSize = 10 * 1024 * 1024

// Client talks to the backend over JSON HTTP
type Client struct {
	baseURL string
	userID  string
	client  *http.Client
}

// Config for Client
type Config struct {
	BaseURL    string
	UserID     string
	Timeout    time.Duration
	HTTPClient *http.Client // optional, overrides Timeout
}

// envelope is the common response shape of every endpoint
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// configData is the payload of GET /api/prompt/config
type configData struct {
	Rules       map[string]domain.RuleDefinition `json:"rules"`
	RuleOptions map[string][]domain.RuleOption   `json:"rule_options"`
}

type settingsData struct {
	Settings map[string]any `json:"settings"`
}

type promptData struct {
	Prompt *string `json:"prompt"`
}

// New makes a gateway client
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		userID:  cfg.UserID,
		client:  httpClient,
	}
}

// FetchConfig retrieves the rule definitions with their options
func (c *Client) FetchConfig(ctx context.Context) (domain.Schema, error) {
	const op = "fetch config"
	var data configData
	if err := c.call(ctx, op, http.MethodGet, "/api/prompt/config", nil, &data); err != nil {
		return nil, err
	}
	if data.Rules == nil {
		return nil, &ProtocolError{Op: op, Message: "missing rules"}
	}
	return domain.NewSchema(data.Rules, data.RuleOptions), nil
}

// FetchUserSettings retrieves the persisted settings of the current user. Values come back
// as the backend sends them, normalization needs the rule schema and is left to the caller.
func (c *Client) FetchUserSettings(ctx context.Context) (domain.Settings, error) {
	const op = "fetch user settings"
	var data settingsData
	if err := c.call(ctx, op, http.MethodGet, "/api/prompt/user-settings", nil, &data); err != nil {
		return nil, err
	}
	if data.Settings == nil {
		return nil, &ProtocolError{Op: op, Message: "missing settings"}
	}
	return domain.Settings(data.Settings), nil
}

// SaveUserSettings persists the given settings. The call either fully lands or reports failure.
func (c *Client) SaveUserSettings(ctx context.Context, settings domain.Settings) error {
	body := map[string]any{"settings": settings}
	return c.call(ctx, "save user settings", http.MethodPost, "/api/prompt/user-settings", body, nil)
}

// BuildCompletePrompt asks the backend to assemble the prompt for settings and news text
func (c *Client) BuildCompletePrompt(ctx context.Context, settings domain.Settings, newsText string) (string, error) {
	const op = "build complete prompt"
	body := map[string]any{"settings": settings, "news_text": newsText}
	var data promptData
	if err := c.call(ctx, op, http.MethodPost, "/api/prompt/build-complete-prompt", body, &data); err != nil {
		return "", err
	}
	if data.Prompt == nil {
		return "", &ProtocolError{Op: op, Message: "missing prompt"}
	}
	return *data.Prompt, nil
}

// ProcessNews submits the article for rewriting with the given settings
func (c *Client) ProcessNews(ctx context.Context, newsText string, settings domain.Settings) (*domain.ProcessResult, error) {
	body := map[string]any{"news_text": newsText, "settings": settings, "timestamp": time.Now().UTC()}
	var res domain.ProcessResult
	if err := c.call(ctx, "process news", http.MethodPost, "/api/process-news", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// History returns the most recent processing records, newest first
func (c *Client) History(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	var res []domain.HistoryRecord
	path := "/api/history?limit=" + strconv.Itoa(limit)
	if err := c.call(ctx, "get history", http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Statistics returns processing statistics of the current user
func (c *Client) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var res domain.Statistics
	if err := c.call(ctx, "get statistics", http.MethodGet, "/api/statistics", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// call performs one request and decodes the envelope's data into out, if out is not nil
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set("X-User-ID", c.userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && env.Error != "" {
			msg = env.Error
		}
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	if decodeErr != nil {
		return &ProtocolError{Op: op, Message: "malformed response", Err: decodeErr}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request was not successful"
		}
		return &ProtocolError{Op: op, Message: msg}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &ProtocolError{Op: op, Message: "missing data"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &ProtocolError{Op: op, Message: "malformed data", Err: err}
	}
	return nil
}
