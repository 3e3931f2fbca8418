package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

const (
	defaultBaseURL   = "https://api.heygen.com"
	defaultUploadURL = "https://upload.heygen.com"
	defaultTimeout   = 60 * time.Second

	userAgent = "videogen-ms/" + Version

	retryMaxAttempts = 3
	retryMinWait     = 1 * time.Second
	retryMaxWait     = 10 * time.Second
)

// Version of this module, reported in the User-Agent header.
const Version = "1.0.0"

// HTTP status codes that are worth retrying with backoff.
var retryableStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Config carries everything the client needs; nothing is read from ambient
// process state so the gateway stays testable without environment setup.
type Config struct {
	APIKey     string
	BaseURL    string
	UploadURL  string
	Timeout    time.Duration
	MaxRetries int
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	uploadURL  string
	maxRetries int
	http       *http.Client
}

// compile-time check: *Client must satisfy port.Gateway
var _ port.Gateway = (*Client)(nil)

// New builds a provider gateway from an explicit configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("heygen: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UploadURL == "" {
		cfg.UploadURL = defaultUploadURL
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = retryMaxAttempts
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		uploadURL:  cfg.UploadURL,
		maxRetries: cfg.MaxRetries,
		http:       httpClient,
	}, nil
}

// envelope is the common response wrapper of the provider. v2 endpoints use
// {error, data}; v1 endpoints use {code, data, message} where code 100 means
// success.
type envelope struct {
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.requestJSON(ctx, http.MethodGet, c.baseURL+path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("heygen: marshal request: %w", err)
		}
	}
	return c.requestJSON(ctx, http.MethodPost, c.baseURL+path, payload, out)
}

func (c *Client) requestJSON(ctx context.Context, method, url string, body []byte, out any) error {
	raw, err := c.do(ctx, method, url, body, "application/json")
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("heygen: decode response: %w", err)
	}
	if msg, ok := envelopeError(env); ok {
		return &APIError{Message: msg}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &APIError{Message: "no data returned"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("heygen: decode response data: %w", err)
	}
	return nil
}

// envelopeError extracts an application-level error from an otherwise
// successful HTTP response.
func envelopeError(env envelope) (string, bool) {
	if len(env.Error) > 0 && string(env.Error) != "null" {
		var s string
		if err := json.Unmarshal(env.Error, &s); err == nil {
			return s, true
		}
		return string(env.Error), true
	}
	if env.Code != 0 && env.Code != 100 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("provider returned code %d", env.Code)
		}
		return msg, true
	}
	return "", false
}

// do performs one HTTP request with retries on transient failures, using
// exponential backoff capped at retryMaxWait.
func (c *Client) do(ctx context.Context, method, url string, body []byte, contentType string) ([]byte, error) {
	var lastErr error
	wait := retryMinWait

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("heygen: build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Api-Key", c.apiKey)
		req.Header.Set("User-Agent", userAgent)
		if body != nil {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
		} else {
			data, readErr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				return nil, fmt.Errorf("heygen: read response: %w", readErr)
			}

			if !retryableStatus[resp.StatusCode] {
				if resp.StatusCode >= 400 {
					return nil, statusError(resp.StatusCode, data)
				}
				return data, nil
			}
			lastErr = statusError(resp.StatusCode, data)
		}

		if attempt < c.maxRetries {
			log.Printf("transient provider failure (attempt %d/%d), retrying in %s: %v", attempt, c.maxRetries, wait, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
			if wait > retryMaxWait {
				wait = retryMaxWait
			}
		}
	}

	return nil, fmt.Errorf("heygen: request failed after %d attempts: %w", c.maxRetries, lastErr)
}

func statusError(status int, body []byte) error {
	msg := truncate(string(body), 200)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	default:
		return &APIError{Status: status, Message: msg}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// DownloadFile fetches a (presigned) file URL. The caller owns the returned
// body. No API key is attached: result locators are self-authorizing.
func (c *Client) DownloadFile(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("heygen: build download request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("heygen: download failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, 0, statusError(resp.StatusCode, nil)
	}
	return resp.Body, resp.ContentLength, nil
}
