package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is a client for the project backend API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    string
	logger     *slog.Logger
}

// ClientOptions configures the backend client.
type ClientOptions struct {
	// Session is the bearer credential for authenticated endpoints
	Session string

	// Logger defaults to slog.Default when nil
	Logger *slog.Logger

	// Timeout defaults to 30s when zero
	Timeout time.Duration
}

// NewClient creates a new backend API client.
func NewClient(baseURL string, opts ClientOptions) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("server URL is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	logger.Debug("creating backend client", slog.String("base_url", baseURL))

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		session:    opts.Session,
		logger:     logger,
	}, nil
}

// Error is an API failure carrying the HTTP status and the server-provided
// message, so callers can branch on status and show the message verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.Status)
	}

	return e.Message
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// API error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

// doRequest performs an HTTP request against the backend API.
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	return c.doRequestWithBody(ctx, method, path, nil, result)
}

// doRequestWithBody performs an HTTP request with an optional JSON body.
func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body any, result any) error {
	url := c.baseURL + path
	requestID := uuid.New().String()

	c.logger.Debug("making backend API request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
	)

	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if c.session != "" {
		req.Header.Set("Authorization", "Bearer "+c.session)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return &Error{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(resp.Body),
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeErrorMessage extracts the server's error message from a failed
// response. The backend wraps messages as {"error": "..."}; anything else is
// passed through as raw text.
func decodeErrorMessage(r io.Reader) string {
	data, _ := io.ReadAll(r)

	var wrapped struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Error != "" {
			return wrapped.Error
		}

		if wrapped.Message != "" {
			return wrapped.Message
		}
	}

	return strings.TrimSpace(string(data))
}
