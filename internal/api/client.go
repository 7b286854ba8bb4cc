package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"
)

// Error texts shown to the operator for the transport failure modes.
const (
	errConnection = "Cannot connect to API server. Is it running?"
	errTimeout    = "API request timed out"
	errMalformed  = "Invalid response from API server"
)

// Client talks to the sales ERP backend. Every call resolves to exactly one
// Result: transport failures are converted at this boundary, never raised to
// the caller. POSTs are issued at most once; the client never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL with a fixed per-call
// timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call issues a single HTTP request against the backend. Method must be GET
// or POST; a non-nil payload is sent as a JSON body. The returned Result is
// either the decoded response or a success:false failure shape.
func (c *Client) Call(ctx context.Context, method, endpoint string, payload any) Result {
	if method != http.MethodGet && method != http.MethodPost {
		return Failure(fmt.Sprintf("Unknown method: %s", method))
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Failure(err.Error())
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return Failure(err.Error())
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Failure(classifyTransportError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Failure(classifyTransportError(err))
	}

	var decoded map[string]any
	if jsonErr := json.Unmarshal(raw, &decoded); jsonErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return Failure(fmt.Sprintf("API returned status %d", resp.StatusCode))
		}
		return Failure(errMalformed)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The backend often ships a structured error alongside the status.
		if msg, ok := decoded["error"].(string); ok && msg != "" {
			return Failure(msg)
		}
		return Failure(fmt.Sprintf("API returned status %d", resp.StatusCode))
	}

	return Result(decoded)
}

// classifyTransportError maps a transport failure to operator-facing text.
func classifyTransportError(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return errConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errConnection
	}
	return err.Error()
}
