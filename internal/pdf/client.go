package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abarros/arc-assessment/internal/report"
)

const (
	// RenderTimeout bounds a render round trip.
	RenderTimeout = 30 * time.Second
	// HealthProbeTimeout bounds a health probe.
	HealthProbeTimeout = 4 * time.Second

	// maxErrorBody caps how much of an error response is kept for the caller.
	maxErrorBody = 4 * 1024
)

// HealthState classifies the outcome of a health probe.
type HealthState string

const (
	HealthOK          HealthState = "ok"
	HealthHTTPError   HealthState = "http_error"
	HealthTimeout     HealthState = "timeout"
	HealthUnreachable HealthState = "unreachable"
	HealthUnknown     HealthState = "unknown"
)

// Health is the classified result of one probe. StatusCode is only set for
// HealthOK and HealthHTTPError.
type Health struct {
	State      HealthState `json:"state"`
	StatusCode int         `json:"status_code,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

// OK reports whether the service answered 2xx.
func (h Health) OK() bool { return h.State == HealthOK }

// Client talks to the render service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client

	renderTimeout time.Duration
	healthTimeout time.Duration
}

// NewClient creates a render client for the given base URL
// (e.g. http://127.0.0.1:8001).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		renderTimeout: RenderTimeout,
		healthTimeout: HealthProbeTimeout,
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Render POSTs the payload to /render and returns the PDF bytes. The payload
// is schema-validated before it leaves the process. Failures surface as
// exactly one of *OfflineError, *TimeoutError or *RenderError.
func (c *Client) Render(ctx context.Context, payload report.Payload) ([]byte, error) {
	if err := report.ValidatePayload(payload); err != nil {
		return nil, fmt.Errorf("invalid render payload: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.renderTimeout)
	defer cancel()

	renderURL := c.baseURL + "/render"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, renderURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: renderURL, Cause: err}
		}
		return nil, &OfflineError{URL: renderURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &RenderError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	pdfBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: renderURL, Cause: err}
		}
		return nil, &OfflineError{URL: renderURL, Cause: err}
	}
	return pdfBytes, nil
}

// CheckHealth GETs /health and classifies the outcome so callers can tell
// "service is down" apart from "service returned an error".
func (c *Client) CheckHealth(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	healthURL := c.baseURL + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		return Health{State: HealthUnknown, Detail: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		switch {
		case isTimeout(err):
			return Health{State: HealthTimeout, Detail: err.Error()}
		case isConnectionError(err):
			return Health{State: HealthUnreachable, Detail: err.Error()}
		default:
			return Health{State: HealthUnknown, Detail: err.Error()}
		}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Health{State: HealthOK, StatusCode: resp.StatusCode}
	}
	return Health{
		State:      HealthHTTPError,
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("health endpoint returned %d", resp.StatusCode),
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	// Anything that failed before an HTTP response came back counts as the
	// service being unreachable (refused, DNS failure, reset).
	return !urlErr.Timeout()
}
