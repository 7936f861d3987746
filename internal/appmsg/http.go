package appmsg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CompanionStatus is the companion's /api/status payload.
type CompanionStatus struct {
	Running   bool      `json:"running"`
	Alerts    int       `json:"alerts"`
	LastAlert *time.Time `json:"last_alert,omitempty"` // nil until the first alert
}

// StatusFetcher is implemented by *HTTPTransport and used by the link poller.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*CompanionStatus, error)
}

var (
	_ Transport     = (*HTTPTransport)(nil)
	_ StatusFetcher = (*HTTPTransport)(nil)
)

// HTTPTransport talks to the companion over its HTTP API.
type HTTPTransport struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultCompanionAddr = "127.0.0.1:7490"
	defaultUserAgent     = "alertface/0.1"
	defaultSendTimeout   = 5 * time.Second
)

// NewHTTPTransport builds a transport for the companion at addr (host:port
// or a full URL). A non-positive timeout uses the default.
func NewHTTPTransport(addr string, timeout time.Duration) (*HTTPTransport, error) {
	base, err := parseBaseURL(addr)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &HTTPTransport{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

type deliverResponse struct {
	Result Result `json:"result"`
}

// Deliver POSTs msg to /api/appmessage and returns the companion's result.
func (t *HTTPTransport) Deliver(ctx context.Context, msg Message) Result {
	if t == nil {
		return NotConnected
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return InvalidArgs
	}

	reqURL := t.baseURL.ResolveReference(&url.URL{Path: "/api/appmessage"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(body))
	if err != nil {
		return InternalError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.http.Do(req)
	if err != nil {
		return classifyRequestError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if code, ok := statusResult(resp.StatusCode); ok {
		return code
	}

	var payload deliverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return InternalError
	}
	return payload.Result
}

// FetchStatus retrieves the companion's status.
func (t *HTTPTransport) FetchStatus(ctx context.Context) (*CompanionStatus, error) {
	if t == nil {
		return nil, fmt.Errorf("transport is nil")
	}
	reqURL := t.baseURL.ResolveReference(&url.URL{Path: "/api/status"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api /api/status returned status %d", resp.StatusCode)
	}
	var payload CompanionStatus
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// statusResult maps HTTP error statuses onto result codes. The second return
// is false when the body should be decoded instead.
func statusResult(status int) (Result, bool) {
	switch {
	case status < 400:
		return OK, false
	case status == http.StatusBadRequest:
		return SendRejected, true
	case status == http.StatusNotFound:
		return AppNotRunning, true
	case status == http.StatusTooManyRequests, status == http.StatusServiceUnavailable:
		return Busy, true
	case status >= 500:
		return InternalError, true
	default:
		return SendRejected, true
	}
}

func classifyRequestError(err error) Result {
	if errors.Is(err, context.DeadlineExceeded) {
		return SendTimeout
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return SendTimeout
	}
	return NotConnected
}

func parseBaseURL(addr string) (*url.URL, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		trimmed = defaultCompanionAddr
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse companion_addr %q: %w", addr, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
