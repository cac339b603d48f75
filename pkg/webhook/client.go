package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout             = 10 * time.Second
	defaultUserAgent           = "Quote-Generator/1.0"
	responseBodyReadLimit int64 = 4096

	// FailedStatusMarker is the webhook_status value reported to the form
	// when the call never produced an HTTP response.
	FailedStatusMarker = "timeout_or_network_error"
)

var errURLRequired = errors.New("webhook URL is required")

// State classifies the result of one relay attempt.
type State string

const (
	StateDelivered State = "delivered"
	StateRejected  State = "rejected"
	StateFailed    State = "failed"
)

// Outcome is the terminal result of a single relay attempt. Exactly one
// attempt is ever made; there is no retry or queueing behind it.
type Outcome struct {
	State      State
	StatusCode int
	Body       string
	Reason     string
}

// Delivered reports whether the automation target acknowledged the call.
func (o Outcome) Delivered() bool {
	return o.State == StateDelivered
}

// ErrorText renders the webhook_error string the form displays, or ""
// when the call was delivered.
func (o Outcome) ErrorText() string {
	switch o.State {
	case StateRejected:
		return fmt.Sprintf("Status: %d %s - %s", o.StatusCode, http.StatusText(o.StatusCode), o.Body)
	case StateFailed:
		return o.Reason
	default:
		return ""
	}
}

// StatusValue renders the webhook_status field: the HTTP status code for
// rejections, a fixed marker for transport failures, nil when delivered.
func (o Outcome) StatusValue() any {
	switch o.State {
	case StateRejected:
		return o.StatusCode
	case StateFailed:
		return FailedStatusMarker
	default:
		return nil
	}
}

// Client posts flattened quote payloads to the workflow-automation target.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default 10s call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with each call.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(userAgent)
		if trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// NewClient builds a relay client for the given webhook URL.
func NewClient(url string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimSpace(url)
	if trimmedURL == "" {
		return nil, errURLRequired
	}

	client := &Client{
		url:        trimmedURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return client, nil
}

// URL returns the configured webhook address.
func (c *Client) URL() string {
	if c == nil {
		return ""
	}
	return c.url
}

// Deliver posts the flattened payload once and classifies the result.
// Transport faults, including the call timeout, become StateFailed;
// non-2xx responses become StateRejected with a best-effort body read.
func (c *Client) Deliver(ctx context.Context, payload map[string]string) Outcome {
	if c == nil {
		return Outcome{State: StateFailed, Reason: "webhook client not configured"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{State: StateFailed, Reason: fmt.Sprintf("marshal webhook payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Outcome{State: StateFailed, Reason: fmt.Sprintf("build webhook request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Outcome{State: StateFailed, Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{
			State:      StateRejected,
			StatusCode: resp.StatusCode,
			Body:       readBody(resp.Body),
		}
	}

	return Outcome{State: StateDelivered, StatusCode: resp.StatusCode}
}

func readBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, responseBodyReadLimit))
	if err != nil {
		return "No response body"
	}
	return strings.TrimSpace(string(raw))
}
