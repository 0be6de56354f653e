package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"facttech_landing_go/services/leads"
)

// DefaultEndpoint is the lead intake worker
const DefaultEndpoint = "https://facttech.syoliverts.workers.dev"

// DefaultTimeout bounds a single submission
const DefaultTimeout = 15 * time.Second

// maxResponseBytes caps how much of the response body is read
const maxResponseBytes = 64 << 10

var (
	// ErrTransport is returned when the call cannot complete
	ErrTransport = errors.New("intake endpoint unreachable")

	// ErrMalformedResponse is returned when the response body is not the expected JSON object
	ErrMalformedResponse = errors.New("malformed intake response")
)

// RejectionError is returned when the endpoint answers with success=false
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("intake rejected lead (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("intake rejected lead (status %d): %s", e.StatusCode, e.Message)
}

// Response is the intake endpoint's reply
type Response struct {
	Success *bool  `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client posts leads to the intake endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client with an explicit timeout
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the configured intake URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit sends one lead. It makes a single attempt with no retry.
func (c *Client) Submit(ctx context.Context, lead leads.LeadRequest) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrTransport, ctxErr)
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	var result Response
	if err := json.Unmarshal(raw, &result); err != nil || result.Success == nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}

	// The success flag decides the outcome, whatever the status code
	if !*result.Success {
		return &RejectionError{StatusCode: resp.StatusCode, Message: result.Error}
	}
	return nil
}

// Classify maps a Submit error onto the workflow's outcome kinds
func Classify(err error) (leads.OutcomeKind, string) {
	var rejection *RejectionError
	switch {
	case err == nil:
		return leads.OutcomeSuccess, ""
	case errors.As(err, &rejection):
		return leads.OutcomeRejected, rejection.Message
	case errors.Is(err, ErrMalformedResponse):
		return leads.OutcomeMalformed, ""
	case errors.Is(err, context.Canceled):
		return leads.OutcomeAborted, ""
	default:
		return leads.OutcomeTransport, ""
	}
}
