package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the remote processor has no subscription for
// the given profile ID.
var ErrNotFound = errors.New("subscription not found at payment processor")

// Subscription is the remote processor's authoritative view of a subscription.
// Only the fields the reconciliation pipeline reads are decoded.
type Subscription struct {
	// ID is the processor-side subscription identifier (the profile ID).
	ID string `json:"id"`
	// Status is the subscription status in the processor's vocabulary
	// (active, trialing, canceled, past_due, unpaid, incomplete, ...).
	Status string `json:"status"`
	// CurrentPeriodEnd is the unix timestamp marking the end of the current
	// billing period. Zero when the subscription carries no billing cycle.
	CurrentPeriodEnd int64 `json:"current_period_end"`
}

// Client retrieves subscription state from the remote payment processor.
type Client interface {
	// RetrieveSubscription fetches the current remote state for a profile ID.
	// Returns ErrNotFound when the processor does not know the subscription.
	RetrieveSubscription(ctx context.Context, profileID string) (*Subscription, error)
}

// HTTPClient is the production Client backed by the processor's REST API.
type HTTPClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a Client for the configured payment processor endpoint.
func NewClient(cfg Config) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &HTTPClient{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// RetrieveSubscription fetches a subscription from the processor's API.
func (c *HTTPClient) RetrieveSubscription(ctx context.Context, profileID string) (*Subscription, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile ID is empty")
	}

	url := fmt.Sprintf("%s/v1/subscriptions/%s", c.baseURL, profileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("payment processor returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("failed to decode subscription: %w", err)
	}

	return &sub, nil
}
