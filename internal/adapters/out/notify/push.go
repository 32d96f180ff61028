// Package notify contains the outbound notification gateways. Both gateways
// post JSON to an external delivery service and satisfy the dispatcher's
// sender interfaces.
package notify

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

	"booking/internal/core/domain/services"
)

// PushConfig captures the behaviour of the push gateway endpoint.
type PushConfig struct {
	EndpointURL string
	AuthToken   string
	Timeout     time.Duration
	RetryLimit  int
	Client      *http.Client
}

// PushClient delivers job announcements to the push notification service.
type PushClient struct {
	endpointURL string
	authToken   string
	retryLimit  int
	client      *http.Client
}

// NewPushClient builds a push gateway client. Callers should pass a
// validated config.
func NewPushClient(cfg PushConfig) (*PushClient, error) {
	endpointURL := strings.TrimSpace(cfg.EndpointURL)
	if endpointURL == "" {
		return nil, errors.New("push endpoint url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &PushClient{
		endpointURL: endpointURL,
		authToken:   strings.TrimSpace(cfg.AuthToken),
		retryLimit:  retries,
		client:      hc,
	}, nil
}

// pushPayload is the wire format the push service expects.
type pushPayload struct {
	UserID       string `json:"user_id"`
	JobID        string `json:"job_id"`
	LanguageFrom string `json:"language_from"`
	LanguageTo   string `json:"language_to"`
	Region       string `json:"region"`
	DueAt        string `json:"due_at"`
	ExpiresAt    string `json:"expires_at"`
}

// SendPush posts one job announcement to the push service.
func (c *PushClient) SendPush(ctx context.Context, n services.JobNotification) error {
	body, err := json.Marshal(pushPayload{
		UserID:       n.TranslatorID.String(),
		JobID:        n.JobID.String(),
		LanguageFrom: n.LanguageFrom,
		LanguageTo:   n.LanguageTo,
		Region:       n.Region,
		DueAt:        n.DueAt.UTC().Format(time.RFC3339),
		ExpiresAt:    n.ExpiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	return postWithRetry(ctx, c.client, c.endpointURL, c.authToken, body, c.retryLimit)
}

// postWithRetry posts a JSON body, retrying transient failures with a simple
// linear backoff to avoid thundering retries.
func postWithRetry(
	ctx context.Context,
	client *http.Client,
	endpointURL string,
	authToken string,
	body []byte,
	retryLimit int,
) error {
	attempts := retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err := postJSON(ctx, client, endpointURL, authToken, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < attempts-1 {
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}

func postJSON(ctx context.Context, client *http.Client, endpointURL, authToken string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return nil
}
