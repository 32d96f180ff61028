package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"booking/internal/core/domain/services"
)

// SMSConfig captures the behaviour of the SMS gateway endpoint.
type SMSConfig struct {
	EndpointURL string
	AuthToken   string
	SenderName  string
	Timeout     time.Duration
	RetryLimit  int
	Client      *http.Client
}

// SMSClient delivers job announcements as text messages through the SMS
// gateway.
type SMSClient struct {
	endpointURL string
	authToken   string
	senderName  string
	retryLimit  int
	client      *http.Client
}

// NewSMSClient builds an SMS gateway client.
func NewSMSClient(cfg SMSConfig) (*SMSClient, error) {
	endpointURL := strings.TrimSpace(cfg.EndpointURL)
	if endpointURL == "" {
		return nil, errors.New("sms endpoint url is required")
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

	senderName := strings.TrimSpace(cfg.SenderName)
	if senderName == "" {
		senderName = "booking"
	}

	return &SMSClient{
		endpointURL: endpointURL,
		authToken:   strings.TrimSpace(cfg.AuthToken),
		senderName:  senderName,
		retryLimit:  retries,
		client:      hc,
	}, nil
}

// smsPayload is the wire format the SMS gateway expects.
type smsPayload struct {
	To     string `json:"to"`
	From   string `json:"from"`
	Body   string `json:"body"`
	UserID string `json:"user_id"`
	JobID  string `json:"job_id"`
}

// SendSMS posts one job announcement to the SMS gateway. The notification
// must carry a phone number, the dispatcher only routes SMS to translators
// that have one.
func (c *SMSClient) SendSMS(ctx context.Context, n services.JobNotification) error {
	phone := strings.TrimSpace(n.PhoneNumber)
	if phone == "" {
		return errors.New("sms notification is missing a phone number")
	}

	body, err := json.Marshal(smsPayload{
		To:     phone,
		From:   c.senderName,
		Body:   smsText(n),
		UserID: n.TranslatorID.String(),
		JobID:  n.JobID.String(),
	})
	if err != nil {
		return fmt.Errorf("encode sms payload: %w", err)
	}

	return postWithRetry(ctx, c.client, c.endpointURL, c.authToken, body, c.retryLimit)
}

func smsText(n services.JobNotification) string {
	return fmt.Sprintf(
		"New %s-%s interpretation job in %s, starts %s. Open the app to accept before %s.",
		strings.ToUpper(n.LanguageFrom),
		strings.ToUpper(n.LanguageTo),
		n.Region,
		n.DueAt.UTC().Format("2006-01-02 15:04"),
		n.ExpiresAt.UTC().Format("2006-01-02 15:04"),
	)
}
