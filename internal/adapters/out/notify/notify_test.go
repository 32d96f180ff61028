package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking/internal/adapters/out/notify"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
)

func testNotification(t *testing.T) services.JobNotification {
	t.Helper()

	due := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return services.JobNotification{
		JobID:        kernel.NewUUID(),
		TranslatorID: kernel.NewUUID(),
		PhoneNumber:  "+46700000001",
		DueAt:        due,
		ExpiresAt:    due.Add(-time.Hour),
		LanguageFrom: "en",
		LanguageTo:   "sv",
		Region:       "stockholm",
	}
}

func TestNewPushClient_RequiresEndpoint(t *testing.T) {
	_, err := notify.NewPushClient(notify.PushConfig{})
	assert.Error(t, err)
}

func TestNewSMSClient_RequiresEndpoint(t *testing.T) {
	_, err := notify.NewSMSClient(notify.SMSConfig{EndpointURL: "   "})
	assert.Error(t, err)
}

func TestPushClient_SendPush_PostsPayload(t *testing.T) {
	notification := testNotification(t)

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client, err := notify.NewPushClient(notify.PushConfig{EndpointURL: srv.URL, AuthToken: "secret"})
	require.NoError(t, err)

	require.NoError(t, client.SendPush(context.Background(), notification))

	assert.Equal(t, notification.TranslatorID.String(), got["user_id"])
	assert.Equal(t, notification.JobID.String(), got["job_id"])
	assert.Equal(t, "en", got["language_from"])
	assert.Equal(t, "sv", got["language_to"])
	assert.Equal(t, "stockholm", got["region"])
	assert.Equal(t, "2026-09-01T14:00:00Z", got["due_at"])
}

func TestPushClient_SendPush_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := notify.NewPushClient(notify.PushConfig{EndpointURL: srv.URL, RetryLimit: 2})
	require.NoError(t, err)

	require.NoError(t, client.SendPush(context.Background(), testNotification(t)))
	assert.Equal(t, int32(2), calls.Load())
}

func TestPushClient_SendPush_ReportsEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "token rejected", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := notify.NewPushClient(notify.PushConfig{EndpointURL: srv.URL})
	require.NoError(t, err)

	err = client.SendPush(context.Background(), testNotification(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "token rejected")
}

func TestSMSClient_SendSMS_PostsPayload(t *testing.T) {
	notification := testNotification(t)

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := notify.NewSMSClient(notify.SMSConfig{EndpointURL: srv.URL, SenderName: "tolk"})
	require.NoError(t, err)

	require.NoError(t, client.SendSMS(context.Background(), notification))

	assert.Equal(t, "+46700000001", got["to"])
	assert.Equal(t, "tolk", got["from"])
	assert.Contains(t, got["body"], "EN-SV")
	assert.Contains(t, got["body"], "stockholm")
	assert.Contains(t, got["body"], "2026-09-01 14:00")
}

func TestSMSClient_SendSMS_RejectsMissingPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("gateway must not be called without a phone number")
	}))
	defer srv.Close()

	client, err := notify.NewSMSClient(notify.SMSConfig{EndpointURL: srv.URL})
	require.NoError(t, err)

	notification := testNotification(t)
	notification.PhoneNumber = ""

	assert.Error(t, client.SendSMS(context.Background(), notification))
}
