package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// ErrTransportUnavailable is returned when every dispatch attempt failed,
// which indicates the notification transport is unreachable rather than a
// per-recipient problem. Partial failures never produce this error.
var ErrTransportUnavailable = errors.New("notification transport unavailable")

const (
	defaultMaxParallel = 8
	defaultSendTimeout = 10 * time.Second
)

// Channel identifies a notification delivery channel.
type Channel string

const (
	ChannelPush Channel = "push"
	ChannelSMS  Channel = "sms"
)

// ChannelFilter selects which channels a broadcast may use.
type ChannelFilter string

const (
	// FilterAll attempts push delivery and falls back to SMS when push is
	// unsupported for a translator or the push attempt fails.
	FilterAll ChannelFilter = "*"

	// FilterPush attempts push delivery, reaching for SMS only when a
	// translator has no push support at all.
	FilterPush ChannelFilter = "push"

	// FilterSMSOnly attempts SMS delivery only.
	FilterSMSOnly ChannelFilter = "sms"
)

// Outcome is the result of a single dispatch attempt.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// JobNotification is the snapshot of job data handed to the notification
// gateways. It is taken at call time so no job-level lock is held while the
// sends are in flight.
type JobNotification struct {
	JobID        kernel.UUID
	TranslatorID kernel.UUID
	PhoneNumber  string
	DueAt        time.Time
	ExpiresAt    time.Time
	LanguageFrom string
	LanguageTo   string
	Region       string
}

// PushSender delivers a job notification over the push channel.
type PushSender interface {
	SendPush(ctx context.Context, notification JobNotification) error
}

// SMSSender delivers a job notification over the SMS channel.
type SMSSender interface {
	SendSMS(ctx context.Context, notification JobNotification) error
}

// Receipt records the outcome of one dispatch attempt to one translator.
type Receipt struct {
	TranslatorID kernel.UUID
	Channel      Channel
	Outcome      Outcome
	ErrorDetail  string
}

// DispatchResult aggregates the receipts of a broadcast.
type DispatchResult struct {
	Receipts   []Receipt
	PushSent   int
	PushFailed int
	SMSSent    int
	SMSFailed  int
}

// Sent returns the total number of successful deliveries across channels.
func (r DispatchResult) Sent() int {
	return r.PushSent + r.SMSSent
}

// Failed returns the total number of failed delivery attempts across channels.
func (r DispatchResult) Failed() int {
	return r.PushFailed + r.SMSFailed
}

// NotificationDispatcher fans a job announcement out to a candidate set.
//
// Sends are issued concurrently with bounded parallelism, each attempt is
// time-bounded, and a failure for one candidate never cancels the others.
// The dispatcher never mutates the job; it operates purely on the snapshot
// taken when the broadcast starts.
type NotificationDispatcher struct {
	push        PushSender
	sms         SMSSender
	maxParallel int
	sendTimeout time.Duration
}

// NewNotificationDispatcher creates a dispatcher over the given gateways.
// Non-positive maxParallel or sendTimeout select the defaults.
func NewNotificationDispatcher(push PushSender, sms SMSSender, maxParallel int, sendTimeout time.Duration) NotificationDispatcher {
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}
	return NotificationDispatcher{
		push:        push,
		sms:         sms,
		maxParallel: maxParallel,
		sendTimeout: sendTimeout,
	}
}

// Broadcast announces the job to every candidate.
//
// requireRecipients makes an empty candidate set a validation error; with it
// unset an empty set yields an empty result. Partial failure is reported in
// the result, never as an error. ErrTransportUnavailable is returned only
// when every single attempt failed.
func (d NotificationDispatcher) Broadcast(
	ctx context.Context,
	j *job.Job,
	candidates []Candidate,
	filter ChannelFilter,
	requireRecipients bool,
) (DispatchResult, error) {
	if err := j.Validate(); err != nil {
		return DispatchResult{}, err
	}

	if len(candidates) == 0 {
		if requireRecipients {
			return DispatchResult{}, errs.NewValueIsRequiredError("candidates")
		}
		return DispatchResult{}, nil
	}

	var (
		mu     sync.Mutex
		result DispatchResult
	)

	record := func(receipt Receipt) {
		mu.Lock()
		defer mu.Unlock()

		result.Receipts = append(result.Receipts, receipt)
		switch {
		case receipt.Channel == ChannelPush && receipt.Outcome == OutcomeSent:
			result.PushSent++
		case receipt.Channel == ChannelPush && receipt.Outcome == OutcomeFailed:
			result.PushFailed++
		case receipt.Channel == ChannelSMS && receipt.Outcome == OutcomeSent:
			result.SMSSent++
		case receipt.Channel == ChannelSMS && receipt.Outcome == OutcomeFailed:
			result.SMSFailed++
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.maxParallel)

	for _, candidate := range candidates {
		notification := JobNotification{
			JobID:        j.ID(),
			TranslatorID: candidate.Translator.ID(),
			PhoneNumber:  candidate.Translator.PhoneNumber(),
			DueAt:        j.DueAt(),
			ExpiresAt:    j.ExpiresAt(),
			LanguageFrom: j.LanguageFrom(),
			LanguageTo:   j.LanguageTo(),
			Region:       j.Region(),
		}
		pushSupported := candidate.Translator.PushEnabled()

		group.Go(func() error {
			d.notifyOne(groupCtx, notification, pushSupported, filter, record)
			// Errors are collected as receipts so one candidate's failure
			// never cancels the siblings.
			return nil
		})
	}

	_ = group.Wait()

	if result.Sent() == 0 && result.Failed() > 0 {
		return result, ErrTransportUnavailable
	}

	return result, nil
}

// Resend re-runs dispatch for a job against a freshly computed candidate set.
// Repeated delivery to an already notified translator is acceptable, so the
// operation is idempotent in effect. An empty candidate set is an error here:
// a resend without recipients is always a caller mistake.
func (d NotificationDispatcher) Resend(
	ctx context.Context,
	j *job.Job,
	candidates []Candidate,
	filter ChannelFilter,
) (DispatchResult, error) {
	return d.Broadcast(ctx, j, candidates, filter, true)
}

func (d NotificationDispatcher) notifyOne(
	ctx context.Context,
	notification JobNotification,
	pushSupported bool,
	filter ChannelFilter,
	record func(Receipt),
) {
	pushAttempted := false
	pushDelivered := false

	if filter != FilterSMSOnly && pushSupported {
		pushAttempted = true
		err := d.send(ctx, ChannelPush, notification)
		if err == nil {
			pushDelivered = true
			record(Receipt{TranslatorID: notification.TranslatorID, Channel: ChannelPush, Outcome: OutcomeSent})
		} else {
			record(Receipt{TranslatorID: notification.TranslatorID, Channel: ChannelPush, Outcome: OutcomeFailed, ErrorDetail: err.Error()})
		}
	}

	// SMS is used when explicitly requested, as the only channel for a
	// translator without push support, or as a fallback for a failed push
	// when the filter allows every channel.
	needSMS := filter == FilterSMSOnly ||
		!pushSupported ||
		(filter == FilterAll && pushAttempted && !pushDelivered)
	if !needSMS {
		return
	}

	if notification.PhoneNumber == "" {
		record(Receipt{
			TranslatorID: notification.TranslatorID,
			Channel:      ChannelSMS,
			Outcome:      OutcomeFailed,
			ErrorDetail:  "translator has no phone number",
		})
		return
	}

	if err := d.send(ctx, ChannelSMS, notification); err != nil {
		record(Receipt{TranslatorID: notification.TranslatorID, Channel: ChannelSMS, Outcome: OutcomeFailed, ErrorDetail: err.Error()})
		return
	}
	record(Receipt{TranslatorID: notification.TranslatorID, Channel: ChannelSMS, Outcome: OutcomeSent})
}

// send issues a single time-bounded delivery attempt.
func (d NotificationDispatcher) send(ctx context.Context, channel Channel, notification JobNotification) error {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if channel == ChannelPush {
		return d.push.SendPush(sendCtx, notification)
	}
	return d.sms.SendSMS(sendCtx, notification)
}
