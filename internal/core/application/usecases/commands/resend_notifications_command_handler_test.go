package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResendHandler(
	jobs *memJobStore,
	translators *memTranslatorStore,
	gateway *recordingGateway,
) commands.ResendNotificationsCommandHandler {
	dispatcher := services.NewNotificationDispatcher(gateway, gateway, 0, 0)
	announcer := commands.NewJobAnnouncer(translators, services.NewJobMatcher(), dispatcher)
	return commands.NewResendNotificationsCommandHandler(&memJobUoWFactory{jobs: jobs}, announcer)
}

func TestResendNotificationsCommandHandler_Handle_PushResend(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	candidate := newStockholmTranslator(80)
	translators := newMemTranslatorStore(candidate)
	gateway := &recordingGateway{}

	jobID := newStoredPendingJob(jobs, now, now.Add(2*time.Hour))

	h := newResendHandler(jobs, translators, gateway)
	cmd, err := commands.NewResendNotificationsCommand(jobID, services.FilterPush)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent())
	assert.Zero(t, result.Failed())
	require.Len(t, gateway.pushes, 1)
	assert.True(t, gateway.pushes[0].TranslatorID.IsEqual(candidate.ID()))
	assert.Empty(t, gateway.smses)
}

func TestResendNotificationsCommandHandler_Handle_SMSResend(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	candidate := newStockholmTranslator(80)
	translators := newMemTranslatorStore(candidate)
	gateway := &recordingGateway{}

	jobID := newStoredPendingJob(jobs, now, now.Add(2*time.Hour))

	h := newResendHandler(jobs, translators, gateway)
	cmd, _ := commands.NewResendNotificationsCommand(jobID, services.FilterSMSOnly)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent())
	require.Len(t, gateway.smses, 1)
	assert.Equal(t, candidate.PhoneNumber(), gateway.smses[0].PhoneNumber)
	assert.Empty(t, gateway.pushes)
}

func TestResendNotificationsCommandHandler_Handle_NoCandidatesRejected(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	// qualified for a different language pair only
	other, err := translator.NewTranslator(
		kernel.NewUUID(), "Jonas",
		[]translator.LanguagePair{{From: "de", To: "sv"}},
		"stockholm", 70, nil, true, "+46700000002")
	require.NoError(t, err)
	translators := newMemTranslatorStore(other)
	gateway := &recordingGateway{}

	jobID := newStoredPendingJob(jobs, now, now.Add(2*time.Hour))

	h := newResendHandler(jobs, translators, gateway)
	cmd, _ := commands.NewResendNotificationsCommand(jobID, services.FilterAll)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Empty(t, gateway.pushes)
	assert.Empty(t, gateway.smses)
}

func TestNewResendNotificationsCommand_InvalidFilter(t *testing.T) {
	_, err := commands.NewResendNotificationsCommand(kernel.NewUUID(), services.ChannelFilter("fax"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestResendNotificationsCommandHandler_Handle_UnknownJob(t *testing.T) {
	ctx := t.Context()

	h := newResendHandler(newMemJobStore(), newMemTranslatorStore(), &recordingGateway{})
	cmd, _ := commands.NewResendNotificationsCommand(kernel.NewUUID(), services.FilterAll)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
