package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndJobCommandHandler_Handle_CompletesAndRecordsSessionTime(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	assignee := newStockholmTranslator(80)
	translators := newMemTranslatorStore(assignee)

	// session booked in the past so the elapsed time is positive
	jobID := newStoredPendingJob(jobs, now.Add(-2*time.Hour), now.Add(-time.Hour))
	accept := commands.NewAcceptJobCommandHandler(&memUoWFactory{jobs: jobs, translators: translators})
	acceptCmd, _ := commands.NewAcceptJobCommand(jobID, assignee.ID())
	require.NoError(t, accept.Handle(ctx, acceptCmd))

	h := commands.NewEndJobCommandHandler(&memJobUoWFactory{jobs: jobs})
	cmd, err := commands.NewEndJobCommand(jobID, false)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	stored, err := jobs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, job.Completed, stored.Status())
	assert.False(t, stored.NoShow())
	require.NotNil(t, stored.SessionTime())
	assert.InDelta(t, 60, *stored.SessionTime(), 5)
}

func TestEndJobCommandHandler_Handle_NoShow(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	assignee := newStockholmTranslator(80)
	translators := newMemTranslatorStore(assignee)

	jobID := newStoredPendingJob(jobs, now, now.Add(2*time.Hour))
	accept := commands.NewAcceptJobCommandHandler(&memUoWFactory{jobs: jobs, translators: translators})
	acceptCmd, _ := commands.NewAcceptJobCommand(jobID, assignee.ID())
	require.NoError(t, accept.Handle(ctx, acceptCmd))

	h := commands.NewEndJobCommandHandler(&memJobUoWFactory{jobs: jobs})
	cmd, _ := commands.NewEndJobCommand(jobID, true)
	require.NoError(t, h.Handle(ctx, cmd))

	stored, err := jobs.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, job.Completed, stored.Status())
	assert.True(t, stored.NoShow())
}

func TestEndJobCommandHandler_Handle_PendingJobRejected(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()

	jobs := newMemJobStore()
	jobID := newStoredPendingJob(jobs, now, now.Add(2*time.Hour))

	h := commands.NewEndJobCommandHandler(&memJobUoWFactory{jobs: jobs})
	cmd, _ := commands.NewEndJobCommand(jobID, false)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}
