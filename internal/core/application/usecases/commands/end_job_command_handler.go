package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
)

// EndJobCommandHandler completes a job session and records its duration.
//
// Example:
//
//	handler := NewEndJobCommandHandler(uowFactory)
//	cmd, _ := NewEndJobCommand(jobID, false)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ending job failed: %w", err)
//	}
type EndJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewEndJobCommandHandler creates a handler for session completion.
func NewEndJobCommandHandler(uowFactory JobUoWFactory) EndJobCommandHandler {
	return EndJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session-end command.
// A no-show is flagged before completion, then the elapsed session time
// since the booked start is written into the job's metadata.
func (h *EndJobCommandHandler) Handle(ctx context.Context, cmd EndJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	ended, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if cmd.NoShow() {
		if err = ended.MarkNoShow(); err != nil {
			return err
		}
	}

	if err = ended.Complete(); err != nil {
		return err
	}

	if minutes := time.Now().UTC().Sub(ended.DueAt()).Minutes(); minutes > 0 {
		if err = ended.ApplyMetadata(job.MetadataPatch{SessionTime: &minutes}); err != nil {
			return err
		}
	}

	if err = jobRepo.Update(ctx, ended); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
