package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// SweepExpirationsCommandHandler expires pending jobs whose acceptance
// window has closed.
//
// The sweep races against live acceptance: a translator may claim a job in
// the instant between the sweep's read and its write. Each job is persisted
// under the version guard, so the sweep can never overwrite a concurrent
// assignment; a lost race is skipped and the job stays with its translator.
type SweepExpirationsCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewSweepExpirationsCommandHandler creates a handler for the expiration
// sweep.
func NewSweepExpirationsCommandHandler(uowFactory JobUoWFactory) SweepExpirationsCommandHandler {
	return SweepExpirationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Each overdue job is expired in its own transaction so one contended row
// never holds up or rolls back the rest of the batch.
func (h *SweepExpirationsCommandHandler) Handle(ctx context.Context, cmd SweepExpirationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	overdue, err := uow.JobRepository().GetAllExpiredPending(ctx, now)
	if commitErr := uow.Commit(ctx); commitErr != nil && err == nil {
		err = commitErr
	}
	if err != nil {
		return err
	}

	expired := 0
	for _, j := range overdue {
		swept, sweepErr := h.sweepOne(ctx, j.ID(), now)
		if sweepErr != nil {
			return sweepErr
		}
		if swept {
			expired++
		}
	}

	if len(overdue) > 0 {
		slog.Info("expiration sweep finished",
			"candidates", len(overdue),
			"expired", expired)
	}

	return nil
}

// sweepOne expires a single job in its own transaction. Returns false when
// the job was claimed or otherwise moved on since the batch read.
func (h *SweepExpirationsCommandHandler) sweepOne(
	ctx context.Context,
	jobID kernel.UUID,
	now time.Time,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	j, err := jobRepo.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if err = j.Expire(now); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
