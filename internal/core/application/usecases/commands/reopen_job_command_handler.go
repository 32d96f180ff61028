package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/services"
)

// ReopenJobCommandHandler returns a cancelled, completed or expired job to
// the pending pool and announces it again. Reopening clears the previous
// translator and recomputes the expiration window against the reopen
// instant, so an old booking does not come back already expired.
type ReopenJobCommandHandler struct {
	uowFactory JobUoWFactory
	announcer  JobAnnouncer
}

// NewReopenJobCommandHandler creates a handler for reopening jobs.
func NewReopenJobCommandHandler(uowFactory JobUoWFactory, announcer JobAnnouncer) ReopenJobCommandHandler {
	return ReopenJobCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle processes the reopen command. The announcement runs after commit
// and is best effort, same as for a freshly created job.
func (h *ReopenJobCommandHandler) Handle(ctx context.Context, cmd ReopenJobCommand) error {
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
	reopened, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = reopened.Reopen(cmd.NewDueAt(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, reopened); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	result, err := h.announcer.Announce(ctx, reopened, services.FilterAll, false)
	if err != nil {
		slog.Warn("reopened job announcement failed",
			"jobID", reopened.ID().String(),
			"error", err)
		return nil
	}

	slog.Info("reopened job announced",
		"jobID", reopened.ID().String(),
		"sent", result.Sent(),
		"failed", result.Failed())

	return nil
}
