package commands

import (
	"context"
	"log/slog"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
)

// CreateJobCommandHandler handles the business logic for booking creation.
// Creates a new pending job with a derived expiration instant and announces
// it to every qualified translator.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory, announcer)
//	cmd, _ := NewCreateJobCommand(kernel.NewUUID(), customerID, "en", "sv", "stockholm", dueAt)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking creation failed: %w", err)
//	}
//	// Job is now pending and qualified translators have been notified
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	announcer  JobAnnouncer
}

// NewCreateJobCommandHandler creates a handler for booking creation.
// Requires a JobUoWFactory for transactional persistence and an announcer
// for the post-commit notification fan-out.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory, announcer JobAnnouncer) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle processes the booking creation command.
// Persists the job first; the announcement runs after commit and is
// best effort, so a notification outage never loses a booking.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newJob, err := job.NewJob(
		cmd.JobID(),
		cmd.CustomerID(),
		cmd.LanguageFrom(),
		cmd.LanguageTo(),
		cmd.Region(),
		cmd.DueAt(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	result, err := h.announcer.Announce(ctx, newJob, services.FilterAll, false)
	if err != nil {
		slog.Warn("job announcement failed",
			"jobID", newJob.ID().String(),
			"error", err)
		return nil
	}

	slog.Info("job announced",
		"jobID", newJob.ID().String(),
		"sent", result.Sent(),
		"failed", result.Failed())

	return nil
}
