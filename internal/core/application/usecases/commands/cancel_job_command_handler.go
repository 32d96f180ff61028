package commands

import (
	"context"
	"log/slog"

	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// CancelJobCommandHandler withdraws a job before its session runs.
//
// When the cancelled job already had a translator, that translator gets a
// courtesy notification after the cancellation commits. The notification is
// fire and forget: its failure is logged and never rolls back or fails the
// cancellation itself.
type CancelJobCommandHandler struct {
	uowFactory  JobUoWFactory
	translators ports.TranslatorRepository
	dispatcher  services.NotificationDispatcher
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
// The translator repository is read outside the cancellation transaction;
// it only serves the post-commit courtesy notice.
func NewCancelJobCommandHandler(
	uowFactory JobUoWFactory,
	translators ports.TranslatorRepository,
	dispatcher services.NotificationDispatcher,
) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory:  uowFactory,
		translators: translators,
		dispatcher:  dispatcher,
	}
}

// Handle processes the cancellation command.
func (h *CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
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
	cancelled, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	assignedTo := cancelled.Translator()

	if err = cancelled.Cancel(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assignedTo == nil {
		return nil
	}

	affected, err := h.translators.Get(ctx, *assignedTo)
	if err != nil {
		slog.Warn("cancellation notice skipped, translator lookup failed",
			"jobID", cancelled.ID().String(),
			"translatorID", assignedTo.String(),
			"error", err)
		return nil
	}

	notice := []services.Candidate{{Translator: affected, Score: affected.Rating()}}
	if _, err = h.dispatcher.Broadcast(ctx, cancelled, notice, services.FilterAll, false); err != nil {
		slog.Warn("cancellation notice failed",
			"jobID", cancelled.ID().String(),
			"translatorID", assignedTo.String(),
			"error", err)
	}

	return nil
}
