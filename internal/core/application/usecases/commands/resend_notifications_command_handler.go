package commands

import (
	"context"

	"booking/internal/core/domain/services"
)

// ResendNotificationsCommandHandler re-runs the candidate match for a job
// and broadcasts again over the selected channels.
//
// Unlike the announcement after create, a resend is an explicit request:
// an empty candidate set is reported back as a validation error instead of
// being silently accepted.
type ResendNotificationsCommandHandler struct {
	uowFactory JobUoWFactory
	announcer  JobAnnouncer
}

// NewResendNotificationsCommandHandler creates a handler for notification
// resends.
func NewResendNotificationsCommandHandler(
	uowFactory JobUoWFactory,
	announcer JobAnnouncer,
) ResendNotificationsCommandHandler {
	return ResendNotificationsCommandHandler{
		uowFactory: uowFactory,
		announcer:  announcer,
	}
}

// Handle processes the resend command and returns the delivery accounting.
func (h *ResendNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd ResendNotificationsCommand,
) (services.DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.DispatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.DispatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resent, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return services.DispatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.DispatchResult{}, err
	}

	return h.announcer.Announce(ctx, resent, cmd.Filter(), true)
}
