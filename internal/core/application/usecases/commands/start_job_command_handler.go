package commands

import (
	"context"
)

// StartJobCommandHandler moves an assigned job into its in-progress state
// when the translator begins the session.
type StartJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStartJobCommandHandler creates a handler for session starts.
func NewStartJobCommandHandler(uowFactory JobUoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the session-start command.
// Only an assigned job can be started; persistence uses the version guard
// so a racing cancel or no-show resolves to a single winner.
func (h *StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) error {
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
	started, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = started.Start(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, started); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
