package commands

import (
	"context"
)

// AcceptJobCommandHandler handles a translator's claim on a pending job.
//
// Acceptance is the contended path of the whole system: several translators
// race for the same announcement. The claim is resolved by the aggregate's
// state transition plus the repository's version guard, so under any number
// of concurrent accept calls exactly one translator wins and every other
// caller receives a conflict.
//
// Example:
//
//	handler := NewAcceptJobCommandHandler(uowFactory)
//	cmd, _ := NewAcceptJobCommand(jobID, translatorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrConflict) {
//	        // somebody else got there first
//	    }
//	}
type AcceptJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptJobCommandHandler creates a handler for job acceptance.
// Requires a UoWFactory because acceptance verifies the claiming translator
// exists before assigning the job.
func NewAcceptJobCommandHandler(uowFactory UoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Loads the job and the translator, applies the assignment transition and
// persists under the version guard. A stale read loses the race and surfaces
// as a conflict without retrying: the caller is told the job is taken.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	if _, err := uow.TranslatorRepository().Get(ctx, cmd.TranslatorID()); err != nil {
		return err
	}

	jobRepo := uow.JobRepository()
	claimed, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = claimed.Assign(cmd.TranslatorID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, claimed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
