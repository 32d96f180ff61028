package commands

import (
	"context"
)

// UpdateJobMetadataCommandHandler merges a partial metadata patch into a
// job. The operation is idempotent: replaying the distance feed produces the
// same stored state, and an empty patch commits without touching the row.
type UpdateJobMetadataCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobMetadataCommandHandler creates a handler for metadata updates.
func NewUpdateJobMetadataCommandHandler(uowFactory JobUoWFactory) UpdateJobMetadataCommandHandler {
	return UpdateJobMetadataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the metadata update command.
func (h *UpdateJobMetadataCommandHandler) Handle(ctx context.Context, cmd UpdateJobMetadataCommand) error {
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
	updated, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if cmd.Patch().IsEmpty() {
		return uow.Commit(ctx)
	}

	if err = updated.ApplyMetadata(cmd.Patch()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, updated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
