package commands

import (
	"errors"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrUpdateJobMetadataCommandIsNotConstructed = errors.New(
		"UpdateJobMetadataCommand must be created via NewUpdateJobMetadataCommand constructor",
	)
)

// UpdateJobMetadataCommand carries a partial update of a job's distance and
// session bookkeeping. Fields absent from the patch are left untouched, so
// the distance feed and the admin console can write independently.
type UpdateJobMetadataCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	patch job.MetadataPatch

	guard guard.ConstructorGuard
}

// NewUpdateJobMetadataCommand creates a partial metadata update command.
// Whether a flagging patch carries enough context is decided by the
// aggregate, which can see the comment already stored on the job.
func NewUpdateJobMetadataCommand(jobID kernel.UUID, patch job.MetadataPatch) (UpdateJobMetadataCommand, error) {
	cmd := UpdateJobMetadataCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return UpdateJobMetadataCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobMetadataCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobMetadataCommandIsNotConstructed)
}

// JobID returns the identifier of the job to update.
func (c UpdateJobMetadataCommand) JobID() kernel.UUID {
	return c.jobID
}

// Patch returns the partial metadata update.
func (c UpdateJobMetadataCommand) Patch() job.MetadataPatch {
	return c.patch
}

func (c *UpdateJobMetadataCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
