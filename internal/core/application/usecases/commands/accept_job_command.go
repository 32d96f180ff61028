package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrAcceptJobCommandIsNotConstructed = errors.New(
		"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
	)
)

// AcceptJobCommand represents a translator claiming a pending job.
// The same command backs acceptance from the announced-jobs list and direct
// acceptance by job identifier; both resolve to the same atomic claim.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	translatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for a translator to claim a job.
func NewAcceptJobCommand(jobID, translatorID kernel.UUID) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setTranslatorID(translatorID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being claimed.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// TranslatorID returns the identifier of the claiming translator.
func (c AcceptJobCommand) TranslatorID() kernel.UUID {
	return c.translatorID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setTranslatorID(translatorID kernel.UUID) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}
	c.translatorID = translatorID
	return nil
}
