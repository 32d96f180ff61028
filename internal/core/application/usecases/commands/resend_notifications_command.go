package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var (
	ErrResendNotificationsCommandIsNotConstructed = errors.New(
		"ResendNotificationsCommand must be created via NewResendNotificationsCommand constructor",
	)
)

// ResendNotificationsCommand re-announces a job on demand, typically from
// the admin console when the original fan-out missed its audience.
type ResendNotificationsCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	filter services.ChannelFilter

	guard guard.ConstructorGuard
}

// NewResendNotificationsCommand creates a resend command for the given
// channel filter.
func NewResendNotificationsCommand(
	jobID kernel.UUID,
	filter services.ChannelFilter,
) (ResendNotificationsCommand, error) {
	cmd := ResendNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setFilter(filter),
	); err != nil {
		return ResendNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResendNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrResendNotificationsCommandIsNotConstructed)
}

// JobID returns the identifier of the job to re-announce.
func (c ResendNotificationsCommand) JobID() kernel.UUID {
	return c.jobID
}

// Filter returns the channel selection for the resend.
func (c ResendNotificationsCommand) Filter() services.ChannelFilter {
	return c.filter
}

func (c *ResendNotificationsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *ResendNotificationsCommand) setFilter(filter services.ChannelFilter) error {
	switch filter {
	case services.FilterAll, services.FilterPush, services.FilterSMSOnly:
		c.filter = filter
		return nil
	default:
		return errs.NewValueIsInvalidError("filter")
	}
}
