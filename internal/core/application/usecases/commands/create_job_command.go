package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
)

// CreateJobCommand represents a request to create a new booking.
// Encapsulates the customer, the required language pair, the service region
// and the session due time.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(kernel.NewUUID(), customerID, "en", "sv", "stockholm", dueAt)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	customerID   kernel.UUID
	languageFrom string
	languageTo   string
	region       string
	dueAt        time.Time

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new booking.
// Validates that identifiers are valid and that the required fields are
// present; the "due time in the future" rule is enforced by the aggregate
// so creation and reopening share it.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	languageFrom string,
	languageTo string,
	region string,
	dueAt time.Time,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setCustomerID(customerID),
		cmd.setLanguagePair(languageFrom, languageTo),
		cmd.setRegion(region),
		cmd.setDueAt(dueAt),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the booking customer's identifier.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LanguageFrom returns the source language of the required pair.
func (c CreateJobCommand) LanguageFrom() string {
	return c.languageFrom
}

// LanguageTo returns the target language of the required pair.
func (c CreateJobCommand) LanguageTo() string {
	return c.languageTo
}

// Region returns the service region of the booking.
func (c CreateJobCommand) Region() string {
	return c.region
}

// DueAt returns the booked session start time.
func (c CreateJobCommand) DueAt() time.Time {
	return c.dueAt
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setLanguagePair(from, to string) error {
	if from == "" {
		return errs.NewValueIsRequiredError("languageFrom")
	}
	if to == "" {
		return errs.NewValueIsRequiredError("languageTo")
	}
	c.languageFrom = from
	c.languageTo = to
	return nil
}

func (c *CreateJobCommand) setRegion(region string) error {
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	c.region = region
	return nil
}

func (c *CreateJobCommand) setDueAt(dueAt time.Time) error {
	if dueAt.IsZero() {
		return errs.NewValueIsRequiredError("dueAt")
	}
	c.dueAt = dueAt
	return nil
}
