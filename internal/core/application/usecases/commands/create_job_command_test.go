package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateJobCommand_ValidInput(t *testing.T) {
	jobID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	dueAt := time.Now().UTC().Add(3 * time.Hour)

	cmd, err := commands.NewCreateJobCommand(jobID, customerID, "en", "sv", "stockholm", dueAt)
	require.NoError(t, err)
	assert.Equal(t, jobID, cmd.JobID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "en", cmd.LanguageFrom())
	assert.Equal(t, "sv", cmd.LanguageTo())
	assert.Equal(t, "stockholm", cmd.Region())
	assert.Equal(t, dueAt, cmd.DueAt())
}

func TestNewCreateJobCommand_InvalidJobID(t *testing.T) {
	_, err := commands.NewCreateJobCommand(
		kernel.UUID{}, kernel.NewUUID(), "en", "sv", "stockholm", time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateJobCommand_MissingLanguagePair(t *testing.T) {
	_, err := commands.NewCreateJobCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "sv", "stockholm", time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateJobCommand(
		kernel.NewUUID(), kernel.NewUUID(), "en", "", "stockholm", time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateJobCommand_MissingRegion(t *testing.T) {
	_, err := commands.NewCreateJobCommand(
		kernel.NewUUID(), kernel.NewUUID(), "en", "sv", "", time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateJobCommand_ZeroDueAt(t *testing.T) {
	_, err := commands.NewCreateJobCommand(
		kernel.NewUUID(), kernel.NewUUID(), "en", "sv", "stockholm", time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateJobCommand_ValidateUnconstructed(t *testing.T) {
	var cmd commands.CreateJobCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateJobCommandIsNotConstructed)
}
