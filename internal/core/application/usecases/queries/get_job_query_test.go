package queries_test

import (
	"testing"

	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobQuery_ValidInput(t *testing.T) {
	jobID := kernel.NewUUID()
	query, err := queries.NewGetJobQuery(jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, query.JobID())
	assert.NoError(t, query.Validate())
}

func TestNewGetJobQuery_InvalidJobID(t *testing.T) {
	_, err := queries.NewGetJobQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetJobQuery_ValidateUnconstructed(t *testing.T) {
	var query queries.GetJobQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetJobQueryIsNotConstructed)
}
