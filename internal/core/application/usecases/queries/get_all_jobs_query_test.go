package queries_test

import (
	"testing"

	"booking/internal/core/application/usecases/queries"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllJobsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetAllJobsQuery("pending", "stockholm", 50)
	require.NoError(t, err)
	assert.Equal(t, "pending", query.Status())
	assert.Equal(t, "stockholm", query.Region())
	assert.Equal(t, 50, query.Limit())
}

func TestNewGetAllJobsQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetAllJobsQuery("", "", 0)
	require.NoError(t, err)
	assert.Empty(t, query.Status())
	assert.Empty(t, query.Region())
	assert.Equal(t, 200, query.Limit(), "non-positive limit selects the default page size")
}

func TestNewGetAllJobsQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetAllJobsQuery("parked", "", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetAllJobsQuery_ValidateUnconstructed(t *testing.T) {
	var query queries.GetAllJobsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllJobsQueryIsNotConstructed)
}
