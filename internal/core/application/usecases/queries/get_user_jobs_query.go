package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrGetUserJobsQueryIsNotConstructed = errors.New(
		"GetUserJobsQuery must be created via NewGetUserJobsQuery constructor",
	)
)

// GetUserJobsQuery retrieves the jobs a user participates in, whether as the
// booking customer or as the assigned translator.
//
// Example:
//
//	query, _ := NewGetUserJobsQuery(userID)
//	handler := NewGetUserJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user jobs: %w", err)
//	}
//
//	fmt.Printf("%d open, %d finished\n", len(jobs.Active), len(jobs.History))
type GetUserJobsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserJobsQuery creates a query for a user's job list.
func NewGetUserJobsQuery(userID kernel.UUID) (GetUserJobsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserJobsQuery{}, err
	}

	return GetUserJobsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserJobsQueryIsNotConstructed)
}

// UserID returns the participant identifier being queried.
func (q GetUserJobsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserJobsQueryResponse splits a user's jobs into the open workload and
// the finished history.
type GetUserJobsQueryResponse struct {
	Active  []JobView
	History []JobView
}
