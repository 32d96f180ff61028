package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var (
	ErrGetPotentialJobsQueryIsNotConstructed = errors.New(
		"GetPotentialJobsQuery must be created via NewGetPotentialJobsQuery constructor",
	)
)

// GetPotentialJobsQuery retrieves the pending jobs a translator is qualified
// to accept right now: still inside the acceptance window, in the
// translator's region and covering one of their language pairs.
//
// Example:
//
//	query, _ := NewGetPotentialJobsQuery(translatorID)
//	handler := NewGetPotentialJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
type GetPotentialJobsQuery struct {
	translatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPotentialJobsQuery creates a potential-jobs query for a translator.
func NewGetPotentialJobsQuery(translatorID kernel.UUID) (GetPotentialJobsQuery, error) {
	if err := translatorID.Validate(); err != nil {
		return GetPotentialJobsQuery{}, err
	}

	return GetPotentialJobsQuery{
		translatorID: translatorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPotentialJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetPotentialJobsQueryIsNotConstructed)
}

// TranslatorID returns the translator whose potential jobs are requested.
func (q GetPotentialJobsQuery) TranslatorID() kernel.UUID {
	return q.translatorID
}
