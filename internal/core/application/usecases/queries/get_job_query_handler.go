package queries

import (
	"context"
	"database/sql"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler retrieves a single job's detail view from the database.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-job queries.
// Requires a GORM database connection for query execution.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error when no job exists
// under the requested identifier.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (GetJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`,
			t.name,
			t.phone_number
		FROM jobs
		LEFT JOIN translators t ON t.id = jobs.translator_id
		WHERE jobs.id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return GetJobQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetJobQueryResponse{}, err
		}
		return GetJobQueryResponse{}, errs.NewObjectNotFoundError("job", query.JobID().String())
	}

	view, name, phone, err := scanJobDetailRow(rows)
	if err != nil {
		return GetJobQueryResponse{}, err
	}

	return GetJobQueryResponse{
		Job:             view,
		TranslatorName:  name,
		TranslatorPhone: phone,
	}, nil
}

func scanJobDetailRow(row rowScanner) (JobView, string, string, error) {
	var (
		translatorName  sql.NullString
		translatorPhone sql.NullString
	)

	view, err := scanJobView(row, &translatorName, &translatorPhone)
	if err != nil {
		return JobView{}, "", "", err
	}

	return view, translatorName.String, translatorPhone.String, nil
}
