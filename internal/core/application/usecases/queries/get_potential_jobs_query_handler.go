package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPotentialJobsQueryHandler retrieves the pending jobs a translator can
// still accept.
//
// The region filter runs in SQL; the language pair filter runs here because
// the pairs live in a jsonb document on the translator row.
type GetPotentialJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetPotentialJobsQueryHandler creates a handler for potential-job
// queries. Requires a GORM database connection for query execution.
func NewGetPotentialJobsQueryHandler(db *gorm.DB) GetPotentialJobsQueryHandler {
	return GetPotentialJobsQueryHandler{db: db}
}

// Handle executes the query. Returns a not-found error for an unknown
// translator; an unknown language pair simply yields an empty list.
func (h GetPotentialJobsQueryHandler) Handle(
	ctx context.Context,
	query GetPotentialJobsQuery,
) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		region   string
		rawPairs []byte
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT region, language_pairs
		FROM translators
		WHERE id = ? AND active
	`, query.TranslatorID().Bytes()).Row()
	if err := row.Scan(&region, &rawPairs); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("translator", query.TranslatorID().String())
		}
		return nil, err
	}

	var pairs []struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.Unmarshal(rawPairs, &pairs); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobViewColumns+`
		FROM jobs
		WHERE jobs.status = 'pending'
		  AND jobs.region = ?
		  AND jobs.expires_at > ?
		ORDER BY jobs.due_at
	`, region, time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobView, 0)
	for rows.Next() {
		view, scanErr := scanJobView(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		for _, pair := range pairs {
			if pair.From == view.LanguageFrom && pair.To == view.LanguageTo {
				jobs = append(jobs, view)
				break
			}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
