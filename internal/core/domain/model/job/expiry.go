package job

import (
	"fmt"
	"time"

	"booking/internal/pkg/errs"
)

// Tier boundaries for the expiration calculation.
const (
	shortNoticeWindow = 90 * time.Minute
	sameDayWindow     = 24 * time.Hour
	longNoticeWindow  = 72 * time.Hour
	longNoticeLead    = 48 * time.Hour
)

// WillExpireAt computes the instant after which an unaccepted job is
// abandoned, tiered by how far in advance the booking was made.
//
// With gap = dueAt - createdAt:
//   - gap <= 90 minutes: the job expires at its due time
//   - gap <= 24 hours:   90 minutes after creation
//   - gap <= 72 hours:   a third of the gap after creation
//   - gap > 72 hours:    48 hours before the due time
//
// The function is pure. The only failure mode is a non-positive gap,
// reported as a validation error.
func WillExpireAt(dueAt, createdAt time.Time) (time.Time, error) {
	gap := dueAt.Sub(createdAt)
	if gap <= 0 {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"dueAt",
			fmt.Errorf("due time %s is not after creation time %s", dueAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}

	switch {
	case gap <= shortNoticeWindow:
		return dueAt, nil
	case gap <= sameDayWindow:
		return createdAt.Add(shortNoticeWindow), nil
	case gap <= longNoticeWindow:
		return createdAt.Add(gap / 3), nil
	default:
		return dueAt.Add(-longNoticeLead), nil
	}
}
