package commands

import (
	"context"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// JobAnnouncer recomputes the candidate set for a job and fans the
// announcement out over the notification channels. It is shared by the
// create, reopen and resend handlers.
//
// The announcer always works on a snapshot of the job taken after the
// owning transaction committed; it never holds a job-level lock while the
// sends are in flight.
type JobAnnouncer struct {
	translators ports.TranslatorRepository
	matcher     services.JobMatcher
	dispatcher  services.NotificationDispatcher
}

// NewJobAnnouncer creates an announcer over the given translator population
// source and dispatcher.
func NewJobAnnouncer(
	translators ports.TranslatorRepository,
	matcher services.JobMatcher,
	dispatcher services.NotificationDispatcher,
) JobAnnouncer {
	return JobAnnouncer{
		translators: translators,
		matcher:     matcher,
		dispatcher:  dispatcher,
	}
}

// Announce matches the job against the active translator population and
// broadcasts over the selected channels. requireRecipients follows the
// dispatcher's contract: set it for explicit resends, leave it unset for
// the best-effort announcement after create and reopen.
func (a JobAnnouncer) Announce(
	ctx context.Context,
	j *job.Job,
	filter services.ChannelFilter,
	requireRecipients bool,
) (services.DispatchResult, error) {
	population, err := a.translators.GetAllActive(ctx)
	if err != nil {
		return services.DispatchResult{}, err
	}

	candidates, err := a.matcher.FindCandidates(j, population)
	if err != nil {
		return services.DispatchResult{}, err
	}

	return a.dispatcher.Broadcast(ctx, j, candidates, filter, requireRecipients)
}
