package job

import "booking/internal/pkg/errs"

// MetadataPatch is a partial update of the job's bookkeeping fields.
// Nil fields are left unchanged; an empty comment never clears an existing
// one. Applying the same patch twice yields the same job state.
type MetadataPatch struct {
	Distance        *float64
	TravelTime      *float64
	SessionTime     *float64
	AdminComment    *string
	Flagged         *bool
	ManuallyHandled *bool
	ByAdmin         *bool
}

// IsEmpty reports whether the patch carries no updates at all.
func (p MetadataPatch) IsEmpty() bool {
	return p.Distance == nil &&
		p.TravelTime == nil &&
		p.SessionTime == nil &&
		(p.AdminComment == nil || *p.AdminComment == "") &&
		p.Flagged == nil &&
		p.ManuallyHandled == nil &&
		p.ByAdmin == nil
}

// ApplyMetadata merges a partial metadata update into the job.
//
// Flagging a job requires a non-empty admin comment, either carried by the
// same patch or already present on the job. The update is idempotent and
// valid in every lifecycle state: distance and session bookkeeping routinely
// arrives after a job has completed.
func (j *Job) ApplyMetadata(patch MetadataPatch) error {
	if patch.Flagged != nil && *patch.Flagged {
		comment := j.adminComment
		if patch.AdminComment != nil && *patch.AdminComment != "" {
			comment = *patch.AdminComment
		}
		if comment == "" {
			return errs.NewValueIsRequiredError("adminComment is required to flag a job")
		}
	}

	if patch.Distance != nil {
		j.distance = patch.Distance
	}
	if patch.TravelTime != nil {
		j.travelTime = patch.TravelTime
	}
	if patch.SessionTime != nil {
		j.sessionTime = patch.SessionTime
	}
	if patch.AdminComment != nil && *patch.AdminComment != "" {
		j.adminComment = *patch.AdminComment
	}
	if patch.Flagged != nil {
		j.flagged = *patch.Flagged
	}
	if patch.ManuallyHandled != nil {
		j.manuallyHandled = *patch.ManuallyHandled
	}
	if patch.ByAdmin != nil {
		j.byAdmin = *patch.ByAdmin
	}

	return nil
}
