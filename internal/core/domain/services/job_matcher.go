package services

import (
	"sort"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/translator"
)

// Candidate is a translator scored as eligible for a specific job.
// Candidates are transient values produced per matching run and are never
// persisted.
type Candidate struct {
	Translator *translator.Translator
	Score      float64
}

// JobMatcher is a domain service that produces the ordered set of translators
// eligible for a job.
//
// Eligibility rules:
//   - The translator covers the job's language pair (pairs are directional)
//   - The translator serves the job's region
//   - The translator's declared availability covers the job's due time
//
// Candidates are ordered by score descending; ties are broken by translator
// id ascending so the ordering is deterministic.
type JobMatcher struct{}

// NewJobMatcher creates a new JobMatcher instance.
func NewJobMatcher() JobMatcher {
	return JobMatcher{}
}

// FindCandidates filters and ranks the translator population for the job.
//
// An empty result is not an error: whether "nobody qualifies" is a failure
// is the caller's decision. Invalid translators in the population are
// rejected with an error rather than silently skipped.
func (m JobMatcher) FindCandidates(j *job.Job, translators []*translator.Translator) ([]Candidate, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(translators))
	for _, t := range translators {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if !t.CoversLanguagePair(j.LanguageFrom(), j.LanguageTo()) {
			continue
		}
		if !t.ServesRegion(j.Region()) {
			continue
		}
		if !t.IsAvailableAt(j.DueAt()) {
			continue
		}

		candidates = append(candidates, Candidate{
			Translator: t,
			Score:      t.Rating(),
		})
	}

	sort.Slice(candidates, func(i, k int) bool {
		if candidates[i].Score != candidates[k].Score {
			return candidates[i].Score > candidates[k].Score
		}
		return candidates[i].Translator.ID().String() < candidates[k].Translator.ID().String()
	})

	return candidates, nil
}
