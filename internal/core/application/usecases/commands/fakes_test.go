package commands_test

import (
	"context"
	"sync"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/translator"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"
)

// memJobStore is an in-memory job repository that reproduces the optimistic
// version guard of the real storage. Get hands out an independent copy, so
// two handlers racing over the same job each mutate their own aggregate and
// exactly one Update wins.
type memJobStore struct {
	mu   sync.Mutex
	jobs map[string]*job.Job
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: make(map[string]*job.Job)}
}

func cloneJob(j *job.Job) *job.Job {
	return cloneJobAtVersion(j, j.Version())
}

func cloneJobAtVersion(j *job.Job, version int) *job.Job {
	var translatorID *kernel.UUID
	if t := j.Translator(); t != nil {
		id := *t
		translatorID = &id
	}

	clone, err := job.RestoreJob(
		j.ID(),
		j.CustomerID(),
		translatorID,
		j.LanguageFrom(),
		j.LanguageTo(),
		j.Region(),
		j.Status(),
		j.CreatedAt(),
		j.DueAt(),
		j.ExpiresAt(),
		job.Metadata{
			Distance:        j.Distance(),
			TravelTime:      j.TravelTime(),
			SessionTime:     j.SessionTime(),
			AdminComment:    j.AdminComment(),
			Flagged:         j.Flagged(),
			ManuallyHandled: j.ManuallyHandled(),
			ByAdmin:         j.ByAdmin(),
			NoShow:          j.NoShow(),
		},
		version,
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (s *memJobStore) Add(_ context.Context, aggregate *job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[aggregate.ID().String()] = cloneJob(aggregate)
	return nil
}

func (s *memJobStore) Update(_ context.Context, aggregate *job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("jobID", aggregate.ID())
	}
	if current.Version() != aggregate.Version() {
		return errs.NewConflictError("job")
	}

	s.jobs[aggregate.ID().String()] = cloneJobAtVersion(aggregate, aggregate.Version()+1)
	return nil
}

func (s *memJobStore) Get(_ context.Context, id kernel.UUID) (*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.jobs[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("jobID", id)
	}
	return cloneJob(stored), nil
}

func (s *memJobStore) GetAllExpiredPending(_ context.Context, now time.Time) ([]*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*job.Job
	for _, stored := range s.jobs {
		if stored.Status() == job.Pending && !stored.ExpiresAt().After(now) {
			result = append(result, cloneJob(stored))
		}
	}
	return result, nil
}

func (s *memJobStore) GetAllPending(_ context.Context) ([]*job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*job.Job
	for _, stored := range s.jobs {
		if stored.Status() == job.Pending {
			result = append(result, cloneJob(stored))
		}
	}
	return result, nil
}

// memTranslatorStore is an in-memory read model of the translator population.
type memTranslatorStore struct {
	mu          sync.Mutex
	translators map[string]*translator.Translator
}

func newMemTranslatorStore(all ...*translator.Translator) *memTranslatorStore {
	s := &memTranslatorStore{translators: make(map[string]*translator.Translator)}
	for _, t := range all {
		s.translators[t.ID().String()] = t
	}
	return s
}

func (s *memTranslatorStore) Get(_ context.Context, id kernel.UUID) (*translator.Translator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.translators[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("translatorID", id)
	}
	return t, nil
}

func (s *memTranslatorStore) GetAllActive(_ context.Context) ([]*translator.Translator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*translator.Translator, 0, len(s.translators))
	for _, t := range s.translators {
		result = append(result, t)
	}
	return result, nil
}

// memUoW is a pass-through unit of work over the in-memory stores. The
// stores are transaction-free; atomicity in these tests comes from the
// version guard, which is what the handlers rely on in production too.
type memUoW struct {
	jobs        *memJobStore
	translators *memTranslatorStore
}

func (u *memUoW) Begin(context.Context) error    { return nil }
func (u *memUoW) Commit(context.Context) error   { return nil }
func (u *memUoW) Rollback(context.Context) error { return nil }

func (u *memUoW) JobRepository() ports.JobRepository { return u.jobs }

func (u *memUoW) TranslatorRepository() ports.TranslatorRepository { return u.translators }

type memUoWFactory struct {
	jobs        *memJobStore
	translators *memTranslatorStore
}

func (f *memUoWFactory) Create() commands.UoW {
	return &memUoW{jobs: f.jobs, translators: f.translators}
}

type memJobUoWFactory struct {
	jobs *memJobStore
}

func (f *memJobUoWFactory) Create() commands.JobUoW {
	return &memUoW{jobs: f.jobs}
}

// nopGateway satisfies both notification channels and always succeeds.
type nopGateway struct{}

func (nopGateway) SendPush(context.Context, services.JobNotification) error { return nil }
func (nopGateway) SendSMS(context.Context, services.JobNotification) error  { return nil }

// recordingGateway captures every delivered notification.
type recordingGateway struct {
	mu     sync.Mutex
	pushes []services.JobNotification
	smses  []services.JobNotification
}

func (g *recordingGateway) SendPush(_ context.Context, n services.JobNotification) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pushes = append(g.pushes, n)
	return nil
}

func (g *recordingGateway) SendSMS(_ context.Context, n services.JobNotification) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.smses = append(g.smses, n)
	return nil
}

func newTestAnnouncer(translators *memTranslatorStore) commands.JobAnnouncer {
	dispatcher := services.NewNotificationDispatcher(nopGateway{}, nopGateway{}, 0, 0)
	return commands.NewJobAnnouncer(translators, services.NewJobMatcher(), dispatcher)
}

// newStoredPendingJob creates a pending job with the given creation and due
// times and puts it in the store, returning the aggregate's identifier. A
// creation time in the past yields a job whose acceptance window may already
// have closed, which the sweep tests rely on.
func newStoredPendingJob(store *memJobStore, createdAt, dueAt time.Time) kernel.UUID {
	id := kernel.NewUUID()
	j, err := job.NewJob(id, kernel.NewUUID(), "en", "sv", "stockholm", dueAt, createdAt)
	if err != nil {
		panic(err)
	}
	if err := store.Add(context.Background(), j); err != nil {
		panic(err)
	}
	return id
}

// newStockholmTranslator creates a translator able to take the en->sv jobs
// used across these tests.
func newStockholmTranslator(rating float64) *translator.Translator {
	t, err := translator.NewTranslator(
		kernel.NewUUID(),
		"Astrid",
		[]translator.LanguagePair{{From: "en", To: "sv"}},
		"stockholm",
		rating,
		nil,
		true,
		"+46700000001",
	)
	if err != nil {
		panic(err)
	}
	return t
}
