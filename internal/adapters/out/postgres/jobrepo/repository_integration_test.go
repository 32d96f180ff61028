package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// JobRepositoryIntegrationTestSuite provides integration tests for JobRepository
// using PostgreSQL containers to verify database persistence behavior.
type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *jobrepo.GormJobRepository
	tracker    *MockAggregateTracker
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&jobrepo.JobDTO{}))
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE jobs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) newPendingJob(createdAt, dueAt time.Time) *job.Job {
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"en", "sv", "stockholm",
		dueAt, createdAt,
	)
	suite.Require().NoError(err)
	return j
}

func (suite *JobRepositoryIntegrationTestSuite) addJob(j *job.Job) {
	suite.tracker.On("TrackAggregate", j.ID(), j).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), j))
}

func (suite *JobRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	now := time.Now().UTC()
	j := suite.newPendingJob(now, now.Add(2*time.Hour))

	suite.addJob(j)

	var count int64
	suite.Require().NoError(suite.db.Model(&jobrepo.JobDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_ExistingJob_RoundTripsAllFields() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	j := suite.newPendingJob(now, now.Add(2*time.Hour))
	suite.addJob(j)

	retrieved, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(j.ID()))
	suite.True(retrieved.CustomerID().IsEqual(j.CustomerID()))
	suite.Nil(retrieved.Translator())
	suite.Equal("en", retrieved.LanguageFrom())
	suite.Equal("sv", retrieved.LanguageTo())
	suite.Equal("stockholm", retrieved.Region())
	suite.Equal(job.Pending, retrieved.Status())
	suite.True(retrieved.DueAt().Equal(j.DueAt()))
	suite.True(retrieved.ExpiresAt().Equal(j.ExpiresAt()))
	suite.Equal(0, retrieved.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()
	now := time.Now().UTC()
	j := suite.newPendingJob(now, now.Add(2*time.Hour))
	suite.addJob(j)

	translatorID := kernel.NewUUID()
	suite.Require().NoError(j.Assign(translatorID))

	suite.tracker.On("TrackAggregate", j.ID(), j).Once()
	suite.Require().NoError(suite.repository.Update(ctx, j))

	retrieved, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Translator())
	suite.True(retrieved.Translator().IsEqual(translatorID))
	suite.Equal(1, retrieved.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	now := time.Now().UTC()
	j := suite.newPendingJob(now, now.Add(2*time.Hour))
	suite.addJob(j)

	// two readers load the same version
	first, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Assign(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Assign(kernel.NewUUID()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	// the first writer's assignment stands
	retrieved, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Translator().IsEqual(*first.Translator()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_NonExistentJob_ReturnsNotFoundError() {
	now := time.Now().UTC()
	j := suite.newPendingJob(now, now.Add(2*time.Hour))

	err := suite.repository.Update(context.Background(), j)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_ClearsTranslatorOnReopen() {
	ctx := context.Background()
	now := time.Now().UTC()
	j := suite.newPendingJob(now, now.Add(2*time.Hour))
	suite.addJob(j)

	suite.Require().NoError(j.Assign(kernel.NewUUID()))
	suite.tracker.On("TrackAggregate", j.ID(), j).Once()
	suite.Require().NoError(suite.repository.Update(ctx, j))

	assigned, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(assigned.Cancel())
	suite.tracker.On("TrackAggregate", assigned.ID(), assigned).Once()
	suite.Require().NoError(suite.repository.Update(ctx, assigned))

	cancelled, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(cancelled.Reopen(nil, now))
	suite.tracker.On("TrackAggregate", cancelled.ID(), cancelled).Once()
	suite.Require().NoError(suite.repository.Update(ctx, cancelled))

	reopened, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Pending, reopened.Status())
	suite.Nil(reopened.Translator(), "reopen must null the translator column")
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllExpiredPending_FiltersByWindow() {
	ctx := context.Background()
	now := time.Now().UTC()

	// acceptance window closed: long-notice job past its lead time
	overdue := suite.newPendingJob(now.Add(-100*time.Hour), now.Add(38*time.Hour))
	suite.addJob(overdue)

	// window still open
	fresh := suite.newPendingJob(now, now.Add(time.Hour))
	suite.addJob(fresh)

	expired, err := suite.repository.GetAllExpiredPending(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.True(expired[0].ID().IsEqual(overdue.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllPending_OrderedByDueTime() {
	ctx := context.Background()
	now := time.Now().UTC()

	later := suite.newPendingJob(now, now.Add(3*time.Hour))
	suite.addJob(later)
	sooner := suite.newPendingJob(now, now.Add(time.Hour))
	suite.addJob(sooner)

	pending, err := suite.repository.GetAllPending(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID().IsEqual(sooner.ID()))
	suite.True(pending[1].ID().IsEqual(later.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

func TestJobRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
