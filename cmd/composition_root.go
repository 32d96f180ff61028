package cmd

import (
	"fmt"
	"strconv"
	"time"

	httpadapter "booking/internal/adapters/in/http"
	"booking/internal/adapters/out/notify"
	"booking/internal/adapters/out/postgres"
	"booking/internal/adapters/out/postgres/translatorrepo"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	translators ports.TranslatorRepository
	announcer   commands.JobAnnouncer
	dispatcher  services.NotificationDispatcher
}

// NewCompositionRoot wires the adapters behind the use cases. The returned
// root hands out fresh handlers; the notification gateways and the gorm
// connection are shared.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	pushClient, err := notify.NewPushClient(notify.PushConfig{
		EndpointURL: configs.PushGatewayURL,
		AuthToken:   configs.PushGatewayToken,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("configure push gateway: %w", err)
	}

	smsClient, err := notify.NewSMSClient(notify.SMSConfig{
		EndpointURL: configs.SMSGatewayURL,
		AuthToken:   configs.SMSGatewayToken,
		SenderName:  configs.SMSSenderName,
	})
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("configure sms gateway: %w", err)
	}

	maxParallel, _ := strconv.Atoi(configs.NotifyMaxParallel)
	sendTimeout, _ := time.ParseDuration(configs.NotifySendTimeout)

	dispatcher := services.NewNotificationDispatcher(pushClient, smsClient, maxParallel, sendTimeout)
	translators := translatorrepo.NewGormTranslatorRepository(gormDB)
	announcer := commands.NewJobAnnouncer(translators, services.NewJobMatcher(), dispatcher)

	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		translators: translators,
		announcer:   announcer,
		dispatcher:  dispatcher,
	}, nil
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.announcer)
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory(), c.translators, c.dispatcher)
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateEndJobCommandHandler() commands.EndJobCommandHandler {
	return commands.NewEndJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateReopenJobCommandHandler() commands.ReopenJobCommandHandler {
	return commands.NewReopenJobCommandHandler(c.jobUoWFactory(), c.announcer)
}

func (c *CompositionRoot) CreateUpdateJobMetadataCommandHandler() commands.UpdateJobMetadataCommandHandler {
	return commands.NewUpdateJobMetadataCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateResendNotificationsCommandHandler() commands.ResendNotificationsCommandHandler {
	return commands.NewResendNotificationsCommandHandler(c.jobUoWFactory(), c.announcer)
}

func (c *CompositionRoot) CreateSweepExpirationsCommandHandler() commands.SweepExpirationsCommandHandler {
	return commands.NewSweepExpirationsCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserJobsQueryHandler() queries.GetUserJobsQueryHandler {
	return queries.NewGetUserJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPotentialJobsQueryHandler() queries.GetPotentialJobsQueryHandler {
	return queries.NewGetPotentialJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.AuthConfig{
			AdminRoleID:      c.configs.AdminRoleID,
			SuperadminRoleID: c.configs.SuperadminRoleID,
		},
		c.CreateCreateJobCommandHandler(),
		c.CreateAcceptJobCommandHandler(),
		c.CreateCancelJobCommandHandler(),
		c.CreateStartJobCommandHandler(),
		c.CreateEndJobCommandHandler(),
		c.CreateReopenJobCommandHandler(),
		c.CreateUpdateJobMetadataCommandHandler(),
		c.CreateResendNotificationsCommandHandler(),
		c.CreateGetJobQueryHandler(),
		c.CreateGetUserJobsQueryHandler(),
		c.CreateGetAllJobsQueryHandler(),
		c.CreateGetPotentialJobsQueryHandler(),
	)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
