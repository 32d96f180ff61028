// Package http exposes the booking operations over an echo HTTP API.
// Handlers translate wire payloads into commands and queries, and typed
// core errors into status codes. No business rule lives here.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating proxy in front of this service.
const (
	headerUserID = "X-User-Id"
	headerRoleID = "X-Role-Id"
)

// AuthConfig carries the role identifiers that may list all jobs. The values
// are injected from configuration, never read from the environment here.
type AuthConfig struct {
	AdminRoleID      string
	SuperadminRoleID string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	auth AuthConfig

	// Command handlers
	createJobHandler           commands.CreateJobCommandHandler
	acceptJobHandler           commands.AcceptJobCommandHandler
	cancelJobHandler           commands.CancelJobCommandHandler
	startJobHandler            commands.StartJobCommandHandler
	endJobHandler              commands.EndJobCommandHandler
	reopenJobHandler           commands.ReopenJobCommandHandler
	updateJobMetadataHandler   commands.UpdateJobMetadataCommandHandler
	resendNotificationsHandler commands.ResendNotificationsCommandHandler

	// Query handlers
	getJobHandler           queries.GetJobQueryHandler
	getUserJobsHandler      queries.GetUserJobsQueryHandler
	getAllJobsHandler       queries.GetAllJobsQueryHandler
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	auth AuthConfig,
	createJobHandler commands.CreateJobCommandHandler,
	acceptJobHandler commands.AcceptJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	startJobHandler commands.StartJobCommandHandler,
	endJobHandler commands.EndJobCommandHandler,
	reopenJobHandler commands.ReopenJobCommandHandler,
	updateJobMetadataHandler commands.UpdateJobMetadataCommandHandler,
	resendNotificationsHandler commands.ResendNotificationsCommandHandler,
	getJobHandler queries.GetJobQueryHandler,
	getUserJobsHandler queries.GetUserJobsQueryHandler,
	getAllJobsHandler queries.GetAllJobsQueryHandler,
	getPotentialJobsHandler queries.GetPotentialJobsQueryHandler,
) *Server {
	return &Server{
		auth:                       auth,
		createJobHandler:           createJobHandler,
		acceptJobHandler:           acceptJobHandler,
		cancelJobHandler:           cancelJobHandler,
		startJobHandler:            startJobHandler,
		endJobHandler:              endJobHandler,
		reopenJobHandler:           reopenJobHandler,
		updateJobMetadataHandler:   updateJobMetadataHandler,
		resendNotificationsHandler: resendNotificationsHandler,
		getJobHandler:              getJobHandler,
		getUserJobsHandler:         getUserJobsHandler,
		getAllJobsHandler:          getAllJobsHandler,
		getPotentialJobsHandler:    getPotentialJobsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs", s.GetAllJobs)
	api.GET("/jobs/:jobID", s.GetJob)
	api.PUT("/jobs/:jobID", s.UpdateJob)

	api.POST("/jobs/accept", s.AcceptJob)
	api.POST("/jobs/:jobID/accept", s.AcceptJobByID)
	api.POST("/jobs/:jobID/cancel", s.CancelJob)
	api.POST("/jobs/:jobID/start", s.StartJob)
	api.POST("/jobs/:jobID/end", s.EndJob)
	api.POST("/jobs/:jobID/no-show", s.MarkJobNoShow)
	api.POST("/jobs/:jobID/reopen", s.ReopenJob)
	api.POST("/jobs/:jobID/distance", s.UpdateJob)
	api.POST("/jobs/:jobID/resend-push", s.ResendPush)
	api.POST("/jobs/:jobID/resend-sms", s.ResendSMS)

	api.GET("/users/:userID/jobs", s.GetUserJobs)
	api.GET("/translators/potential-jobs", s.GetPotentialJobs)
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func success(ctx echo.Context, code int, data any) error {
	return ctx.JSON(code, envelope{Status: "success", Data: data})
}

func successMessage(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, envelope{Status: "success", Message: message})
}

// failure maps a typed core error onto its status code. Typed errors carry
// sanitized, user-facing messages; anything unclassified is reported as an
// internal failure without detail.
func failure(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(code, envelope{Status: "error", Message: message})
}

func jobIDParam(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("jobID"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("jobID", err)
	}
	return id, nil
}

// actorID resolves the authenticated actor from the identity header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := strings.TrimSpace(ctx.Request().Header.Get(headerUserID))
	if raw == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("user id")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("user id", err)
	}
	return id, nil
}

type jobJSON struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	TranslatorID *string `json:"translator_id"`
	LanguageFrom string  `json:"language_from"`
	LanguageTo   string  `json:"language_to"`
	Region       string  `json:"region"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	DueAt        string  `json:"due_at"`
	ExpiresAt    string  `json:"expires_at"`

	Distance     *float64 `json:"distance,omitempty"`
	TravelTime   *float64 `json:"travel_time,omitempty"`
	SessionTime  *float64 `json:"session_time,omitempty"`
	AdminComment string   `json:"admin_comment,omitempty"`
	Flagged      bool     `json:"flagged"`
	NoShow       bool     `json:"no_show"`
}

func toJobJSON(v queries.JobView) jobJSON {
	out := jobJSON{
		ID:           v.ID.String(),
		CustomerID:   v.CustomerID.String(),
		LanguageFrom: v.LanguageFrom,
		LanguageTo:   v.LanguageTo,
		Region:       v.Region,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		DueAt:        v.DueAt.UTC().Format(time.RFC3339),
		ExpiresAt:    v.ExpiresAt.UTC().Format(time.RFC3339),
		Distance:     v.Distance,
		TravelTime:   v.TravelTime,
		SessionTime:  v.SessionTime,
		AdminComment: v.AdminComment,
		Flagged:      v.Flagged,
		NoShow:       v.NoShow,
	}
	if v.TranslatorID != nil {
		id := v.TranslatorID.String()
		out.TranslatorID = &id
	}
	return out
}

func toJobJSONList(views []queries.JobView) []jobJSON {
	out := make([]jobJSON, len(views))
	for i, v := range views {
		out[i] = toJobJSON(v)
	}
	return out
}

type createJobRequest struct {
	CustomerID   string `json:"customer_id"`
	LanguageFrom string `json:"language_from"`
	LanguageTo   string `json:"language_to"`
	Region       string `json:"region"`
	DueAt        string `json:"due_at"`
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req createJobRequest
	if err := ctx.Bind(&req); err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("due_at", err))
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID, customerID, req.LanguageFrom, req.LanguageTo, req.Region, dueAt,
	)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusCreated, map[string]string{"id": jobID.String()})
}

// GetAllJobs handles GET /api/v1/jobs. Restricted to the configured admin
// and superadmin roles.
func (s *Server) GetAllJobs(ctx echo.Context) error {
	role := strings.TrimSpace(ctx.Request().Header.Get(headerRoleID))
	if role == "" || (role != s.auth.AdminRoleID && role != s.auth.SuperadminRoleID) {
		return failure(ctx, errs.NewUnauthorizedError("role"))
	}

	query, err := queries.NewGetAllJobsQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("region"),
		0,
	)
	if err != nil {
		return failure(ctx, err)
	}

	views, err := s.getAllJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusOK, toJobJSONList(views))
}

// GetJob handles GET /api/v1/jobs/:jobID.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return failure(ctx, err)
	}

	resp, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	data := map[string]any{"job": toJobJSON(resp.Job)}
	if resp.TranslatorName != "" {
		data["translator"] = map[string]string{
			"name":  resp.TranslatorName,
			"phone": resp.TranslatorPhone,
		}
	}

	return success(ctx, http.StatusOK, data)
}

// updateJobRequest is the distance feed payload. The feed predates this
// service and sends booleans as the strings "true"/"false"; unknown fields
// such as CSRF tokens are ignored by binding.
type updateJobRequest struct {
	Distance        *float64 `json:"distance"`
	TravelTime      *float64 `json:"travel_time"`
	SessionTime     *float64 `json:"session_time"`
	AdminComment    *string  `json:"admin_comment"`
	Flagged         string   `json:"flagged"`
	ManuallyHandled string   `json:"manually_handled"`
	ByAdmin         string   `json:"by_admin"`
}

// parseWireBool normalizes a wire boolean. Empty means "no update".
func parseWireBool(field, raw string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	default:
		return nil, errs.NewValueIsInvalidError(field)
	}
}

// UpdateJob handles PUT /api/v1/jobs/:jobID and the distance feed POST.
// Both apply a partial metadata update; absent fields stay untouched.
func (s *Server) UpdateJob(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	var req updateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	flagged, err := parseWireBool("flagged", req.Flagged)
	if err != nil {
		return failure(ctx, err)
	}
	manuallyHandled, err := parseWireBool("manually_handled", req.ManuallyHandled)
	if err != nil {
		return failure(ctx, err)
	}
	byAdmin, err := parseWireBool("by_admin", req.ByAdmin)
	if err != nil {
		return failure(ctx, err)
	}

	patch := job.MetadataPatch{
		Distance:        req.Distance,
		TravelTime:      req.TravelTime,
		SessionTime:     req.SessionTime,
		AdminComment:    req.AdminComment,
		Flagged:         flagged,
		ManuallyHandled: manuallyHandled,
		ByAdmin:         byAdmin,
	}

	cmd, err := commands.NewUpdateJobMetadataCommand(jobID, patch)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.updateJobMetadataHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, "job updated")
}

type acceptJobRequest struct {
	JobID string `json:"job_id"`
}

// AcceptJob handles POST /api/v1/jobs/accept, the variant that carries the
// job id in the body.
func (s *Server) AcceptJob(ctx echo.Context) error {
	var req acceptJobRequest
	if err := ctx.Bind(&req); err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("job_id", err))
	}

	return s.accept(ctx, jobID)
}

// AcceptJobByID handles POST /api/v1/jobs/:jobID/accept.
func (s *Server) AcceptJobByID(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	return s.accept(ctx, jobID)
}

func (s *Server) accept(ctx echo.Context, jobID kernel.UUID) error {
	translatorID, err := actorID(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	cmd, err := commands.NewAcceptJobCommand(jobID, translatorID)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.acceptJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, "job accepted")
}

// CancelJob handles POST /api/v1/jobs/:jobID/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	cmd, err := commands.NewCancelJobCommand(jobID)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.cancelJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, "job cancelled")
}

// StartJob handles POST /api/v1/jobs/:jobID/start.
func (s *Server) StartJob(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	cmd, err := commands.NewStartJobCommand(jobID)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.startJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, "job started")
}

// EndJob handles POST /api/v1/jobs/:jobID/end.
func (s *Server) EndJob(ctx echo.Context) error {
	return s.end(ctx, false, "job ended")
}

// MarkJobNoShow handles POST /api/v1/jobs/:jobID/no-show. The session is
// closed out with the customer recorded as absent.
func (s *Server) MarkJobNoShow(ctx echo.Context) error {
	return s.end(ctx, true, "job marked as no-show")
}

func (s *Server) end(ctx echo.Context, noShow bool, message string) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	cmd, err := commands.NewEndJobCommand(jobID, noShow)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.endJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, message)
}

type reopenJobRequest struct {
	DueAt string `json:"due_at"`
}

// ReopenJob handles POST /api/v1/jobs/:jobID/reopen. An optional due_at in
// the body moves the session; without it the original due time is kept.
func (s *Server) ReopenJob(ctx echo.Context) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	var req reopenJobRequest
	if err := ctx.Bind(&req); err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	var newDueAt *time.Time
	if strings.TrimSpace(req.DueAt) != "" {
		parsed, parseErr := time.Parse(time.RFC3339, req.DueAt)
		if parseErr != nil {
			return failure(ctx, errs.NewValueIsInvalidErrorWithCause("due_at", parseErr))
		}
		newDueAt = &parsed
	}

	cmd, err := commands.NewReopenJobCommand(jobID, newDueAt)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.reopenJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return successMessage(ctx, http.StatusOK, "job reopened")
}

// ResendPush handles POST /api/v1/jobs/:jobID/resend-push.
func (s *Server) ResendPush(ctx echo.Context) error {
	return s.resend(ctx, services.FilterPush)
}

// ResendSMS handles POST /api/v1/jobs/:jobID/resend-sms.
func (s *Server) ResendSMS(ctx echo.Context) error {
	return s.resend(ctx, services.FilterSMSOnly)
}

func (s *Server) resend(ctx echo.Context, filter services.ChannelFilter) error {
	jobID, err := jobIDParam(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	cmd, err := commands.NewResendNotificationsCommand(jobID, filter)
	if err != nil {
		return failure(ctx, err)
	}

	result, err := s.resendNotificationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusOK, map[string]int{
		"push_sent":   result.PushSent,
		"push_failed": result.PushFailed,
		"sms_sent":    result.SMSSent,
		"sms_failed":  result.SMSFailed,
	})
}

// GetUserJobs handles GET /api/v1/users/:userID/jobs. Returns the jobs the
// user participates in, split into active and history.
func (s *Server) GetUserJobs(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return failure(ctx, errs.NewValueIsInvalidErrorWithCause("userID", err))
	}

	query, err := queries.NewGetUserJobsQuery(userID)
	if err != nil {
		return failure(ctx, err)
	}

	resp, err := s.getUserJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusOK, map[string]any{
		"active":  toJobJSONList(resp.Active),
		"history": toJobJSONList(resp.History),
	})
}

// GetPotentialJobs handles GET /api/v1/translators/potential-jobs. The
// acting translator comes from the identity header.
func (s *Server) GetPotentialJobs(ctx echo.Context) error {
	translatorID, err := actorID(ctx)
	if err != nil {
		return failure(ctx, err)
	}

	query, err := queries.NewGetPotentialJobsQuery(translatorID)
	if err != nil {
		return failure(ctx, err)
	}

	views, err := s.getPotentialJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	return success(ctx, http.StatusOK, toJobJSONList(views))
}
