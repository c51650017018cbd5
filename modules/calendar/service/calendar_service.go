package service

import (
	"context"
	"time"

	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	assignmentEntity "go-planner-api/modules/assignment/entity"
	"go-planner-api/modules/calendar/dto"
	"go-planner-api/modules/calendar/mapper"
	"go-planner-api/modules/calendar/repository"
	jobEntity "go-planner-api/modules/job/entity"
	taskEntity "go-planner-api/modules/task/entity"

	"github.com/google/uuid"
)

// CalendarService is the synchronization engine's inbound surface: the OAuth
// connect flow, per-user settings, the calendar-view read surface and the
// per-kind sync adapters the domain services call after each mutation.
//
// Mirroring is strictly best-effort. The domain store is authoritative; a
// failed sync returns nil and never propagates to the caller.
type CalendarService interface {
	// Connection lifecycle
	GetAuthorizationURL(ctx context.Context, userID uuid.UUID) (string, error)
	HandleCallback(ctx context.Context, code, state string) error
	Disconnect(ctx context.Context, userID uuid.UUID) error
	GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) error

	// Read surface
	ListCalendars(ctx context.Context, userID uuid.UUID) ([]dto.CalendarOption, error)
	GetEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]dto.FormattedEvent, error)

	// Sync adapters; the returned id (or nil) is persisted by the caller
	SyncTask(ctx context.Context, userID uuid.UUID, t *taskEntity.Task) *string
	SyncAssignment(ctx context.Context, userID uuid.UUID, a *assignmentEntity.Assignment) *string
	SyncJob(ctx context.Context, userID uuid.UUID, j *jobEntity.JobApplication) *string
	RemoveEvent(ctx context.Context, userID uuid.UUID, eventID *string)
}

type calendarService struct {
	repo    repository.CalendarRepository
	oauth   *OAuthService
	gateway EventGateway
}

func NewCalendarService(repo repository.CalendarRepository, oauth *OAuthService, gateway EventGateway) CalendarService {
	return &calendarService{
		repo:    repo,
		oauth:   oauth,
		gateway: gateway,
	}
}

func (s *calendarService) GetAuthorizationURL(ctx context.Context, userID uuid.UUID) (string, error) {
	url, appErr := s.oauth.GetAuthorizationURL(ctx, userID)
	if appErr != nil {
		return "", appErr
	}
	return url, nil
}

// HandleCallback finishes the interactive consent flow: validates the state,
// exchanges the code, persists the token pair and enables sync. Failures here
// are user-visible, unlike everywhere else in the engine.
func (s *calendarService) HandleCallback(ctx context.Context, code, state string) error {
	oauthState, err := s.repo.ConsumeOAuthState(ctx, state)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to validate state token", err)
	}
	if oauthState == nil {
		return errors.NewAppError(errors.ErrUnauthorized, "invalid or expired state token", nil)
	}

	result, appErr := s.oauth.ExchangeCode(ctx, code)
	if appErr != nil {
		return appErr
	}

	creds, err := s.repo.GetCredentials(ctx, oauthState.UserID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load credentials", err)
	}

	if err := s.oauth.PersistCredentials(ctx, creds, result); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to save Google tokens", err)
	}

	if err := s.repo.SetSyncEnabled(ctx, oauthState.UserID, true); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to enable sync", err)
	}

	logger.Info("CalendarService:HandleCallback:Connected",
		"user_id", oauthState.UserID,
		"has_refresh_token", result.RefreshToken != "")
	return nil
}

func (s *calendarService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	return s.oauth.Disconnect(ctx, userID)
}

func (s *calendarService) GetConnectionStatus(ctx context.Context, userID uuid.UUID) (*dto.ConnectionStatusResponse, error) {
	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}
	return &dto.ConnectionStatusResponse{
		Connected:   creds.Connected(),
		SyncEnabled: creds.SyncEnabled,
		CalendarID:  creds.CalendarID,
	}, nil
}

func (s *calendarService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) error {
	if req.SyncEnabled != nil {
		if err := s.repo.SetSyncEnabled(ctx, userID, *req.SyncEnabled); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to update sync flag", err)
		}
	}
	if req.CalendarID != nil {
		calendarID := req.CalendarID
		if *calendarID == "" {
			calendarID = nil
		}
		if err := s.repo.SetCalendarID(ctx, userID, calendarID); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to update calendar selection", err)
		}
	}
	return nil
}

func (s *calendarService) ListCalendars(ctx context.Context, userID uuid.UUID) ([]dto.CalendarOption, error) {
	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}

	client, appErr := s.oauth.AuthenticatedClient(ctx, creds)
	if appErr != nil {
		return nil, appErr
	}

	calendars, err := s.gateway.ListCalendars(ctx, client)
	if err != nil {
		return nil, err
	}
	return mapper.ToCalendarOptions(calendars), nil
}

func (s *calendarService) GetEvents(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]dto.FormattedEvent, error) {
	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}

	client, appErr := s.oauth.AuthenticatedClient(ctx, creds)
	if appErr != nil {
		return nil, appErr
	}

	events, err := s.gateway.ListEvents(ctx, client, creds.TargetCalendarID(), from, to)
	if err != nil {
		return nil, err
	}
	return mapper.ToFormattedEvents(events), nil
}

func (s *calendarService) SyncTask(ctx context.Context, userID uuid.UUID, t *taskEntity.Task) *string {
	return s.syncItem(ctx, userID, mapper.FromTask(t), t.GoogleEventID)
}

func (s *calendarService) SyncAssignment(ctx context.Context, userID uuid.UUID, a *assignmentEntity.Assignment) *string {
	return s.syncItem(ctx, userID, mapper.FromAssignment(a), a.GoogleEventID)
}

func (s *calendarService) SyncJob(ctx context.Context, userID uuid.UUID, j *jobEntity.JobApplication) *string {
	return s.syncItem(ctx, userID, mapper.FromJob(j), j.GoogleEventID)
}

// syncItem performs create-or-update-with-recovery for one domain item.
// nil means "skipped or failed"; the caller keeps whatever id it already has.
// A deadline cleared after a previous sync leaves the stale event upstream;
// sync is simply skipped.
func (s *calendarService) syncItem(ctx context.Context, userID uuid.UUID, item mapper.SyncItem, existingEventID *string) *string {
	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		logger.Error("CalendarService:syncItem:GetCredentials:Error", "error", err, "user_id", userID)
		return nil
	}
	if !creds.SyncEnabled || !creds.Connected() {
		return nil
	}
	if item.Deadline == nil {
		return nil
	}

	client, appErr := s.oauth.AuthenticatedClient(ctx, creds)
	if appErr != nil {
		logger.Error("CalendarService:syncItem:AuthenticatedClient:Error", "error", appErr, "user_id", userID)
		return nil
	}

	input := EventInput{
		Title:       item.EventTitle(),
		Description: item.Description,
		Start:       *item.Deadline,
		AllDay:      true,
	}
	calendarID := creds.TargetCalendarID()

	if existingEventID != nil && *existingEventID != "" {
		updated, err := s.gateway.UpdateEvent(ctx, client, calendarID, *existingEventID, input)
		if err == nil {
			return &updated.ID
		}
		if !errors.HasCode(err, errors.ErrEventNotFound) && !errors.HasCode(err, errors.ErrEventGone) {
			logger.Error("CalendarService:syncItem:UpdateEvent:Error", "error", err, "user_id", userID, "event_id", *existingEventID)
			return nil
		}
		// The upstream event drifted out of existence (deleted in the
		// calendar UI, or the target calendar changed); recreate it.
		logger.Info("CalendarService:syncItem:Recreating", "user_id", userID, "event_id", *existingEventID)
	}

	created, err := s.gateway.CreateEvent(ctx, client, calendarID, input)
	if err != nil {
		logger.Error("CalendarService:syncItem:CreateEvent:Error", "error", err, "user_id", userID)
		return nil
	}
	return &created.ID
}

// RemoveEvent deletes the mirrored event on a best-effort basis. It runs on
// the domain item's delete path, after the local record is already gone, so
// every failure is swallowed.
func (s *calendarService) RemoveEvent(ctx context.Context, userID uuid.UUID, eventID *string) {
	if eventID == nil || *eventID == "" {
		return
	}

	creds, err := s.repo.GetCredentials(ctx, userID)
	if err != nil {
		logger.Error("CalendarService:RemoveEvent:GetCredentials:Error", "error", err, "user_id", userID)
		return
	}
	if !creds.SyncEnabled || !creds.Connected() {
		return
	}

	client, appErr := s.oauth.AuthenticatedClient(ctx, creds)
	if appErr != nil {
		logger.Error("CalendarService:RemoveEvent:AuthenticatedClient:Error", "error", appErr, "user_id", userID)
		return
	}

	if err := s.gateway.DeleteEvent(ctx, client, creds.TargetCalendarID(), *eventID); err != nil {
		logger.Error("CalendarService:RemoveEvent:DeleteEvent:Error", "error", err, "user_id", userID, "event_id", *eventID)
	}
}
