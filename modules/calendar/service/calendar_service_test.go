package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-planner-api/core/config"
	"go-planner-api/core/errors"
	"go-planner-api/modules/calendar/dto"
	"go-planner-api/modules/calendar/entity"
	taskEntity "go-planner-api/modules/task/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
		JWT:    config.JWTConfig{Secret: "test-secret"},
		GoogleAPI: config.GoogleAPIConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:8080/api/v1/public/calendar/callback",
		},
	})
}

type updateTokensCall struct {
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

type stubCalendarRepo struct {
	creds    *entity.GoogleCredentials
	credsErr error

	updateTokensCalls []updateTokensCall
	cleared           bool
	syncEnabledSet    []bool
	savedState        string
	consumeResult     *entity.OAuthState
}

func (r *stubCalendarRepo) GetCredentials(_ context.Context, _ uuid.UUID) (*entity.GoogleCredentials, error) {
	if r.credsErr != nil {
		return nil, r.credsErr
	}
	return r.creds, nil
}

func (r *stubCalendarRepo) UpdateTokens(_ context.Context, _ uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) error {
	r.updateTokensCalls = append(r.updateTokensCalls, updateTokensCall{accessToken, refreshToken, expiresAt})
	return nil
}

func (r *stubCalendarRepo) ClearCredentials(_ context.Context, _ uuid.UUID) error {
	r.cleared = true
	return nil
}

func (r *stubCalendarRepo) SetSyncEnabled(_ context.Context, _ uuid.UUID, enabled bool) error {
	r.syncEnabledSet = append(r.syncEnabledSet, enabled)
	return nil
}

func (r *stubCalendarRepo) SetCalendarID(_ context.Context, _ uuid.UUID, _ *string) error {
	return nil
}

func (r *stubCalendarRepo) SaveOAuthState(_ context.Context, state string, _ uuid.UUID, _ time.Time) error {
	r.savedState = state
	return nil
}

func (r *stubCalendarRepo) ConsumeOAuthState(_ context.Context, _ string) (*entity.OAuthState, error) {
	return r.consumeResult, nil
}

type stubGateway struct {
	listCalendarCalls int
	listEventCalls    int
	createCalls       int
	updateCalls       int
	deleteCalls       int

	createResult *dto.GoogleEvent
	createErr    error
	updateResult *dto.GoogleEvent
	updateErr    error
	deleteErr    error

	lastInput      EventInput
	lastCalendarID string
	lastEventID    string
}

func (g *stubGateway) ListCalendars(_ context.Context, _ *http.Client) ([]dto.GoogleCalendar, error) {
	g.listCalendarCalls++
	return nil, nil
}

func (g *stubGateway) ListEvents(_ context.Context, _ *http.Client, _ string, _, _ *time.Time) ([]dto.GoogleEvent, error) {
	g.listEventCalls++
	return nil, nil
}

func (g *stubGateway) CreateEvent(_ context.Context, _ *http.Client, calendarID string, input EventInput) (*dto.GoogleEvent, error) {
	g.createCalls++
	g.lastCalendarID = calendarID
	g.lastInput = input
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResult, nil
}

func (g *stubGateway) UpdateEvent(_ context.Context, _ *http.Client, calendarID, eventID string, input EventInput) (*dto.GoogleEvent, error) {
	g.updateCalls++
	g.lastCalendarID = calendarID
	g.lastEventID = eventID
	g.lastInput = input
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	return g.updateResult, nil
}

func (g *stubGateway) DeleteEvent(_ context.Context, _ *http.Client, calendarID, eventID string) error {
	g.deleteCalls++
	g.lastCalendarID = calendarID
	g.lastEventID = eventID
	return g.deleteErr
}

func connectedCreds(userID uuid.UUID) *entity.GoogleCredentials {
	expiry := time.Now().Add(time.Hour)
	return &entity.GoogleCredentials{
		UserID:         userID,
		AccessToken:    "access-token",
		RefreshToken:   "refresh-token",
		TokenExpiresAt: &expiry,
		SyncEnabled:    true,
	}
}

func newTestService(repo *stubCalendarRepo, gateway *stubGateway) CalendarService {
	oauth := &OAuthService{
		repo:       repo,
		endpoint:   google.Endpoint,
		tokenURL:   "http://127.0.0.1:1/token",
		revokeURL:  "http://127.0.0.1:1/revoke",
		httpClient: http.DefaultClient,
	}
	return NewCalendarService(repo, oauth, gateway)
}

func taskWithDeadline(userID uuid.UUID, deadline *time.Time, eventID *string) *taskEntity.Task {
	t := &taskEntity.Task{
		UserID:        userID,
		Title:         "Write report",
		DueDate:       deadline,
		GoogleEventID: eventID,
	}
	t.ID = uuid.New()
	return t
}

func TestSyncTaskSkippedWhenSyncDisabled(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	creds := connectedCreds(userID)
	creds.SyncEnabled = false
	repo := &stubCalendarRepo{creds: creds}
	gateway := &stubGateway{}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, nil))

	assert.Nil(t, result)
	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, gateway.updateCalls)
}

func TestSyncTaskSkippedWhenDisconnected(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: &entity.GoogleCredentials{UserID: userID, SyncEnabled: true}}
	gateway := &stubGateway{}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, nil))

	assert.Nil(t, result)
	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, gateway.updateCalls)
}

func TestSyncTaskSkippedWithoutDeadline(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{}
	svc := newTestService(repo, gateway)

	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, nil, nil))

	assert.Nil(t, result)
	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, gateway.updateCalls)
}

func TestSyncTaskCreatesEventOnFirstSync(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{createResult: &dto.GoogleEvent{ID: "ev-1"}}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, nil))

	require.NotNil(t, result)
	assert.Equal(t, "ev-1", *result)
	assert.Equal(t, 1, gateway.createCalls)
	assert.Zero(t, gateway.updateCalls)
	assert.Equal(t, "primary", gateway.lastCalendarID)
	assert.Equal(t, "[Task] Write report", gateway.lastInput.Title)
	assert.True(t, gateway.lastInput.AllDay)
}

func TestSyncTaskUpdatesExistingEvent(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{updateResult: &dto.GoogleEvent{ID: "ev-1"}}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	existing := "ev-1"
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, &existing))

	require.NotNil(t, result)
	assert.Equal(t, "ev-1", *result)
	assert.Equal(t, 1, gateway.updateCalls)
	assert.Zero(t, gateway.createCalls)
	assert.Equal(t, "ev-1", gateway.lastEventID)
}

func TestSyncTaskIdempotentAcrossRepeats(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{updateResult: &dto.GoogleEvent{ID: "ev-1"}}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	existing := "ev-1"
	task := taskWithDeadline(userID, &deadline, &existing)

	first := svc.SyncTask(context.Background(), userID, task)
	second := svc.SyncTask(context.Background(), userID, task)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.Equal(t, 2, gateway.updateCalls)
	assert.Zero(t, gateway.createCalls)
}

func TestSyncTaskRecreatesWhenEventVanished(t *testing.T) {
	setTestConfig(t)
	for _, code := range []errors.ErrorCode{errors.ErrEventNotFound, errors.ErrEventGone} {
		userID := uuid.New()
		repo := &stubCalendarRepo{creds: connectedCreds(userID)}
		gateway := &stubGateway{
			updateErr:    errors.NewAppError(code, "missing", nil),
			createResult: &dto.GoogleEvent{ID: "ev-2"},
		}
		svc := newTestService(repo, gateway)

		deadline := time.Now().Add(48 * time.Hour)
		existing := "ev-1"
		result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, &existing))

		require.NotNil(t, result, "code %s", code)
		assert.Equal(t, "ev-2", *result)
		assert.Equal(t, 1, gateway.updateCalls)
		assert.Equal(t, 1, gateway.createCalls)
	}
}

func TestSyncTaskSwallowsOtherUpdateErrors(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{updateErr: errors.NewAppError(errors.ErrInternalServer, "boom", nil)}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	existing := "ev-1"
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, &existing))

	assert.Nil(t, result)
	assert.Equal(t, 1, gateway.updateCalls)
	assert.Zero(t, gateway.createCalls)
}

func TestSyncTaskSwallowsCreateErrors(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{createErr: errors.NewAppError(errors.ErrInternalServer, "boom", nil)}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, nil))

	assert.Nil(t, result)
	assert.Equal(t, 1, gateway.createCalls)
}

func TestSyncUsesSelectedCalendar(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	creds := connectedCreds(userID)
	calendarID := "work@example.com"
	creds.CalendarID = &calendarID
	repo := &stubCalendarRepo{creds: creds}
	gateway := &stubGateway{createResult: &dto.GoogleEvent{ID: "ev-1"}}
	svc := newTestService(repo, gateway)

	deadline := time.Now().Add(48 * time.Hour)
	result := svc.SyncTask(context.Background(), userID, taskWithDeadline(userID, &deadline, nil))

	require.NotNil(t, result)
	assert.Equal(t, "work@example.com", gateway.lastCalendarID)
}

func TestRemoveEventNoopOnMissingID(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{}
	svc := newTestService(repo, gateway)

	svc.RemoveEvent(context.Background(), userID, nil)
	empty := ""
	svc.RemoveEvent(context.Background(), userID, &empty)

	assert.Zero(t, gateway.deleteCalls)
}

func TestRemoveEventSkippedWhenDisconnected(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: &entity.GoogleCredentials{UserID: userID, SyncEnabled: true}}
	gateway := &stubGateway{}
	svc := newTestService(repo, gateway)

	eventID := "ev-1"
	svc.RemoveEvent(context.Background(), userID, &eventID)

	assert.Zero(t, gateway.deleteCalls)
}

func TestRemoveEventSwallowsDeleteError(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	gateway := &stubGateway{deleteErr: errors.NewAppError(errors.ErrInternalServer, "boom", nil)}
	svc := newTestService(repo, gateway)

	eventID := "ev-1"
	svc.RemoveEvent(context.Background(), userID, &eventID)

	assert.Equal(t, 1, gateway.deleteCalls)
	assert.Equal(t, "ev-1", gateway.lastEventID)
}

func TestUpdateSettingsEmptyCalendarIDResetsToPrimary(t *testing.T) {
	setTestConfig(t)
	userID := uuid.New()
	repo := &stubCalendarRepo{creds: connectedCreds(userID)}
	svc := newTestService(repo, &stubGateway{})

	empty := ""
	err := svc.UpdateSettings(context.Background(), userID, &dto.UpdateSettingsRequest{CalendarID: &empty})
	require.NoError(t, err)
}
