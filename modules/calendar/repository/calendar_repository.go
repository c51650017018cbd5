package repository

import (
	"context"
	"database/sql"
	"time"

	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/modules/calendar/entity"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	// Credential record (columns on users)
	GetCredentials(ctx context.Context, userID uuid.UUID) (*entity.GoogleCredentials, error)
	UpdateTokens(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) error
	ClearCredentials(ctx context.Context, userID uuid.UUID) error
	SetSyncEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error
	SetCalendarID(ctx context.Context, userID uuid.UUID, calendarID *string) error

	// OAuth CSRF state
	SaveOAuthState(ctx context.Context, state string, userID uuid.UUID, expiresAt time.Time) error
	ConsumeOAuthState(ctx context.Context, state string) (*entity.OAuthState, error)
}

type calendarRepository struct {
	db database.IDatabase
}

func NewCalendarRepository(db database.IDatabase) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) GetCredentials(ctx context.Context, userID uuid.UUID) (*entity.GoogleCredentials, error) {
	query := `
		SELECT id,
		       COALESCE(google_access_token, '')  AS google_access_token,
		       COALESCE(google_refresh_token, '') AS google_refresh_token,
		       google_token_expires_at,
		       google_calendar_id,
		       calendar_sync_enabled
		FROM users
		WHERE id = $1
	`
	var creds entity.GoogleCredentials
	if err := r.db.GetContext(ctx, &creds, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		logger.Error("CalendarRepository:GetCredentials:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return &creds, nil
}

func (r *calendarRepository) UpdateTokens(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET google_access_token = $1,
		    google_refresh_token = $2,
		    google_token_expires_at = $3,
		    updated_at = NOW()
		WHERE id = $4
	`
	err := r.db.ExecContext(ctx, query, accessToken, refreshToken, expiresAt, userID)
	if err != nil {
		logger.Error("CalendarRepository:UpdateTokens:Error", "error", err, "user_id", userID)
	}
	return err
}

// ClearCredentials wipes the full credential record and the enabled flag in
// one statement so a half-connected row can never be observed.
func (r *calendarRepository) ClearCredentials(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users
		SET google_access_token = NULL,
		    google_refresh_token = NULL,
		    google_token_expires_at = NULL,
		    google_calendar_id = NULL,
		    calendar_sync_enabled = false,
		    updated_at = NOW()
		WHERE id = $1
	`
	err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Error("CalendarRepository:ClearCredentials:Error", "error", err, "user_id", userID)
	}
	return err
}

func (r *calendarRepository) SetSyncEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error {
	query := `UPDATE users SET calendar_sync_enabled = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, enabled, userID)
	if err != nil {
		logger.Error("CalendarRepository:SetSyncEnabled:Error", "error", err, "user_id", userID)
	}
	return err
}

func (r *calendarRepository) SetCalendarID(ctx context.Context, userID uuid.UUID, calendarID *string) error {
	query := `UPDATE users SET google_calendar_id = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, calendarID, userID)
	if err != nil {
		logger.Error("CalendarRepository:SetCalendarID:Error", "error", err, "user_id", userID)
	}
	return err
}

func (r *calendarRepository) SaveOAuthState(ctx context.Context, state string, userID uuid.UUID, expiresAt time.Time) error {
	query := `
		INSERT INTO oauth_states (id, state, user_id, expires_at, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (state)
		DO UPDATE SET user_id = $2, expires_at = $3, updated_at = NOW()
	`
	err := r.db.ExecContext(ctx, query, state, userID, expiresAt)
	if err != nil {
		logger.Error("CalendarRepository:SaveOAuthState:Error", "error", err, "state", state)
	}
	return err
}

// ConsumeOAuthState returns the unexpired state row and deletes it, making the
// token one-time use. A missing or expired state yields (nil, nil).
func (r *calendarRepository) ConsumeOAuthState(ctx context.Context, state string) (*entity.OAuthState, error) {
	var oauthState entity.OAuthState
	query := `
		SELECT id, state, user_id, expires_at, created_at, updated_at
		FROM oauth_states
		WHERE state = $1 AND expires_at > NOW()
	`
	err := r.db.GetContext(ctx, &oauthState, query, state)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:ConsumeOAuthState:Error", "error", err, "state", state)
		return nil, err
	}

	if err := r.db.ExecContext(ctx, `DELETE FROM oauth_states WHERE state = $1`, state); err != nil {
		logger.Error("CalendarRepository:ConsumeOAuthState:Delete:Error", "error", err, "state", state)
		// Continue even if delete fails
	}
	return &oauthState, nil
}
