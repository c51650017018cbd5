package repository

import (
	"context"
	"database/sql"

	"go-planner-api/core/database"
	"go-planner-api/core/logger"
	"go-planner-api/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepository interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

type authRepository struct {
	db database.IDatabase
}

func NewAuthRepository(db database.IDatabase) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, username, password, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Username, user.Password, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		logger.Error("AuthRepository:CreateUser:Error", "error", err, "email", user.Email)
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns (nil, nil) when no user matches.
func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, username, password, is_active,
		       google_access_token, google_refresh_token, google_token_expires_at,
		       google_calendar_id, calendar_sync_enabled,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `
		SELECT id, email, username, password, is_active,
		       google_access_token, google_refresh_token, google_token_expires_at,
		       google_calendar_id, calendar_sync_enabled,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		logger.Error("AuthRepository:GetUserByID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return &user, nil
}
