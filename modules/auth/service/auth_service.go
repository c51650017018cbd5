package service

import (
	"context"

	"go-planner-api/core/cache"
	"go-planner-api/core/constants"
	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/core/utils"
	"go-planner-api/modules/auth/dto"
	"go-planner-api/modules/auth/entity"
	"go-planner-api/modules/auth/repository"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenPairResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	repo  repository.AuthRepository
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepository, cache cache.Cache) AuthService {
	return &authService{
		repo:  repo,
		cache: cache,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user with email already exists", nil)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
		IsActive: true,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return s.issueTokenPair(created)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}
	if !user.IsActive {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user is not active", nil)
	}
	if !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return s.issueTokenPair(user)
}

// RefreshToken rotates a refresh token into a fresh pair. The consumed token
// is blacklisted so it cannot be replayed.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is blacklisted", nil)
	}

	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid refresh token", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token scope", nil)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user not found", err)
	}

	if err := s.cache.AddToTokenBlacklist(ctx, refreshToken); err != nil {
		logger.Error("AuthService:RefreshToken:AddToBlacklist:Error", "error", err, "user_id", user.ID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to revoke old token", err)
	}

	return s.issueTokenPair(user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:AddToBlacklist:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}
	return &dto.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *authService) issueTokenPair(user *entity.User) (*dto.TokenPairResponse, error) {
	email := user.Email
	accessToken, err := utils.GenerateToken(user.ID, &email, constants.ScopeTokenAccess)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, &email, constants.ScopeTokenRefresh)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}
	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
