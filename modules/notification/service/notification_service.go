package service

import (
	"context"

	"go-planner-api/core/errors"
	"go-planner-api/core/params"
	"go-planner-api/modules/notification/entity"
	"go-planner-api/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService interface {
	Create(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, int, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, notification *entity.Notification) error {
	if err := s.repo.Create(ctx, notification); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to create notification", err)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, int, error) {
	page, err := s.repo.GetByUserID(ctx, userID, params)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrInternalServer, "failed to list notifications", err)
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrInternalServer, "failed to count unread notifications", err)
	}
	return page, unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications read", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark notifications read", err)
	}
	return nil
}
