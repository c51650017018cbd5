package entity

import (
	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// Notification types
const (
	TypeDeadlineReminder = "deadline_reminder"
	TypeSystem           = "system"
)

type Notification struct {
	entity.BaseEntity
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	IsRead  bool      `db:"is_read" json:"is_read"`
}

func (Notification) TableName() string {
	return "notifications"
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
