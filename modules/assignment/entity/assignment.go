package entity

import (
	"time"

	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// Assignment statuses
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

// Assignment tracks one piece of academic coursework. GoogleEventID is
// written only from the sync adapter's return value.
type Assignment struct {
	entity.BaseEntity
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Course        string     `db:"course" json:"course"`
	Title         string     `db:"title" json:"title"`
	Notes         *string    `db:"notes" json:"notes"`
	Status        string     `db:"status" json:"status"`
	Deadline      *time.Time `db:"deadline" json:"deadline"`
	GoogleEventID *string    `db:"google_event_id" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}
