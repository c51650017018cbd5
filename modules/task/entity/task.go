package entity

import (
	"time"

	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// Task statuses
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is one card on a project board. GoogleEventID is written only from the
// sync adapter's return value, never from user input.
type Task struct {
	entity.BaseEntity
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	ProjectID     *uuid.UUID `db:"project_id" json:"project_id"`
	Title         string     `db:"title" json:"title"`
	Description   *string    `db:"description" json:"description"`
	Status        string     `db:"status" json:"status"`
	Priority      string     `db:"priority" json:"priority"`
	DueDate       *time.Time `db:"due_date" json:"due_date"`
	GoogleEventID *string    `db:"google_event_id" json:"-"`
	AttachmentURL *string    `db:"attachment_url" json:"attachment_url"`
}

func (Task) TableName() string {
	return "tasks"
}
