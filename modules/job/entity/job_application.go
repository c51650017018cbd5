package entity

import (
	"time"

	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// Application stages
const (
	StageWishlist  = "wishlist"
	StageApplied   = "applied"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageRejected  = "rejected"
)

// JobApplication tracks one application in the pipeline. DueDate carries the
// next actionable deadline (application cutoff, interview prep, offer reply).
type JobApplication struct {
	entity.BaseEntity
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Company       string     `db:"company" json:"company"`
	Position      string     `db:"position" json:"position"`
	Notes         *string    `db:"notes" json:"notes"`
	Stage         string     `db:"stage" json:"stage"`
	DueDate       *time.Time `db:"due_date" json:"due_date"`
	GoogleEventID *string    `db:"google_event_id" json:"-"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
