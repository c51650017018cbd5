package entity

import (
	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// Project groups tasks into a board.
type Project struct {
	entity.BaseEntity
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Name   string    `db:"name" json:"name"`
	Slug   string    `db:"slug" json:"slug"`
}

func (Project) TableName() string {
	return "projects"
}
