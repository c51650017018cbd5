package dto

import "time"

type CreateAssignmentRequest struct {
	Course   string     `json:"course"`
	Title    string     `json:"title" validate:"required"`
	Notes    *string    `json:"notes"`
	Status   string     `json:"status"`
	Deadline *time.Time `json:"deadline"`
}

type UpdateAssignmentRequest struct {
	Course        *string    `json:"course"`
	Title         *string    `json:"title"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clear_deadline"`
}

type AssignmentResponse struct {
	ID        string     `json:"id"`
	Course    string     `json:"course"`
	Title     string     `json:"title"`
	Notes     *string    `json:"notes"`
	Status    string     `json:"status"`
	Deadline  *time.Time `json:"deadline"`
	Synced    bool       `json:"synced"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}
