package dto

import "time"

type CreateJobRequest struct {
	Company  string     `json:"company" validate:"required"`
	Position string     `json:"position" validate:"required"`
	Notes    *string    `json:"notes"`
	Stage    string     `json:"stage"`
	DueDate  *time.Time `json:"due_date"`
}

type UpdateJobRequest struct {
	Company  *string    `json:"company"`
	Position *string    `json:"position"`
	Notes    *string    `json:"notes"`
	Stage    *string    `json:"stage"`
	DueDate  *time.Time `json:"due_date"`
	ClearDue bool       `json:"clear_due_date"`
}

type JobResponse struct {
	ID        string     `json:"id"`
	Company   string     `json:"company"`
	Position  string     `json:"position"`
	Notes     *string    `json:"notes"`
	Stage     string     `json:"stage"`
	DueDate   *time.Time `json:"due_date"`
	Synced    bool       `json:"synced"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}
