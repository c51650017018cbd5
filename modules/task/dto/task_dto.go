package dto

import "time"

type CreateTaskRequest struct {
	ProjectID   *string    `json:"project_id"`
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	ProjectID   *string    `json:"project_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	ClearDue    bool       `json:"clear_due_date"`
}

type TaskResponse struct {
	ID            string     `json:"id"`
	ProjectID     *string    `json:"project_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"due_date"`
	Synced        bool       `json:"synced"`
	AttachmentURL *string    `json:"attachment_url"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type CreateProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type AttachmentResponse struct {
	AttachmentURL string `json:"attachment_url"`
}
