package dto

import "time"

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalItems    int                    `json:"total_items"`
	PageNumber    int                    `json:"page_number"`
	PageSize      int                    `json:"page_size"`
	UnreadCount   int                    `json:"unread_count"`
}

type MarkReadRequest struct {
	IDs []string `json:"ids"`
}
