package entity

import (
	"time"

	"go-planner-api/core/entity"
)

// User owns both the account identity and the Google Calendar credential
// columns. The calendar module reads and writes the google_* columns through
// its own repository; they are never serialized to clients.
type User struct {
	entity.BaseEntity
	Email    string  `db:"email" json:"email"`
	Username *string `db:"username" json:"username"`
	Password string  `db:"password" json:"-"`
	IsActive bool    `db:"is_active" json:"is_active"`

	GoogleAccessToken    *string    `db:"google_access_token" json:"-"`
	GoogleRefreshToken   *string    `db:"google_refresh_token" json:"-"`
	GoogleTokenExpiresAt *time.Time `db:"google_token_expires_at" json:"-"`
	GoogleCalendarID     *string    `db:"google_calendar_id" json:"-"`
	CalendarSyncEnabled  bool       `db:"calendar_sync_enabled" json:"-"`
}

func (User) TableName() string {
	return "users"
}
