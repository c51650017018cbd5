package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoogleCredentials is the per-user Google Calendar credential record.
// It lives on the users table and is hydrated into this explicit value so the
// token lifecycle code never reads ambient state.
//
// Invariant: AccessToken and RefreshToken are either both set or both empty.
// Any path that would leave one of them dangling must clear both instead.
type GoogleCredentials struct {
	UserID         uuid.UUID  `db:"id"`
	AccessToken    string     `db:"google_access_token"`
	RefreshToken   string     `db:"google_refresh_token"`
	TokenExpiresAt *time.Time `db:"google_token_expires_at"`
	CalendarID     *string    `db:"google_calendar_id"`
	SyncEnabled    bool       `db:"calendar_sync_enabled"`
}

// Connected reports whether the user holds a full token pair.
func (c *GoogleCredentials) Connected() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// Expired reports whether the access token must be refreshed before use.
// A missing expiry counts as expired, and so does a non-positive remaining
// lifetime, so a clock that is slightly off never hands out a dead token.
func (c *GoogleCredentials) Expired(now time.Time) bool {
	if c.TokenExpiresAt == nil {
		return true
	}
	return !c.TokenExpiresAt.After(now)
}

// TargetCalendarID returns the calendar events are mirrored into. A missing
// selection means the account's primary calendar.
func (c *GoogleCredentials) TargetCalendarID() string {
	if c.CalendarID != nil && *c.CalendarID != "" {
		return *c.CalendarID
	}
	return "primary"
}
