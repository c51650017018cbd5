package constants

import "time"

// Request handling
const (
	DefaultTimeout = 30 * time.Second
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Token lifetimes
const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Google Calendar engine
const (
	GoogleCalendarAPIBase  = "https://www.googleapis.com/calendar/v3"
	GoogleTokenURL         = "https://oauth2.googleapis.com/token"
	GoogleRevokeURL        = "https://oauth2.googleapis.com/revoke"
	GoogleCalendarScope    = "https://www.googleapis.com/auth/calendar"
	DefaultTokenLifetime   = 3600 // seconds, when the provider omits expires_in
	OAuthStateTTL          = 10 * time.Minute
	CalendarMaxEventsPage  = 250
	DefaultEventDuration   = time.Hour
)
