package entity

import (
	"time"

	"go-planner-api/core/entity"

	"github.com/google/uuid"
)

// OAuthState is a one-time CSRF token for the Google consent flow. It also
// remembers which user initiated the flow, since the callback arrives on an
// unauthenticated route.
type OAuthState struct {
	State     string    `db:"state"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	entity.BaseEntity
}
