package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnectedRequiresBothTokens(t *testing.T) {
	assert.False(t, (&GoogleCredentials{}).Connected())
	assert.False(t, (&GoogleCredentials{AccessToken: "a"}).Connected())
	assert.False(t, (&GoogleCredentials{RefreshToken: "r"}).Connected())
	assert.True(t, (&GoogleCredentials{AccessToken: "a", RefreshToken: "r"}).Connected())
}

func TestExpiredTreatsMissingExpiryAsExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, (&GoogleCredentials{}).Expired(now))

	past := now.Add(-time.Second)
	future := now.Add(time.Hour)
	assert.True(t, (&GoogleCredentials{TokenExpiresAt: &past}).Expired(now))
	assert.False(t, (&GoogleCredentials{TokenExpiresAt: &future}).Expired(now))
}

func TestTargetCalendarIDDefaultsToPrimary(t *testing.T) {
	assert.Equal(t, "primary", (&GoogleCredentials{}).TargetCalendarID())

	empty := ""
	assert.Equal(t, "primary", (&GoogleCredentials{CalendarID: &empty}).TargetCalendarID())

	selected := "work@example.com"
	assert.Equal(t, "work@example.com", (&GoogleCredentials{CalendarID: &selected}).TargetCalendarID())
}
