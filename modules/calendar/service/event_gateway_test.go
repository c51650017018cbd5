package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-planner-api/core/errors"
	"go-planner-api/modules/calendar/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventAllDayBody(t *testing.T) {
	var received dto.GoogleEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/calendars/primary/events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(dto.GoogleEvent{ID: "ev-1", Status: "confirmed"})
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	deadline := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	created, err := gateway.CreateEvent(context.Background(), server.Client(), "primary", EventInput{
		Title:       "[Task] Write report",
		Description: "final draft",
		Start:       deadline,
		AllDay:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", created.ID)

	assert.Equal(t, "[Task] Write report", received.Summary)
	assert.Equal(t, "final draft", received.Description)
	assert.Equal(t, "2026-03-14", received.Start.Date)
	assert.Equal(t, "2026-03-14", received.End.Date)
	assert.Empty(t, received.Start.DateTime)
	assert.Empty(t, received.End.DateTime)
}

func TestCreateEventTimedDefaultsOneHour(t *testing.T) {
	var received dto.GoogleEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(dto.GoogleEvent{ID: "ev-1"})
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	_, err := gateway.CreateEvent(context.Background(), server.Client(), "primary", EventInput{
		Title: "Standup",
		Start: start,
	})
	require.NoError(t, err)

	assert.Equal(t, start.Format(time.RFC3339), received.Start.DateTime)
	assert.Equal(t, start.Add(time.Hour).Format(time.RFC3339), received.End.DateTime)
	assert.Equal(t, "UTC", received.Start.TimeZone)
}

func TestUpdateEventForcesConfirmedStatus(t *testing.T) {
	var putBody dto.GoogleEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(dto.GoogleEvent{
				ID:      "ev-1",
				Summary: "old title",
				Status:  "cancelled",
			})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
			json.NewEncoder(w).Encode(dto.GoogleEvent{ID: "ev-1", Status: "confirmed"})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	deadline := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	updated, err := gateway.UpdateEvent(context.Background(), server.Client(), "primary", "ev-1", EventInput{
		Title:  "[Task] Write report",
		Start:  deadline,
		AllDay: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", updated.ID)

	assert.Equal(t, "confirmed", putBody.Status)
	assert.Equal(t, "[Task] Write report", putBody.Summary)
	assert.Equal(t, "2026-03-14", putBody.Start.Date)
}

func TestGatewayMapsMissingEventStatuses(t *testing.T) {
	tests := []struct {
		status int
		code   errors.ErrorCode
	}{
		{http.StatusNotFound, errors.ErrEventNotFound},
		{http.StatusGone, errors.ErrEventGone},
	}
	for _, tc := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
		_, err := gateway.UpdateEvent(context.Background(), server.Client(), "primary", "ev-x", EventInput{
			Title:  "t",
			Start:  time.Now(),
			AllDay: true,
		})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, tc.code), "status %d", tc.status)
		server.Close()
	}
}

func TestDeleteEventTreatsGoneAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	err := gateway.DeleteEvent(context.Background(), server.Client(), "primary", "ev-1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrEventGone))
}

func TestListEventsQueryShape(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"items": []dto.GoogleEvent{{ID: "ev-1"}, {ID: "ev-2"}},
		})
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	events, err := gateway.ListEvents(context.Background(), server.Client(), "primary", &from, &to)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	assert.Equal(t, "true", query["singleEvents"][0])
	assert.Equal(t, "startTime", query["orderBy"][0])
	assert.Equal(t, "250", query["maxResults"][0])
	assert.Equal(t, from.Format(time.RFC3339), query["timeMin"][0])
	assert.Equal(t, to.Format(time.RFC3339), query["timeMax"][0])
}

func TestListEventsOmitsUnsetBounds(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{"items": []dto.GoogleEvent{}})
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	_, err := gateway.ListEvents(context.Background(), server.Client(), "primary", nil, nil)
	require.NoError(t, err)

	_, hasMin := query["timeMin"]
	_, hasMax := query["timeMax"]
	assert.False(t, hasMin)
	assert.False(t, hasMax)
}

func TestListCalendars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me/calendarList", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"items": []dto.GoogleCalendar{
				{ID: "primary-cal", Summary: "Personal", Primary: true},
				{ID: "work@example.com", Summary: "Work"},
			},
		})
	}))
	defer server.Close()

	gateway := NewGoogleEventGatewayWithBaseURL(server.URL)
	calendars, err := gateway.ListCalendars(context.Background(), server.Client())
	require.NoError(t, err)
	require.Len(t, calendars, 2)
	assert.True(t, calendars[0].Primary)
	assert.Equal(t, "work@example.com", calendars[1].ID)
}
