package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-planner-api/core/constants"
	"go-planner-api/core/errors"
	"go-planner-api/core/logger"
	"go-planner-api/modules/calendar/dto"
)

const dateLayout = "2006-01-02"

// EventInput is the event-shaped input of the gateway's write operations.
// For all-day events only the date component of Start/End is sent; for timed
// events a missing End defaults to Start plus one hour.
type EventInput struct {
	Title       string
	Description string
	Start       time.Time
	End         *time.Time
	AllDay      bool
}

// EventGateway translates between event-shaped input and the Google Calendar
// v3 event resource, and performs the primitive remote operations.
type EventGateway interface {
	ListCalendars(ctx context.Context, client *http.Client) ([]dto.GoogleCalendar, error)
	ListEvents(ctx context.Context, client *http.Client, calendarID string, from, to *time.Time) ([]dto.GoogleEvent, error)
	CreateEvent(ctx context.Context, client *http.Client, calendarID string, input EventInput) (*dto.GoogleEvent, error)
	UpdateEvent(ctx context.Context, client *http.Client, calendarID, eventID string, input EventInput) (*dto.GoogleEvent, error)
	DeleteEvent(ctx context.Context, client *http.Client, calendarID, eventID string) error
}

type googleEventGateway struct {
	baseURL string
}

func NewGoogleEventGateway() EventGateway {
	return &googleEventGateway{baseURL: constants.GoogleCalendarAPIBase}
}

// NewGoogleEventGatewayWithBaseURL exists for tests that point the gateway at
// a local fake.
func NewGoogleEventGatewayWithBaseURL(baseURL string) EventGateway {
	return &googleEventGateway{baseURL: baseURL}
}

func (g *googleEventGateway) ListCalendars(ctx context.Context, client *http.Client) ([]dto.GoogleCalendar, error) {
	apiURL := g.baseURL + "/users/me/calendarList"
	body, err := g.do(ctx, client, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Items []dto.GoogleCalendar `json:"items"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse calendar list: %w", err)
	}
	return response.Items, nil
}

// ListEvents returns up to one page (250) of expanded single occurrences
// ordered by start time. Ranges holding more events than one page are
// truncated; no follow-up pagination is attempted.
func (g *googleEventGateway) ListEvents(ctx context.Context, client *http.Client, calendarID string, from, to *time.Time) ([]dto.GoogleEvent, error) {
	query := url.Values{}
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	query.Set("maxResults", strconv.Itoa(constants.CalendarMaxEventsPage))
	if from != nil {
		query.Set("timeMin", from.Format(time.RFC3339))
	}
	if to != nil {
		query.Set("timeMax", to.Format(time.RFC3339))
	}

	apiURL := fmt.Sprintf("%s/calendars/%s/events?%s", g.baseURL, url.PathEscape(calendarID), query.Encode())
	body, err := g.do(ctx, client, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	var response struct {
		Items []dto.GoogleEvent `json:"items"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}
	return response.Items, nil
}

func (g *googleEventGateway) CreateEvent(ctx context.Context, client *http.Client, calendarID string, input EventInput) (*dto.GoogleEvent, error) {
	event := dto.GoogleEvent{
		Summary:     input.Title,
		Description: input.Description,
	}
	applyEventTimes(&event, input)

	apiURL := fmt.Sprintf("%s/calendars/%s/events", g.baseURL, url.PathEscape(calendarID))
	body, err := g.do(ctx, client, http.MethodPost, apiURL, &event)
	if err != nil {
		return nil, err
	}

	var created dto.GoogleEvent
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse created event: %w", err)
	}
	return &created, nil
}

// UpdateEvent fetches the stored event first so untouched fields survive,
// overwrites title, description and times, and forces the status back to
// confirmed. A user who cancelled the event in the calendar UI without
// deleting it gets it revived on the next sync.
func (g *googleEventGateway) UpdateEvent(ctx context.Context, client *http.Client, calendarID, eventID string, input EventInput) (*dto.GoogleEvent, error) {
	eventURL := fmt.Sprintf("%s/calendars/%s/events/%s", g.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))

	body, err := g.do(ctx, client, http.MethodGet, eventURL, nil)
	if err != nil {
		return nil, err
	}

	var event dto.GoogleEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}

	event.Summary = input.Title
	event.Description = input.Description
	event.Start = dto.GoogleEventDateTime{}
	event.End = dto.GoogleEventDateTime{}
	applyEventTimes(&event, input)
	event.Status = "confirmed"

	body, err = g.do(ctx, client, http.MethodPut, eventURL, &event)
	if err != nil {
		return nil, err
	}

	var updated dto.GoogleEvent
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("failed to parse updated event: %w", err)
	}
	return &updated, nil
}

func (g *googleEventGateway) DeleteEvent(ctx context.Context, client *http.Client, calendarID, eventID string) error {
	eventURL := fmt.Sprintf("%s/calendars/%s/events/%s", g.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))
	_, err := g.do(ctx, client, http.MethodDelete, eventURL, nil)
	return err
}

// do performs one Calendar API call and maps the provider's error statuses
// onto the engine's error codes.
func (g *googleEventGateway) do(ctx context.Context, client *http.Client, method, apiURL string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("EventGateway:do:RequestError", "error", err, "method", method, "url", apiURL)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return body, nil
	case http.StatusNotFound:
		return nil, errors.NewAppError(errors.ErrEventNotFound, "event not found", nil)
	case http.StatusGone:
		return nil, errors.NewAppError(errors.ErrEventGone, "event is gone", nil)
	default:
		logger.Error("EventGateway:do:APIError", "status", resp.StatusCode, "body", string(body), "url", apiURL)
		return nil, errors.NewAppError(errors.ErrInternalServer, fmt.Sprintf("Google Calendar API error: %d", resp.StatusCode), nil)
	}
}

// applyEventTimes writes the start/end objects for the input. All-day events
// carry only the date; both bounds land on the deadline's day. Timed events
// carry RFC3339 instants with an explicit time zone.
func applyEventTimes(event *dto.GoogleEvent, input EventInput) {
	if input.AllDay {
		day := input.Start.Format(dateLayout)
		endDay := day
		if input.End != nil {
			endDay = input.End.Format(dateLayout)
		}
		event.Start = dto.GoogleEventDateTime{Date: day}
		event.End = dto.GoogleEventDateTime{Date: endDay}
		return
	}

	end := input.Start.Add(constants.DefaultEventDuration)
	if input.End != nil {
		end = *input.End
	}
	tz := input.Start.Location().String()
	event.Start = dto.GoogleEventDateTime{DateTime: input.Start.Format(time.RFC3339), TimeZone: tz}
	event.End = dto.GoogleEventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: tz}
}
