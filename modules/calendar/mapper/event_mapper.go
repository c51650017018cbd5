package mapper

import (
	"time"

	assignmentEntity "go-planner-api/modules/assignment/entity"
	"go-planner-api/modules/calendar/dto"
	jobEntity "go-planner-api/modules/job/entity"
	taskEntity "go-planner-api/modules/task/entity"
)

// SyncItem is the kind-independent shape the sync adapter works on: a title
// expression, an optional free-text description and the deadline that keys
// the all-day event.
type SyncItem struct {
	TitlePrefix string
	Title       string
	Description string
	Deadline    *time.Time
}

// EventTitle is the calendar event summary for this item.
func (i SyncItem) EventTitle() string {
	return i.TitlePrefix + i.Title
}

func FromTask(t *taskEntity.Task) SyncItem {
	item := SyncItem{
		TitlePrefix: "[Task] ",
		Title:       t.Title,
		Deadline:    t.DueDate,
	}
	if t.Description != nil {
		item.Description = *t.Description
	}
	return item
}

func FromAssignment(a *assignmentEntity.Assignment) SyncItem {
	item := SyncItem{
		TitlePrefix: "[Assignment] ",
		Title:       a.Title,
		Deadline:    a.Deadline,
	}
	if a.Notes != nil {
		item.Description = *a.Notes
	}
	return item
}

func FromJob(j *jobEntity.JobApplication) SyncItem {
	item := SyncItem{
		TitlePrefix: "[Job] ",
		Title:       j.Company + " - " + j.Position,
		Deadline:    j.DueDate,
	}
	if j.Notes != nil {
		item.Description = *j.Notes
	}
	return item
}

// ToFormattedEvent flattens a provider event so downstream code never
// branches on the date representation.
func ToFormattedEvent(ev dto.GoogleEvent) dto.FormattedEvent {
	formatted := dto.FormattedEvent{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		AllDay:      ev.AllDay(),
		HTMLLink:    ev.HTMLLink,
		Status:      ev.Status,
		Created:     ev.Created,
		Updated:     ev.Updated,
	}
	if formatted.AllDay {
		formatted.Start = ev.Start.Date
		formatted.End = ev.End.Date
	} else {
		formatted.Start = ev.Start.DateTime
		formatted.End = ev.End.DateTime
	}
	return formatted
}

func ToFormattedEvents(events []dto.GoogleEvent) []dto.FormattedEvent {
	result := make([]dto.FormattedEvent, 0, len(events))
	for _, ev := range events {
		result = append(result, ToFormattedEvent(ev))
	}
	return result
}

func ToCalendarOptions(calendars []dto.GoogleCalendar) []dto.CalendarOption {
	result := make([]dto.CalendarOption, 0, len(calendars))
	for _, cal := range calendars {
		result = append(result, dto.CalendarOption{
			ID:        cal.ID,
			Label:     cal.Summary,
			IsPrimary: cal.Primary,
			Color:     cal.BackgroundColor,
		})
	}
	return result
}
