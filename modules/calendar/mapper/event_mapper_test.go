package mapper

import (
	"testing"
	"time"

	assignmentEntity "go-planner-api/modules/assignment/entity"
	"go-planner-api/modules/calendar/dto"
	jobEntity "go-planner-api/modules/job/entity"
	taskEntity "go-planner-api/modules/task/entity"

	"github.com/stretchr/testify/assert"
)

func TestFromTaskPrefixesTitle(t *testing.T) {
	due := time.Now()
	desc := "quarterly numbers"
	item := FromTask(&taskEntity.Task{Title: "Write report", Description: &desc, DueDate: &due})

	assert.Equal(t, "[Task] Write report", item.EventTitle())
	assert.Equal(t, "quarterly numbers", item.Description)
	assert.Equal(t, &due, item.Deadline)
}

func TestFromAssignmentPrefixesTitle(t *testing.T) {
	item := FromAssignment(&assignmentEntity.Assignment{Title: "Problem set 3"})

	assert.Equal(t, "[Assignment] Problem set 3", item.EventTitle())
	assert.Empty(t, item.Description)
	assert.Nil(t, item.Deadline)
}

func TestFromJobComposesCompanyAndPosition(t *testing.T) {
	due := time.Now()
	item := FromJob(&jobEntity.JobApplication{
		Company:  "Acme",
		Position: "Backend Engineer",
		DueDate:  &due,
	})

	assert.Equal(t, "[Job] Acme - Backend Engineer", item.EventTitle())
}

func TestToFormattedEventAllDay(t *testing.T) {
	formatted := ToFormattedEvent(dto.GoogleEvent{
		ID:      "ev-1",
		Summary: "[Task] Write report",
		Start:   dto.GoogleEventDateTime{Date: "2026-03-14"},
		End:     dto.GoogleEventDateTime{Date: "2026-03-14"},
	})

	assert.True(t, formatted.AllDay)
	assert.Equal(t, "2026-03-14", formatted.Start)
	assert.Equal(t, "2026-03-14", formatted.End)
}

func TestToFormattedEventTimed(t *testing.T) {
	formatted := ToFormattedEvent(dto.GoogleEvent{
		ID:    "ev-1",
		Start: dto.GoogleEventDateTime{DateTime: "2026-03-14T10:00:00Z"},
		End:   dto.GoogleEventDateTime{DateTime: "2026-03-14T11:00:00Z"},
	})

	assert.False(t, formatted.AllDay)
	assert.Equal(t, "2026-03-14T10:00:00Z", formatted.Start)
}

func TestToCalendarOptions(t *testing.T) {
	options := ToCalendarOptions([]dto.GoogleCalendar{
		{ID: "primary-cal", Summary: "Personal", Primary: true, BackgroundColor: "#9fe1e7"},
	})

	assert.Len(t, options, 1)
	assert.Equal(t, "Personal", options[0].Label)
	assert.True(t, options[0].IsPrimary)
	assert.Equal(t, "#9fe1e7", options[0].Color)
}
