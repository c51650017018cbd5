package dto

// ========== Google Calendar wire types ==========

// GoogleEventDateTime mirrors the start/end object of the Calendar v3 event
// resource. All-day events carry Date only; timed events carry DateTime plus
// an explicit TimeZone.
type GoogleEventDateTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// GoogleEvent is the subset of the Calendar v3 event resource this engine
// reads and writes.
type GoogleEvent struct {
	ID          string              `json:"id,omitempty"`
	Status      string              `json:"status,omitempty"`
	HTMLLink    string              `json:"htmlLink,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Start       GoogleEventDateTime `json:"start,omitempty"`
	End         GoogleEventDateTime `json:"end,omitempty"`
	Created     string              `json:"created,omitempty"`
	Updated     string              `json:"updated,omitempty"`
}

// AllDay reports whether the provider sent a date-only start.
func (e *GoogleEvent) AllDay() bool {
	return e.Start.Date != "" && e.Start.DateTime == ""
}

// GoogleCalendar is one calendarList entry.
type GoogleCalendar struct {
	ID              string `json:"id"`
	Summary         string `json:"summary"`
	Primary         bool   `json:"primary"`
	BackgroundColor string `json:"backgroundColor"`
}

// ========== Connection / settings DTOs ==========

type ConnectURLResponse struct {
	URL string `json:"url"`
}

type ConnectionStatusResponse struct {
	Connected   bool    `json:"connected"`
	SyncEnabled bool    `json:"sync_enabled"`
	CalendarID  *string `json:"calendar_id"`
}

type UpdateSettingsRequest struct {
	SyncEnabled *bool   `json:"sync_enabled"`
	CalendarID  *string `json:"calendar_id"`
}

type CalendarOption struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsPrimary bool   `json:"is_primary"`
	Color     string `json:"color,omitempty"`
}

type CalendarListResponse struct {
	Calendars []CalendarOption `json:"calendars"`
}

// ========== Event view DTOs ==========

// FormattedEvent is the flat event shape exposed to the calendar view.
// Downstream code never branches on the provider's date representation; the
// AllDay flag plus plain start/end strings carry everything.
type FormattedEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	AllDay      bool   `json:"all_day"`
	HTMLLink    string `json:"html_link,omitempty"`
	Status      string `json:"status,omitempty"`
	Created     string `json:"created,omitempty"`
	Updated     string `json:"updated,omitempty"`
}

type EventListResponse struct {
	Events []FormattedEvent `json:"events"`
}
