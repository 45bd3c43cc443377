package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest describes the calendar block mirrored for a task.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Ho_Chi_Minh"
}

// Event is the subset of a Google Calendar event the planner keeps.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    time.Time
	End      time.Time
}
