package gcalendar

const (
	// Timezone is the fixed IANA timezone attached to created events.
	Timezone = "Asia/Tokyo"

	// utcOffset is the fixed UTC offset matching Timezone. Events are always
	// created in this offset; general timezone handling is out of scope.
	utcOffset = "+09:00"

	// DefaultCalendarID targets the authenticated user's primary calendar.
	DefaultCalendarID = "primary"

	// defaultDurationHours is applied because extraction produces a start
	// time only, never an end time.
	defaultDurationHours = 1
)

// CreateEventRequest is the input for creating a calendar event.
// Date and StartTime carry the canonical extraction formats.
type CreateEventRequest struct {
	CalendarID string
	Summary    string
	Location   string
	Date       string // YYYY-MM-DD
	StartTime  string // 24-hour HH:MM
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID       string
	Summary  string
	Location string
	HtmlLink string
	Start    string // RFC3339
	End      string // RFC3339
}
