package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client from a pre-authenticated HTTP client
// (see pkg/gauth). Extra options are mainly for tests (endpoint override).
func NewClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	allOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := calendar.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a one-hour event starting at Date/StartTime in the fixed
// application timezone. The returned Event carries the id and HTML link of the
// created entry.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event, err := buildEvent(req)
	if err != nil {
		return nil, err
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		Location: created.Location,
		HtmlLink: created.HtmlLink,
		Start:    event.Start.DateTime,
		End:      event.End.DateTime,
	}, nil
}

// buildEvent turns a validated record into the API event body. It expects the
// canonical formats and fails on anything else; validation upstream should
// have nulled bad fields already.
func buildEvent(req CreateEventRequest) (*calendar.Event, error) {
	if req.Summary == "" || req.Date == "" || req.StartTime == "" {
		return nil, fmt.Errorf("event requires summary, date and start_time (got summary=%q date=%q start_time=%q)",
			req.Summary, req.Date, req.StartTime)
	}

	startStr := fmt.Sprintf("%sT%s:00%s", req.Date, req.StartTime, utcOffset)
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid event start %q: %w", startStr, err)
	}
	end := start.Add(defaultDurationHours * time.Hour)

	return &calendar.Event{
		Summary:  req.Summary,
		Location: req.Location,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: Timezone,
		},
	}, nil
}
