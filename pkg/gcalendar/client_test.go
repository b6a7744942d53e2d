package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smarteventadder/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCreateEvent(t *testing.T) {
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"summary": "Team Meeting",
				"location": "Conference Room A",
				"htmlLink": "https://calendar.google.com/event-uri",
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClient(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Team Meeting",
		Location:  "Conference Room A",
		Date:      "2024-01-15",
		StartTime: "14:30",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" {
		t.Errorf("unexpected id: %s", event.ID)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
	if event.Start != "2024-01-15T14:30:00+09:00" {
		t.Errorf("unexpected start: %s", event.Start)
	}
	if event.End != "2024-01-15T15:30:00+09:00" {
		t.Errorf("unexpected end: %s", event.End)
	}

	start, ok := gotBody["start"].(map[string]any)
	if !ok || start["timeZone"] != gcalendar.Timezone {
		t.Errorf("request body missing fixed timezone: %v", gotBody["start"])
	}
}

func TestCreateEvent_MissingFields(t *testing.T) {
	client, err := gcalendar.NewClient(context.Background(), http.DefaultClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary: "No date",
	})
	if err == nil {
		t.Fatal("expected error for missing date/start_time")
	}
}
