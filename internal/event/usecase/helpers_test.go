package usecase

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"smarteventadder/internal/event"
	"smarteventadder/internal/model"
)

func TestSanitizeEmailText(t *testing.T) {
	longEnough := "Please join the meeting on Friday at 10:00 in Room A."

	t.Run("valid text passes through trimmed", func(t *testing.T) {
		got, truncated, err := sanitizeEmailText("  "+longEnough+"\n", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if truncated {
			t.Error("unexpected truncation")
		}
		if got != longEnough {
			t.Errorf("got %q, want %q", got, longEnough)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\n\t  \n"} {
			_, _, err := sanitizeEmailText(in, 0)
			if !errors.Is(err, event.ErrEmptyEmail) {
				t.Errorf("sanitizeEmailText(%q): expected ErrEmptyEmail, got %v", in, err)
			}
		}
	})

	t.Run("too short", func(t *testing.T) {
		_, _, err := sanitizeEmailText("Hello", 0)
		if !errors.Is(err, event.ErrEmailTooShort) {
			t.Errorf("expected ErrEmailTooShort, got %v", err)
		}
	})

	t.Run("boundary lengths", func(t *testing.T) {
		atMin := strings.Repeat("a", event.MinEmailLength)
		if _, _, err := sanitizeEmailText(atMin, 0); err != nil {
			t.Errorf("text at minimum length should pass, got %v", err)
		}
		belowMin := strings.Repeat("a", event.MinEmailLength-1)
		if _, _, err := sanitizeEmailText(belowMin, 0); !errors.Is(err, event.ErrEmailTooShort) {
			t.Errorf("text below minimum should fail, got %v", err)
		}
	})

	t.Run("dangerous fragments removed", func(t *testing.T) {
		in := "Meeting details <script>alert(1)</script> javascript:void data:text tomorrow at ten in the office"
		got, _, err := sanitizeEmailText(in, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, frag := range []string{"<script", "</script>", "javascript:", "data:"} {
			if strings.Contains(got, frag) {
				t.Errorf("fragment %q survived sanitization: %q", frag, got)
			}
		}
		// Removal is literal, not HTML-aware: remaining tag text stays.
		if !strings.Contains(got, "alert(1)") {
			t.Errorf("inner content should survive: %q", got)
		}
	})

	t.Run("truncation at max length", func(t *testing.T) {
		in := strings.Repeat("b", 150)
		got, truncated, err := sanitizeEmailText(in, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !truncated {
			t.Error("expected truncation flag")
		}
		if len(got) != 100 {
			t.Errorf("expected 100 chars after truncation, got %d", len(got))
		}
	})

	t.Run("minimum checked after sanitization", func(t *testing.T) {
		// Long enough raw, but mostly denylisted fragments.
		in := strings.Repeat("javascript:", 5) + "hi"
		_, _, err := sanitizeEmailText(in, 0)
		if !errors.Is(err, event.ErrEmailTooShort) {
			t.Errorf("expected ErrEmailTooShort after stripping, got %v", err)
		}
	})
}

func TestDetectFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want fenceKind
	}{
		{"json fence", "```json\n{}\n```", fenceJSON},
		{"bare fence", "```\n{}\n```", fenceBare},
		{"no fence", `{"summary": null}`, fenceNone},
		{"fence mid-text is ignored", "{\"a\": \"uses ``` inside\"}", fenceNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFence(strings.TrimSpace(tt.in)); got != tt.want {
				t.Errorf("detectFence(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	inner := `{"summary": "Team Meeting", "date": "2024-01-15", "start_time": "14:30", "location": "Conference Room A"}`

	tests := []struct {
		name string
		in   string
	}{
		{"json fence", "```json\n" + inner + "\n```"},
		{"bare fence", "```\n" + inner + "\n```"},
		{"json fence with surrounding whitespace", "\n\n  ```json\n" + inner + "\n```  \n"},
		{"no fence", inner},
		{"no fence with whitespace", "  " + inner + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFence(tt.in); got != inner {
				t.Errorf("stripFence(%q) = %q, want %q", tt.in, got, inner)
			}
		})
	}
}

func TestStripFence_ParseEquivalence(t *testing.T) {
	// Wrapped and unwrapped responses must parse to the same record.
	inner := `{"summary": "Team Meeting", "date": "2024-01-15", "start_time": "14:30", "location": "Conference Room A"}`

	plain, err := parseRecord(stripFence(inner))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrapped, err := parseRecord(stripFence("```json\n" + inner + "\n```"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(plain, wrapped) {
		t.Errorf("fenced parse %+v differs from plain parse %+v", wrapped, plain)
	}
	if plain.Summary == nil || *plain.Summary != "Team Meeting" {
		t.Errorf("unexpected summary: %v", plain.Summary)
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, in := range []string{"not json at all", `{"summary": `, "", "[1,2,3]"} {
		_, err := parseRecord(in)
		if !errors.Is(err, event.ErrMalformedResponse) {
			t.Errorf("parseRecord(%q): expected ErrMalformedResponse, got %v", in, err)
		}
	}
}

func TestValidateEventRecord(t *testing.T) {
	t.Run("missing keys become null", func(t *testing.T) {
		rec, err := parseRecord(`{"summary": "Test Meeting"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, warnings := validateEventRecord(rec)
		if got.Summary == nil || *got.Summary != "Test Meeting" {
			t.Errorf("summary not preserved: %v", got.Summary)
		}
		if got.Date != nil || got.StartTime != nil || got.Location != nil {
			t.Errorf("missing keys should be null: %+v", got)
		}
		if len(warnings) != 0 {
			t.Errorf("no warnings expected, got %v", warnings)
		}
	})

	t.Run("invalid date nulled with warning", func(t *testing.T) {
		rec := model.EventRecord{
			Summary: model.StringPtr("Meeting"),
			Date:    model.StringPtr("15/01/2024"),
		}

		got, warnings := validateEventRecord(rec)
		if got.Date != nil {
			t.Errorf("invalid date should be nulled, got %q", *got.Date)
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "15/01/2024") {
			t.Errorf("warning must name the offending value, got %v", warnings)
		}
		if got.Summary == nil || *got.Summary != "Meeting" {
			t.Errorf("other fields must be untouched: %+v", got)
		}
	})

	t.Run("date table", func(t *testing.T) {
		tests := []struct {
			date  string
			valid bool
		}{
			{"2024-01-15", true},
			{"2024-12-31", true},
			{"15/01/2024", false},
			{"2024-13-40", false},
			{"2024-02-30", false},
			{"January 15, 2024", false},
			{"", false},
		}
		for _, tt := range tests {
			rec := model.EventRecord{Date: model.StringPtr(tt.date)}
			got, warnings := validateEventRecord(rec)
			if tt.valid {
				if got.Date == nil || *got.Date != tt.date {
					t.Errorf("date %q should be preserved", tt.date)
				}
				if len(warnings) != 0 {
					t.Errorf("date %q should not warn: %v", tt.date, warnings)
				}
			} else {
				if got.Date != nil {
					t.Errorf("date %q should be nulled", tt.date)
				}
				if len(warnings) != 1 {
					t.Errorf("date %q should warn once, got %v", tt.date, warnings)
				}
			}
		}
	})

	t.Run("time table", func(t *testing.T) {
		tests := []struct {
			timeStr string
			valid   bool
		}{
			{"14:30", true},
			{"00:00", true},
			{"23:59", true},
			{"2:30 PM", false},
			{"24:00", false},
			{"14:60", false},
			{"14:30:00", false},
			{"", false},
		}
		for _, tt := range tests {
			rec := model.EventRecord{StartTime: model.StringPtr(tt.timeStr)}
			got, warnings := validateEventRecord(rec)
			if tt.valid && (got.StartTime == nil || *got.StartTime != tt.timeStr) {
				t.Errorf("time %q should be preserved", tt.timeStr)
			}
			if !tt.valid {
				if got.StartTime != nil {
					t.Errorf("time %q should be nulled", tt.timeStr)
				}
				if len(warnings) != 1 || !strings.Contains(warnings[0], tt.timeStr) {
					t.Errorf("time %q should warn naming the value, got %v", tt.timeStr, warnings)
				}
			}
		}
	})

	t.Run("summary and location pass through verbatim", func(t *testing.T) {
		rec := model.EventRecord{
			Summary:  model.StringPtr("新年会 🎉"),
			Location: model.StringPtr("東京都渋谷区道玄坂1-2-3"),
		}
		got, _ := validateEventRecord(rec)
		if *got.Summary != "新年会 🎉" || *got.Location != "東京都渋谷区道玄坂1-2-3" {
			t.Errorf("non-Latin content must pass through unchanged: %+v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		rec := model.EventRecord{
			Summary:   model.StringPtr("Meeting"),
			Date:      model.StringPtr("not-a-date"),
			StartTime: model.StringPtr("14:30"),
			Location:  nil,
		}
		once, _ := validateEventRecord(rec)
		twice, warnings := validateEventRecord(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("re-validation changed the record: %+v vs %+v", once, twice)
		}
		if len(warnings) != 0 {
			t.Errorf("re-validation must not warn, got %v", warnings)
		}
	})
}
