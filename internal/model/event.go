package model

// EventRecord is the structured result of extracting a calendar event from
// email text. Every field is optional: nil means the model could not find the
// value. A validated record always carries all four keys, with date and
// start_time guaranteed to be in canonical form when non-nil.
type EventRecord struct {
	Summary   *string `json:"summary"`
	Date      *string `json:"date"`       // YYYY-MM-DD
	StartTime *string `json:"start_time"` // 24-hour HH:MM
	Location  *string `json:"location"`   // verbatim, any script
}

// CriticalFields are the fields whose absence blocks event creation.
// Location deliberately does not gate confirmation.
var CriticalFields = []string{"summary", "date", "start_time"}

// MissingCriticalFields returns the names of critical fields that are nil.
func (r EventRecord) MissingCriticalFields() []string {
	var missing []string
	if r.Summary == nil {
		missing = append(missing, "summary")
	}
	if r.Date == nil {
		missing = append(missing, "date")
	}
	if r.StartTime == nil {
		missing = append(missing, "start_time")
	}
	return missing
}

// Field returns the value of the named field, or fallback when nil.
func (r EventRecord) Field(name, fallback string) string {
	var v *string
	switch name {
	case "summary":
		v = r.Summary
	case "date":
		v = r.Date
	case "start_time":
		v = r.StartTime
	case "location":
		v = r.Location
	}
	if v == nil {
		return fallback
	}
	return *v
}

// StringPtr is a convenience helper for building records.
func StringPtr(s string) *string {
	return &s
}
