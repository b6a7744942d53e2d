package event

import (
	"smarteventadder/internal/model"
	"smarteventadder/pkg/gcalendar"
)

// Email input bounds. The interactive entry point caps input harder than the
// HTTP one; both share the same minimum meaningful length.
const (
	MinEmailLength     = 20
	MaxEmailLengthCLI  = 10000
	MaxEmailLengthHTTP = 50000
)

// Status is the terminal state of a workflow run.
type Status string

const (
	StatusCreated   Status = "created"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// ConfirmFunc asks the operator whether the displayed record should become a
// calendar event. An error is treated as an operator cancellation.
type ConfirmFunc func(record model.EventRecord) (bool, error)

// DisplayFunc renders the validated record to the operator before
// confirmation.
type DisplayFunc func(record model.EventRecord)

// ExtractInput is the input for the extraction pipeline.
type ExtractInput struct {
	EmailText string
	MaxLength int // 0 means MaxEmailLengthHTTP
}

// ExtractOutput is the result of sanitize → prompt → model → validate.
type ExtractOutput struct {
	Record    model.EventRecord
	Warnings  []string // field-format repairs, naming the offending values
	Truncated bool     // input exceeded MaxLength and was cut
}

// RunInput drives one full workflow run. Exactly one email source is used, in
// priority order: MessageIDHeader, GmailID, EmailText.
type RunInput struct {
	EmailText       string
	MessageIDHeader string
	GmailID         string

	MaxLength int

	Display DisplayFunc // optional
	Confirm ConfirmFunc // nil means confirmation is implicit (API mode)
}

// RunOutput is the terminal result of a workflow run.
type RunOutput struct {
	Status        Status
	Record        *model.EventRecord
	Event         *gcalendar.Event
	MissingFields []string // critical fields that blocked creation
	Warnings      []string
	Truncated     bool
	CancelReason  string
}
