package event

import (
	"context"

	"smarteventadder/internal/model"
	"smarteventadder/pkg/gcalendar"
	"smarteventadder/pkg/gemini"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// FetchEmail retrieves formatted email content for exactly one of the
	// identifier kinds (Message-ID header preferred).
	FetchEmail(ctx context.Context, messageIDHeader, gmailID string) (string, error)

	// Extract runs sanitize → prompt → model → validate on email text and
	// returns the validated record.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// CreateEvent creates a calendar event from a validated record. The
	// record must have all critical fields present.
	CreateEvent(ctx context.Context, record model.EventRecord) (*gcalendar.Event, error)

	// Run executes the full workflow: obtain email → extract → confirm →
	// create, returning the terminal status.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
}

// LLM is the generative-model backend used for extraction.
type LLM interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

// Calendar creates events on the external calendar service.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Fetcher retrieves formatted email content by identifier.
type Fetcher interface {
	FetchByMessageIDHeader(ctx context.Context, messageIDHeader string) (string, error)
	FetchByID(ctx context.Context, gmailID string) (string, error)
}
