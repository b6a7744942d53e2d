package event

import "errors"

// Domain-specific errors for the event extraction pipeline.
var (
	// ErrEmptyEmail rejects empty or all-whitespace input.
	ErrEmptyEmail = errors.New("email content cannot be empty")

	// ErrEmailTooShort rejects input below the minimum meaningful length.
	ErrEmailTooShort = errors.New("email content too short; please provide more detailed email content")

	// ErrMalformedResponse means the model output was not valid JSON after
	// fence stripping. This is fatal for the run: malformed output is never
	// coerced into an empty record.
	ErrMalformedResponse = errors.New("model response is not a valid JSON object")

	// ErrNoEmailSource means the workflow was started without email text or
	// a message identifier.
	ErrNoEmailSource = errors.New("no email content or message identifier provided")
)
