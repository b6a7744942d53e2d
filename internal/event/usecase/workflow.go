package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smarteventadder/internal/event"
	"smarteventadder/internal/model"
	"smarteventadder/pkg/gcalendar"
)

// FetchEmail retrieves formatted email content by identifier.
func (uc *implUseCase) FetchEmail(ctx context.Context, messageIDHeader, gmailID string) (string, error) {
	if uc.fetcher == nil {
		return "", errors.New("gmail fetching is not configured")
	}

	switch {
	case messageIDHeader != "":
		uc.l.Infof(ctx, "FetchEmail: searching by Message-ID header %s", messageIDHeader)
		return uc.fetcher.FetchByMessageIDHeader(ctx, messageIDHeader)
	case gmailID != "":
		uc.l.Infof(ctx, "FetchEmail: fetching by Gmail message id %s", gmailID)
		return uc.fetcher.FetchByID(ctx, gmailID)
	default:
		return "", event.ErrNoEmailSource
	}
}

// CreateEvent creates a calendar event from a validated record. The critical
// fields must be present; location is attached when available.
func (uc *implUseCase) CreateEvent(ctx context.Context, record model.EventRecord) (*gcalendar.Event, error) {
	if uc.calendar == nil {
		return nil, errors.New("calendar service is not configured")
	}
	if missing := record.MissingCriticalFields(); len(missing) > 0 {
		return nil, fmt.Errorf("missing critical information: %s", strings.Join(missing, ", "))
	}

	created, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    *record.Summary,
		Location:   record.Field("location", ""),
		Date:       *record.Date,
		StartTime:  *record.StartTime,
	})
	if err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "CreateEvent: created %q on %s at %s (id=%s)",
		created.Summary, *record.Date, *record.StartTime, created.ID)
	return created, nil
}

// Run executes one full workflow: obtain email text, extract and validate the
// record, refuse or confirm, then create the calendar event. A run ends in
// exactly one of the terminal statuses; only failed runs also return an error.
func (uc *implUseCase) Run(ctx context.Context, input event.RunInput) (event.RunOutput, error) {
	emailText, err := uc.resolveEmailText(ctx, input)
	if err != nil {
		return event.RunOutput{Status: event.StatusFailed}, err
	}

	out, err := uc.Extract(ctx, event.ExtractInput{
		EmailText: emailText,
		MaxLength: input.MaxLength,
	})
	if err != nil {
		return event.RunOutput{Status: event.StatusFailed}, err
	}

	rec := out.Record
	result := event.RunOutput{
		Record:    &rec,
		Warnings:  out.Warnings,
		Truncated: out.Truncated,
	}

	if input.Display != nil {
		input.Display(rec)
	}

	// Missing critical fields skip straight to refusal: the operator is not
	// even asked.
	if missing := rec.MissingCriticalFields(); len(missing) > 0 {
		result.Status = event.StatusCancelled
		result.MissingFields = missing
		result.CancelReason = "missing critical information: " + strings.Join(missing, ", ")
		uc.l.Warnf(ctx, "Run: refusing event creation, %s", result.CancelReason)
		return result, nil
	}

	if input.Confirm != nil {
		confirmed, confirmErr := input.Confirm(rec)
		if confirmErr != nil || !confirmed {
			result.Status = event.StatusCancelled
			result.CancelReason = "operation cancelled by user"
			uc.l.Infof(ctx, "Run: %s", result.CancelReason)
			return result, nil
		}
	}

	created, err := uc.CreateEvent(ctx, rec)
	if err != nil {
		result.Status = event.StatusFailed
		uc.l.Errorf(ctx, "Run: calendar event creation failed: %v", err)
		return result, err
	}

	result.Status = event.StatusCreated
	result.Event = created
	return result, nil
}

// resolveEmailText picks the email source for this run.
func (uc *implUseCase) resolveEmailText(ctx context.Context, input event.RunInput) (string, error) {
	if input.MessageIDHeader != "" || input.GmailID != "" {
		return uc.FetchEmail(ctx, input.MessageIDHeader, input.GmailID)
	}
	if input.EmailText != "" {
		return input.EmailText, nil
	}
	return "", event.ErrNoEmailSource
}
