package http

import (
	"errors"
	"regexp"

	"smarteventadder/internal/event"
	"smarteventadder/internal/model"
	"smarteventadder/pkg/gcalendar"
	"smarteventadder/pkg/gmail"
)

var gmailIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{16}$`)

// --- Request DTOs ---

type parseReq struct {
	EmailContent string `json:"email_content" binding:"required"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() event.ExtractInput {
	return event.ExtractInput{
		EmailText: r.EmailContent,
		MaxLength: event.MaxEmailLengthHTTP,
	}
}

// ---

type fetchReq struct {
	MessageID string `json:"message_id"`
	GmailID   string `json:"gmail_id"`
}

func (r fetchReq) validate() error {
	switch {
	case r.MessageID == "" && r.GmailID == "":
		return errors.New("either message_id or gmail_id is required")
	case r.MessageID != "" && r.GmailID != "":
		return errors.New("message_id and gmail_id are mutually exclusive")
	case r.MessageID != "" && !gmail.IsMessageIDHeader(r.MessageID):
		return errors.New("message_id is not a valid Message-ID header")
	case r.GmailID != "" && !gmailIDPattern.MatchString(r.GmailID):
		return errors.New("gmail_id must be a 16-character alphanumeric id")
	}
	return nil
}

// ---

type createReq struct {
	Summary   string `json:"summary"    binding:"required"`
	Date      string `json:"date"       binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Location  string `json:"location"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toRecord() model.EventRecord {
	rec := model.EventRecord{
		Summary:   model.StringPtr(r.Summary),
		Date:      model.StringPtr(r.Date),
		StartTime: model.StringPtr(r.StartTime),
	}
	if r.Location != "" {
		rec.Location = model.StringPtr(r.Location)
	}
	return rec
}

// ---

type workflowReq struct {
	EmailContent string `json:"email_content"`
	MessageID    string `json:"message_id"`
	GmailID      string `json:"gmail_id"`
	CreateEvent  *bool  `json:"create_event"` // default true
}

func (r workflowReq) validate() error {
	sources := 0
	for _, s := range []string{r.EmailContent, r.MessageID, r.GmailID} {
		if s != "" {
			sources++
		}
	}
	switch {
	case sources == 0:
		return errors.New("one of email_content, message_id or gmail_id is required")
	case sources > 1:
		return errors.New("email_content, message_id and gmail_id are mutually exclusive")
	case r.MessageID != "" && !gmail.IsMessageIDHeader(r.MessageID):
		return errors.New("message_id is not a valid Message-ID header")
	case r.GmailID != "" && !gmailIDPattern.MatchString(r.GmailID):
		return errors.New("gmail_id must be a 16-character alphanumeric id")
	}
	return nil
}

func (r workflowReq) createWanted() bool {
	return r.CreateEvent == nil || *r.CreateEvent
}

func (r workflowReq) toInput() event.RunInput {
	return event.RunInput{
		EmailText:       r.EmailContent,
		MessageIDHeader: r.MessageID,
		GmailID:         r.GmailID,
		MaxLength:       event.MaxEmailLengthHTTP,
	}
}

// --- Response DTOs ---

type recordResp struct {
	Summary   *string `json:"summary"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	Location  *string `json:"location"`
}

func newRecordResp(rec model.EventRecord) recordResp {
	return recordResp{
		Summary:   rec.Summary,
		Date:      rec.Date,
		StartTime: rec.StartTime,
		Location:  rec.Location,
	}
}

type eventResp struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Location string `json:"location,omitempty"`
	HtmlLink string `json:"html_link,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func newEventResp(ev *gcalendar.Event) *eventResp {
	if ev == nil {
		return nil
	}
	return &eventResp{
		ID:       ev.ID,
		Summary:  ev.Summary,
		Location: ev.Location,
		HtmlLink: ev.HtmlLink,
		Start:    ev.Start,
		End:      ev.End,
	}
}

type parseResp struct {
	Record    recordResp `json:"record"`
	Warnings  []string   `json:"warnings,omitempty"`
	Truncated bool       `json:"truncated"`
}

func (h *handler) newParseResp(out event.ExtractOutput) parseResp {
	return parseResp{
		Record:    newRecordResp(out.Record),
		Warnings:  out.Warnings,
		Truncated: out.Truncated,
	}
}

type fetchResp struct {
	Content string `json:"content"`
}

type createResp struct {
	Event *eventResp `json:"event"`
}

type workflowResp struct {
	Status        string      `json:"status"`
	Record        *recordResp `json:"record,omitempty"`
	Event         *eventResp  `json:"event,omitempty"`
	MissingFields []string    `json:"missing_fields,omitempty"`
	Warnings      []string    `json:"warnings,omitempty"`
	Truncated     bool        `json:"truncated"`
	CancelReason  string      `json:"cancel_reason,omitempty"`
}

func (h *handler) newWorkflowResp(out event.RunOutput) workflowResp {
	resp := workflowResp{
		Status:        string(out.Status),
		Event:         newEventResp(out.Event),
		MissingFields: out.MissingFields,
		Warnings:      out.Warnings,
		Truncated:     out.Truncated,
		CancelReason:  out.CancelReason,
	}
	if out.Record != nil {
		rec := newRecordResp(*out.Record)
		resp.Record = &rec
	}
	return resp
}
