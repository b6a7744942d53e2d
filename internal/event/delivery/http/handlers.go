package http

import (
	"github.com/gin-gonic/gin"

	"smarteventadder/internal/event"
	"smarteventadder/pkg/response"
)

// ParseEmail godoc
// @Summary     Extract event details from email text
// @Description Sanitizes the email content, runs model extraction and returns the validated event record. Fields that could not be extracted are null.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Email content"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Bad Gateway - model returned unusable output"
// @Router      /api/v1/emails/parse [POST]
func (h *handler) ParseEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// FetchEmail godoc
// @Summary     Fetch email content from Gmail
// @Description Retrieves the formatted content of one Gmail message by Message-ID header or Gmail message id.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Param       body body fetchReq true "Message identifier (exactly one of message_id, gmail_id)"
// @Success     200 {object} fetchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - no message matched"
// @Router      /api/v1/emails/fetch [POST]
func (h *handler) FetchEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	content, err := h.uc.FetchEmail(ctx, req.MessageID, req.GmailID)
	if err != nil {
		h.l.Errorf(ctx, "uc.FetchEmail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, fetchResp{Content: content})
}

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Creates a Google Calendar event from an already-extracted record. Summary, date and start_time are required.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event fields"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized - Google credentials rejected"
// @Router      /api/v1/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateEvent(ctx, req.toRecord())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, createResp{Event: newEventResp(created)})
}

// CompleteWorkflow godoc
// @Summary     Run the full email-to-event workflow
// @Description Obtains the email (inline content or Gmail lookup), extracts the event record and, unless create_event is false or critical fields are missing, creates the calendar event.
// @Tags        Workflow
// @Accept      json
// @Produce     json
// @Param       body body workflowReq true "Workflow input (exactly one email source)"
// @Success     200 {object} workflowResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - no message matched"
// @Failure     502 {object} response.Resp "Bad Gateway - model returned unusable output"
// @Router      /api/v1/workflow [POST]
func (h *handler) CompleteWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWorkflowReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if !req.createWanted() {
		h.extractOnly(c, req)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWorkflowResp(output))
}

// extractOnly serves workflow requests with create_event=false: the email is
// still fetched and extracted, but nothing is written to the calendar.
func (h *handler) extractOnly(c *gin.Context, req workflowReq) {
	ctx := c.Request.Context()

	emailText := req.EmailContent
	if req.MessageID != "" || req.GmailID != "" {
		var err error
		emailText, err = h.uc.FetchEmail(ctx, req.MessageID, req.GmailID)
		if err != nil {
			h.l.Errorf(ctx, "uc.FetchEmail: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
	}

	output, err := h.uc.Extract(ctx, event.ExtractInput{
		EmailText: emailText,
		MaxLength: event.MaxEmailLengthHTTP,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	rec := newRecordResp(output.Record)
	response.OK(c, workflowResp{
		Status:        string(event.StatusCancelled),
		Record:        &rec,
		MissingFields: output.Record.MissingCriticalFields(),
		Warnings:      output.Warnings,
		Truncated:     output.Truncated,
		CancelReason:  "event creation not requested",
	})
}
