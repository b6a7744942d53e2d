package http

import (
	"errors"

	"smarteventadder/internal/event"
	"smarteventadder/pkg/gauth"
	"smarteventadder/pkg/gmail"
	"smarteventadder/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEmptyEmail),
		errors.Is(err, event.ErrEmailTooShort),
		errors.Is(err, event.ErrNoEmailSource):
		return response.NewHTTPError(400, err.Error())
	case errors.Is(err, gmail.ErrMessageNotFound):
		return response.NewHTTPError(404, err.Error())
	case gauth.IsAuthError(err):
		return response.NewHTTPError(401, "google authentication failed, re-run authorization")
	case errors.Is(err, event.ErrMalformedResponse):
		return response.NewHTTPError(502, "model returned unusable output, try again")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
