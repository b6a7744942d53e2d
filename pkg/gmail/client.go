// Package gmail fetches email content for event extraction. It supports two
// identifier kinds: an email-protocol Message-ID header (resolved through a
// rfc822msgid search) and a native Gmail API message id (fetched directly).
package gmail

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// ErrMessageNotFound means no message matched the given identifier.
var ErrMessageNotFound = errors.New("message not found")

// Client wraps the Gmail Users service.
type Client struct {
	svc *gmailapi.UsersService
}

// NewClient creates a Gmail client from a pre-authenticated HTTP client
// (see pkg/gauth). Extra options are mainly for tests (endpoint override).
func NewClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	allOpts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := gmailapi.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{svc: svc.Users}, nil
}

// FetchByMessageIDHeader resolves a Message-ID header to a Gmail message via
// the rfc822msgid search operator and returns the formatted email content.
func (c *Client) FetchByMessageIDHeader(ctx context.Context, messageIDHeader string) (string, error) {
	query := fmt.Sprintf("rfc822msgid:%s", messageIDHeader)

	list, err := c.svc.Messages.List("me").Q(query).MaxResults(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail search for %q failed: %w", messageIDHeader, err)
	}
	if len(list.Messages) == 0 {
		return "", fmt.Errorf("no message with Message-ID header %q: %w", messageIDHeader, ErrMessageNotFound)
	}

	return c.FetchByID(ctx, list.Messages[0].Id)
}

// FetchByID fetches a message by its Gmail API id and returns the formatted
// email content (headers plus decoded body).
func (c *Client) FetchByID(ctx context.Context, gmailID string) (string, error) {
	msg, err := c.svc.Messages.Get("me", gmailID).Format("full").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch gmail message %q: %w", gmailID, err)
	}
	return FormatMessage(msg), nil
}
