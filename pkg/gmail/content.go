package gmail

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	gmailapi "google.golang.org/api/gmail/v1"
)

// FormatMessage extracts readable content from a Gmail message:
// Subject/From/Date/Message-ID headers followed by the decoded body.
func FormatMessage(msg *gmailapi.Message) string {
	var subject, sender, date, messageID string

	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch strings.ToLower(h.Name) {
			case "subject":
				subject = h.Value
			case "from":
				sender = h.Value
			case "date":
				date = h.Value
			case "message-id":
				messageID = h.Value
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Subject: %s\n", subject))
	if sender != "" {
		sb.WriteString(fmt.Sprintf("From: %s\n", sender))
	}
	if date != "" {
		sb.WriteString(fmt.Sprintf("Date: %s\n", date))
	}
	if messageID != "" {
		sb.WriteString(fmt.Sprintf("Message-ID: %s\n", messageID))
	}
	sb.WriteString("\n")
	sb.WriteString(extractBody(msg.Payload))

	return sb.String()
}

// extractBody walks the MIME part tree and concatenates decoded text parts.
// HTML parts get naive tag stripping. Undecodable parts are skipped.
func extractBody(payload *gmailapi.MessagePart) string {
	if payload == nil {
		return ""
	}

	if len(payload.Parts) > 0 {
		var sb strings.Builder
		for _, part := range payload.Parts {
			sb.WriteString(extractBody(part))
		}
		return sb.String()
	}

	if payload.MimeType != "text/plain" && payload.MimeType != "text/html" {
		return ""
	}
	if payload.Body == nil || payload.Body.Data == "" {
		return ""
	}

	// Gmail uses base64url; padding is inconsistent across senders.
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload.Body.Data, "="))
	if err != nil {
		return ""
	}

	text := string(decoded)
	if payload.MimeType == "text/html" {
		text = StripHTMLTags(text)
	}
	return text
}

var (
	htmlTagRe        = regexp.MustCompile(`<.*?>`)
	blankLinesRe     = regexp.MustCompile(`\n\s*\n`)
	repeatedSpacesRe = regexp.MustCompile(` +`)
)

// StripHTMLTags removes HTML markup from email content. This is a simple
// regex-based approach, not an HTML parser; it matches the tolerant behavior
// expected of email body extraction.
func StripHTMLTags(htmlText string) string {
	text := htmlTagRe.ReplaceAllString(htmlText, "")

	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
	)
	text = replacer.Replace(text)

	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	text = repeatedSpacesRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// IsMessageIDHeader reports whether text looks like an email Message-ID
// header: a single 10-200 char token of the form local@domain where the
// domain contains a dot or dash.
func IsMessageIDHeader(text string) bool {
	text = strings.TrimSpace(text)

	if !strings.Contains(text, "@") {
		return false
	}
	if strings.Contains(text, " ") {
		return false
	}
	if len(text) < 10 || len(text) > 200 {
		return false
	}

	parts := strings.Split(text, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}

	return strings.Contains(domain, ".") || strings.Contains(domain, "-")
}
