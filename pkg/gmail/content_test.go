package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	gmailapi "google.golang.org/api/gmail/v1"
)

func TestIsMessageIDHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"typical header", "abc123@mail.example.com", true},
		{"server identifier domain", "684f4d406f3ab@tb-yyk-ai803", true},
		{"surrounding whitespace", "  abc123@mail.example.com  ", true},
		{"no at sign", "justsomeplaintext", false},
		{"contains space", "abc 123@example.com", false},
		{"too short", "a@b.c", false},
		{"too long", strings.Repeat("a", 200) + "@example.com", false},
		{"two at signs", "a@b@example.com", false},
		{"empty local part", "@example.com.long.enough", false},
		{"empty domain part", "abcdefghijk@", false},
		{"domain without dot or dash", "abcdefg@localhost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMessageIDHeader(tt.text); got != tt.want {
				t.Errorf("IsMessageIDHeader(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities replaced", "Tom&nbsp;&amp;&nbsp;Jerry &lt;3 &quot;quoted&quot;", `Tom & Jerry <3 "quoted"`},
		{"whitespace collapsed", "a    b\n\n\n\nc", "a b\n\nc"},
		{"plain text untouched", "no markup here", "no markup here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTMLTags(tt.in); got != tt.want {
				t.Errorf("StripHTMLTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	body := base64.RawURLEncoding.EncodeToString([]byte("Meeting tomorrow at 10am"))

	msg := &gmailapi.Message{
		Payload: &gmailapi.MessagePart{
			MimeType: "text/plain",
			Headers: []*gmailapi.MessagePartHeader{
				{Name: "Subject", Value: "Team Sync"},
				{Name: "From", Value: "alice@example.com"},
				{Name: "Date", Value: "Mon, 15 Jan 2024 09:00:00 +0900"},
				{Name: "Message-ID", Value: "<abc@mail.example.com>"},
			},
			Body: &gmailapi.MessagePartBody{Data: body},
		},
	}

	got := FormatMessage(msg)

	for _, want := range []string{
		"Subject: Team Sync",
		"From: alice@example.com",
		"Date: Mon, 15 Jan 2024 09:00:00 +0900",
		"Message-ID: <abc@mail.example.com>",
		"Meeting tomorrow at 10am",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted message missing %q:\n%s", want, got)
		}
	}
}

func TestExtractBody_Multipart(t *testing.T) {
	plain := base64.RawURLEncoding.EncodeToString([]byte("plain part. "))
	html := base64.RawURLEncoding.EncodeToString([]byte("<div>html part</div>"))

	payload := &gmailapi.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmailapi.MessagePart{
			{MimeType: "text/plain", Body: &gmailapi.MessagePartBody{Data: plain}},
			{MimeType: "text/html", Body: &gmailapi.MessagePartBody{Data: html}},
			{MimeType: "application/pdf", Body: &gmailapi.MessagePartBody{Data: "ignored"}},
		},
	}

	got := extractBody(payload)
	if !strings.Contains(got, "plain part") {
		t.Errorf("missing plain part: %q", got)
	}
	if !strings.Contains(got, "html part") || strings.Contains(got, "<div>") {
		t.Errorf("html part not stripped: %q", got)
	}
}

func TestExtractBody_BadData(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "text/plain",
		Body:     &gmailapi.MessagePartBody{Data: "!!! not base64 !!!"},
	}
	if got := extractBody(payload); got != "" {
		t.Errorf("expected undecodable part to be skipped, got %q", got)
	}
}
