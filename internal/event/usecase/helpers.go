package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smarteventadder/internal/event"
	"smarteventadder/internal/model"
)

// dangerousFragments are removed from email text before it reaches the model.
// Plain substring removal, not HTML-aware: a legitimate URL containing
// "data:" will be mangled. Known limitation of the sanitization contract.
var dangerousFragments = []string{"<script", "</script>", "javascript:", "data:"}

// sanitizeEmailText trims, strips dangerous fragments, and enforces length
// bounds on email text. The minimum applies to the post-sanitization text.
func sanitizeEmailText(raw string, maxLength int) (text string, truncated bool, err error) {
	text = strings.TrimSpace(raw)
	if text == "" {
		return "", false, event.ErrEmptyEmail
	}

	for _, fragment := range dangerousFragments {
		text = strings.ReplaceAll(text, fragment, "")
	}

	if maxLength <= 0 {
		maxLength = event.MaxEmailLengthHTTP
	}
	if runes := []rune(text); len(runes) > maxLength {
		text = string(runes[:maxLength])
		truncated = true
	}

	if len(strings.TrimSpace(text)) < event.MinEmailLength {
		return "", truncated, event.ErrEmailTooShort
	}

	return text, truncated, nil
}

// fenceKind classifies how a model response is wrapped.
type fenceKind int

const (
	fenceNone fenceKind = iota
	fenceJSON           // ```json ... ```
	fenceBare           // ``` ... ```
)

const fenceMarker = "```"

// detectFence classifies the wrapping of a trimmed response. Only a fence at
// the very start of the text is recognized.
func detectFence(trimmed string) fenceKind {
	switch {
	case strings.HasPrefix(trimmed, fenceMarker+"json"):
		return fenceJSON
	case strings.HasPrefix(trimmed, fenceMarker):
		return fenceBare
	default:
		return fenceNone
	}
}

// stripFence removes a leading code fence (with or without a "json" tag) and
// its matching closing fence, returning the inner content. Unwrapped text is
// returned trimmed and otherwise unchanged.
func stripFence(raw string) string {
	trimmed := strings.TrimSpace(raw)

	var inner string
	switch detectFence(trimmed) {
	case fenceJSON:
		inner = trimmed[len(fenceMarker+"json"):]
	case fenceBare:
		inner = trimmed[len(fenceMarker):]
	default:
		return trimmed
	}

	if idx := strings.LastIndex(inner, fenceMarker); idx >= 0 {
		inner = inner[:idx]
	}
	return strings.TrimSpace(inner)
}

// parseRecord decodes the cleaned model output. Any decoding failure is a
// malformed-response error; a bad response is never coerced into an empty
// record.
func parseRecord(cleaned string) (model.EventRecord, error) {
	var rec model.EventRecord
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return model.EventRecord{}, fmt.Errorf("%w: %v", event.ErrMalformedResponse, err)
	}
	return rec, nil
}

// validateEventRecord guarantees the record invariants: date and start_time
// either parse under their canonical formats or are nulled with a warning
// naming the offending value. Summary and location pass through verbatim.
// Idempotent: validating a validated record changes nothing.
func validateEventRecord(rec model.EventRecord) (model.EventRecord, []string) {
	var warnings []string

	if rec.Date != nil {
		if _, err := time.Parse("2006-01-02", *rec.Date); err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid date format: %s", *rec.Date))
			rec.Date = nil
		}
	}

	if rec.StartTime != nil {
		if _, err := time.Parse("15:04", *rec.StartTime); err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid time format: %s", *rec.StartTime))
			rec.StartTime = nil
		}
	}

	return rec, warnings
}
