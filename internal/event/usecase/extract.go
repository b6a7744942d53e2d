package usecase

import (
	"context"
	"fmt"

	"smarteventadder/internal/event"
	"smarteventadder/pkg/gemini"
)

// Extract runs the extraction pipeline on raw email text: sanitize, build the
// prompt, call the model once, strip response wrapping, parse, validate.
func (uc *implUseCase) Extract(ctx context.Context, input event.ExtractInput) (event.ExtractOutput, error) {
	limit := input.MaxLength
	if limit <= 0 {
		limit = event.MaxEmailLengthHTTP
	}

	text, truncated, err := sanitizeEmailText(input.EmailText, limit)
	if err != nil {
		return event.ExtractOutput{}, err
	}
	if truncated {
		uc.l.Warnf(ctx, "Extract: email content truncated before extraction (limit %d)", limit)
	}

	uc.l.Infof(ctx, "Extract: analyzing email (%d characters, model %s)", len(text), uc.llm.Model())

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildEventExtractionPrompt(text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 1024,
		},
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return event.ExtractOutput{}, fmt.Errorf("event extraction failed: %w", err)
	}

	raw, err := resp.Text()
	if err != nil {
		return event.ExtractOutput{}, fmt.Errorf("event extraction failed: %w", err)
	}
	uc.l.Debugf(ctx, "Extract: model raw response: %s", raw)

	rec, err := parseRecord(stripFence(raw))
	if err != nil {
		uc.l.Errorf(ctx, "Extract: unparseable model response %q: %v", raw, err)
		return event.ExtractOutput{}, err
	}

	validated, warnings := validateEventRecord(rec)
	for _, w := range warnings {
		uc.l.Warnf(ctx, "Extract: %s", w)
	}

	return event.ExtractOutput{
		Record:    validated,
		Warnings:  warnings,
		Truncated: truncated,
	}, nil
}
