package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smarteventadder/pkg/gemini"
)

func TestBuildEventExtractionPrompt(t *testing.T) {
	emailText := "Team meeting on January 15, 2024 at 2:30 PM in Conference Room A"

	prompt := gemini.BuildEventExtractionPrompt(emailText)

	if !strings.Contains(prompt, "ONLY a valid JSON object") {
		t.Errorf("prompt missing JSON-only instruction")
	}
	for _, key := range []string{"summary", "date", "start_time", "location"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("prompt missing schema key %q", key)
		}
	}
	if !strings.Contains(prompt, "YYYY-MM-DD") {
		t.Errorf("prompt missing date normalization rule")
	}
	if !strings.Contains(prompt, "HH:MM") {
		t.Errorf("prompt missing time normalization rule")
	}
	if !strings.Contains(prompt, "null") {
		t.Errorf("prompt missing null rule")
	}
	if !strings.Contains(prompt, emailText) {
		t.Errorf("prompt missing source email text")
	}

	// Deterministic: same input, same prompt.
	if prompt != gemini.BuildEventExtractionPrompt(emailText) {
		t.Errorf("prompt builder is not deterministic")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Read mock command
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-project", "us-central1", nil)
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}

		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected content response: %s", text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}

func TestGenerateResponse_Text_Empty(t *testing.T) {
	var resp gemini.GenerateResponse
	if _, err := resp.Text(); err != gemini.ErrEmptyResponse {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}
