package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocument(t *testing.T) {
	raw := SwaggerInfo.ReadDoc()

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered swagger document is not valid JSON: %v", err)
	}

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatal("document has no paths object")
	}
	for _, route := range []string{
		"/api/v1/emails/parse",
		"/api/v1/emails/fetch",
		"/api/v1/events",
		"/api/v1/workflow",
		"/health",
	} {
		if _, ok := paths[route]; !ok {
			t.Errorf("document missing route %s", route)
		}
	}

	info, ok := doc["info"].(map[string]any)
	if !ok || info["title"] != "SmartEventAdder API" {
		t.Errorf("unexpected info block: %v", doc["info"])
	}
}
