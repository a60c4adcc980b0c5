package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDoc_IsValidJSON(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("doc is not JSON: %v", err)
	}
	info := doc["info"].(map[string]any)
	if info["title"] != "bbcenglish API" {
		t.Fatalf("title = %v", info["title"])
	}
	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/convert", "/rules", "/rules/{american}", "/meta/health"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
}
