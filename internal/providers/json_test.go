package providers

import (
	"encoding/json"
	"testing"
)

func TestParseStructuredJSON_Plain(t *testing.T) {
	got, err := ParseStructuredJSON(`{"origen":"Enfermedad común"}`)
	if err != nil {
		t.Fatalf("ParseStructuredJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if parsed["origen"] != "Enfermedad común" {
		t.Fatalf("expected origen field, got %#v", parsed)
	}
}

func TestParseStructuredJSON_StripsCodeFence(t *testing.T) {
	content := "```json\n{\"ok\":true}\n```"
	got, err := ParseStructuredJSON(content)
	if err != nil {
		t.Fatalf("ParseStructuredJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if ok, _ := parsed["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %#v", parsed)
	}
}

func TestParseStructuredJSON_SurroundingProse(t *testing.T) {
	content := `Aquí está el resultado solicitado:

{"pcl_total": "33.5"}

Espero que sea útil.`
	got, err := ParseStructuredJSON(content)
	if err != nil {
		t.Fatalf("ParseStructuredJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if parsed["pcl_total"] != "33.5" {
		t.Fatalf("expected pcl_total=33.5, got %#v", parsed)
	}
}

func TestParseStructuredJSON_Empty(t *testing.T) {
	if _, err := ParseStructuredJSON("   "); err == nil {
		t.Fatal("ParseStructuredJSON() expected error for empty content")
	}
}

func TestParseStructuredJSON_Unparseable(t *testing.T) {
	if _, err := ParseStructuredJSON("no json here at all"); err == nil {
		t.Fatal("ParseStructuredJSON() expected error for non-JSON content")
	}
}

func TestParseStructuredJSON_TruncatedObject(t *testing.T) {
	if _, err := ParseStructuredJSON(`{"origen": "Enfermedad`); err == nil {
		t.Fatal("ParseStructuredJSON() expected error for truncated JSON")
	}
}
