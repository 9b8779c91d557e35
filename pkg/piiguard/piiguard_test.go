package piiguard

import (
	"encoding/base64"
	"strings"
	"testing"
)

// fakeBinary builds a blob that starts with a PDF header and carries
// plenty of non-text bytes.
func fakeBinary() []byte {
	blob := []byte("%PDF-1.4 ")
	for i := 0; i < 512; i++ {
		blob = append(blob, byte(i%256))
	}
	return blob
}

func TestIsBase64Binary(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(fakeBinary())

	if !IsBase64Binary(encoded) {
		t.Error("Expected encoded binary blob to be flagged")
	}

	tests := []struct {
		name  string
		value string
	}{
		{"ordinary prose", "hello world"},
		{"short base64", "SGVsbG8="},
		{"under 40 chars", base64.StdEncoding.EncodeToString([]byte("tiny"))},
		{"long prose with spaces", strings.Repeat("the quick brown fox jumps over the lazy dog ", 10)},
		{"encoded plain text", base64.StdEncoding.EncodeToString([]byte(strings.Repeat("plain readable text content here. ", 5)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsBase64Binary(tt.value) {
				t.Errorf("Value should not be flagged: %q", tt.value[:min(40, len(tt.value))])
			}
		})
	}
}

func TestContainsRawPDFBytes(t *testing.T) {
	if !ContainsRawPDFBytes("%PDF-1.4 content here") {
		t.Error("Expected PDF marker in string to be detected")
	}
	if !ContainsRawPDFBytes([]byte("junk %PDF-1.7 junk")) {
		t.Error("Expected PDF marker in bytes to be detected")
	}
	if ContainsRawPDFBytes("a perfectly normal sentence") {
		t.Error("Plain text must not be flagged")
	}
	if ContainsRawPDFBytes(42) {
		t.Error("Non-string values must not be flagged")
	}
}

func TestContainsPIIFieldName(t *testing.T) {
	if !ContainsPIIFieldName("user email_address was updated") {
		t.Error("Expected PII field name to be detected")
	}
	if ContainsPIIFieldName("coverage tier updated") {
		t.Error("Non-PII text must not be flagged")
	}
}

func TestSanitizeReplacesUnsafeValues(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(fakeBinary())
	data := map[string]any{
		"state":        "CA",
		"file_content": encoded,
		"raw":          []byte("some bytes"),
		"inline_pdf":   "%PDF-1.4 stream",
		"nested": map[string]any{
			"content": encoded,
			"label":   "receipt",
		},
		"items": []any{"safe", encoded, map[string]any{"blob": encoded}},
	}

	clean := Sanitize(data)

	if clean["state"] != "CA" {
		t.Errorf("Safe value was altered: %v", clean["state"])
	}
	if clean["file_content"] != Sentinel {
		t.Errorf("Expected sentinel for base64 binary, got %v", clean["file_content"])
	}
	if clean["raw"] != Sentinel {
		t.Errorf("Expected sentinel for raw bytes, got %v", clean["raw"])
	}
	if clean["inline_pdf"] != Sentinel {
		t.Errorf("Expected sentinel for inline PDF, got %v", clean["inline_pdf"])
	}

	nested := clean["nested"].(map[string]any)
	if nested["content"] != Sentinel {
		t.Errorf("Expected sentinel for nested binary, got %v", nested["content"])
	}
	if nested["label"] != "receipt" {
		t.Errorf("Nested safe value was altered: %v", nested["label"])
	}

	items := clean["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("Expected flagged string dropped from list, got %d items", len(items))
	}
	if items[0] != "safe" {
		t.Errorf("Safe list item was altered: %v", items[0])
	}
	if items[1].(map[string]any)["blob"] != Sentinel {
		t.Error("Expected sentinel inside list map")
	}

	// Input must not be mutated.
	if data["file_content"] != encoded {
		t.Error("Sanitize mutated its input")
	}
}

func TestValidateReportsPaths(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(fakeBinary())
	data := map[string]any{
		"nested": map[string]any{"content": encoded},
		"items":  []any{map[string]any{"blob": []byte("raw")}},
	}

	violations := Validate(data)
	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d: %v", len(violations), violations)
	}

	found := map[string]bool{}
	for _, v := range violations {
		found[v] = true
	}
	if !found["nested.content: contains base64 binary data"] {
		t.Errorf("Missing nested path violation, got %v", violations)
	}
	if !found["items[0].blob: contains raw bytes"] {
		t.Errorf("Missing indexed path violation, got %v", violations)
	}
}

func TestValidateCleanDataPasses(t *testing.T) {
	data := map[string]any{
		"state": "CA",
		"tier":  1,
		"items": []any{map[string]any{"id": "1", "label": "test"}},
	}
	if violations := Validate(data); len(violations) != 0 {
		t.Errorf("Expected no violations for clean data, got %v", violations)
	}
}

func TestSanitizeNestedLists(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(fakeBinary())
	data := map[string]any{
		"attachments": []any{[]any{"safe", encoded, []byte("raw")}},
	}

	clean := Sanitize(data)

	outer := clean["attachments"].([]any)
	inner := outer[0].([]any)
	if len(inner) != 1 || inner[0] != "safe" {
		t.Errorf("Expected only the safe item to survive, got %v", inner)
	}
}

func TestValidateAfterSanitizeIsEmpty(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(fakeBinary())
	inputs := []map[string]any{
		{"a": encoded},
		{"a": []byte{0, 1, 2}},
		{"a": "%PDF-1.4"},
		{"deep": map[string]any{"deeper": []any{encoded, map[string]any{"x": []byte("y")}}}},
		{"mixed": []any{"fine", 3.14, true, nil}},
		{"attachments": []any{[]any{encoded}}},
		{"triple": []any{[]any{[]any{encoded, []byte("raw")}}}},
	}

	for _, input := range inputs {
		if violations := Validate(Sanitize(input)); len(violations) != 0 {
			t.Errorf("Sanitize left violations behind: %v", violations)
		}
	}
}
