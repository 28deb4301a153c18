package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Errorf("expected gemini-2.5-flash, got %q", got)
	}
	if got := resolveModel("gemini-pro", geminiModels); got != "gemini-2.5-pro" {
		t.Errorf("expected gemini-2.5-pro, got %q", got)
	}
	if got := resolveModel("gemini-1.5-flash-002", geminiModels); got != "gemini-1.5-flash-002" {
		t.Errorf("expected pass-through for direct IDs, got %q", got)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a quiz question",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"correct_index": map[string]any{"type": "integer"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
		},
		"required": []any{"question", "options", "correct_index"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object type, got %q", schema.Type)
	}
	if schema.Description != "a quiz question" {
		t.Errorf("description not carried: %q", schema.Description)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != genai.TypeString {
		t.Errorf("question should be a string, got %q", schema.Properties["question"].Type)
	}
	if schema.Properties["correct_index"].Type != genai.TypeInteger {
		t.Errorf("correct_index should be an integer, got %q", schema.Properties["correct_index"].Type)
	}

	options := schema.Properties["options"]
	if options.Type != genai.TypeArray {
		t.Fatalf("options should be an array, got %q", options.Type)
	}
	if options.Items == nil || options.Items.Type != genai.TypeString {
		t.Errorf("options items should be strings")
	}

	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Errorf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if len(schema.Required) != 3 {
		t.Errorf("expected 3 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiType_Default(t *testing.T) {
	if got := mapGeminiType("unknown"); got != genai.TypeString {
		t.Errorf("unknown types should fall back to string, got %q", got)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rateLimited *RateLimitError
	err := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests})
	if !errors.As(err, &rateLimited) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}

	var unavailable *UnavailableError
	err = mapGeminiError(&genai.APIError{Code: http.StatusInternalServerError})
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}
