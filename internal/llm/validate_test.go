package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func scanTestSchema() *Schema {
	return &Schema{
		Name:        "test-scan",
		Description: "A scanned problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{"type": "string"},
				"formulas": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"level": map[string]any{"type": "string", "enum": []any{"6eme", "5eme", "4eme"}},
			},
			"required": []any{"hint", "formulas"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"hint":"Factorise d'abord","formulas":["(a+b)^2 = a^2 + 2ab + b^2"]}`)
	if err := validateResponse(scanTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseValidWithOptional(t *testing.T) {
	raw := json.RawMessage(`{"hint":"ok","formulas":[],"level":"5eme"}`)
	if err := validateResponse(scanTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"hint":"seul"}`)
	err := validateResponse(scanTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"hint":42,"formulas":[]}`)
	err := validateResponse(scanTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"hint":"ok","formulas":[],"level":"CP"}`)
	err := validateResponse(scanTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateResponseWrongItemType(t *testing.T) {
	raw := json.RawMessage(`{"hint":"ok","formulas":[1,2]}`)
	err := validateResponse(scanTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(scanTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseEmpty(t *testing.T) {
	if err := validateResponse(scanTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
