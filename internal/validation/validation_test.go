package validation_test

import (
	"strings"
	"testing"

	"github.com/codepromptu/server/internal/validation"
)

type payload struct {
	DisplayName string `json:"display_name" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

func TestStructValid(t *testing.T) {
	err := validation.Struct(payload{DisplayName: "greet", Content: "Hi"})
	if err != nil {
		t.Errorf("Struct(valid) error = %v, want nil", err)
	}
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := validation.Struct(payload{Content: "Hi"})
	if err == nil {
		t.Fatal("Struct(missing display_name) should return error")
	}
	if !strings.Contains(err.Error(), "display_name is required") {
		t.Errorf("error = %q, want mention of display_name", err)
	}
}

func TestStructCollectsAllFailures(t *testing.T) {
	err := validation.Struct(payload{})
	if err == nil {
		t.Fatal("Struct(empty) should return error")
	}
	for _, field := range []string{"display_name", "content"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error = %q, missing field %s", err, field)
		}
	}
}
