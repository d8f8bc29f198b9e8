package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleRequest struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=ADMIN SALES"`
}

func TestMessage_ValidationErrors(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(sampleRequest{Email: "not-an-email", Role: "CLERK"})
	if err == nil {
		t.Fatal("Expected validation to fail")
	}

	message := Message(err)
	for _, want := range []string{"name is required", "email must be a valid email address", "role must be one of: ADMIN SALES"} {
		if !strings.Contains(message, want) {
			t.Errorf("Expected message to contain %q, got %q", want, message)
		}
	}
}

func TestMessage_NonValidatorError(t *testing.T) {
	if got := Message(errors.New("unexpected EOF")); got != "Request body is invalid" {
		t.Errorf("Expected generic message, got %q", got)
	}
}

func TestMessage_Nil(t *testing.T) {
	if got := Message(nil); got != "" {
		t.Errorf("Expected empty message for nil error, got %q", got)
	}
}
