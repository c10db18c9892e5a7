package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidBudget, "budget must be >= 0, got %v", -1)

	if err.Code != ErrCodeInvalidBudget {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidBudget)
	}

	if err.Message != "budget must be >= 0, got -1" {
		t.Errorf("Message = %v, want %v", err.Message, "budget must be >= 0, got -1")
	}

	expected := "INVALID_BUDGET: budget must be >= 0, got -1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidScenario, cause, "decode scenario")

	if err.Code != ErrCodeInvalidScenario {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScenario)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := err.Error(), "INVALID_SCENARIO: decode scenario: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidRow, "test"), ErrCodeInvalidRow, true},
		{"non-matching code", New(ErrCodeInvalidRow, "test"), ErrCodeInvalidBudget, false},
		{"outer code wins", Wrap(ErrCodeInvalidScenario, New(ErrCodeInvalidRow, "inner"), "outer"), ErrCodeInvalidScenario, true},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeContractViolation, "x")); got != ErrCodeContractViolation {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeContractViolation)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidRow, "row id cannot be empty")); got != "row id cannot be empty" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestViolation(t *testing.T) {
	defer func() {
		err := FromPanic(recover())
		if !Is(err, ErrCodeContractViolation) {
			t.Fatalf("recovered %v, want CONTRACT_VIOLATION", err)
		}
		if UserMessage(err) != "count 5 out of range [0, 3]" {
			t.Errorf("message = %q", UserMessage(err))
		}
	}()
	Violation("count %d out of range [0, %d]", 5, 3)
}

func TestFromPanic(t *testing.T) {
	if FromPanic(nil) != nil {
		t.Error("FromPanic(nil) should be nil")
	}
	if got := GetCode(FromPanic("boom")); got != ErrCodeInternal {
		t.Errorf("FromPanic(string) code = %v, want %v", got, ErrCodeInternal)
	}
	cause := errors.New("index out of range")
	err := FromPanic(cause)
	if !errors.Is(err, cause) || GetCode(err) != ErrCodeInternal {
		t.Errorf("FromPanic(error) = %v", err)
	}
}
