package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad", http.StatusBadRequest)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad" {
		t.Errorf("expected message 'bad', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeExternalService, "upstream", http.StatusBadGateway)
	if !err.Retryable {
		t.Error("EXTERNAL_SERVICE_ERROR should be retryable")
	}
}

func TestAppError_ConfigurationMissing(t *testing.T) {
	err := ConfigurationMissing("openai.API")
	if err.Code != ErrCodeConfigurationMissing {
		t.Errorf("expected CONFIGURATION_MISSING, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "openai.API") {
		t.Errorf("message should name the component, got %q", err.Message)
	}
	if err.Details["component"] != "openai.API" {
		t.Errorf("expected component detail, got %v", err.Details["component"])
	}
}

func TestAppError_Is_ComparesCode(t *testing.T) {
	sentinel := ConfigurationMissing("a")
	other := ConfigurationMissing("b")
	wrapped := fmt.Errorf("dispatch: %w", other)

	if !stderrors.Is(wrapped, sentinel) {
		t.Error("expected errors.Is to match by code through wrapping")
	}
	if stderrors.Is(MissingField("x"), sentinel) {
		t.Error("different codes must not match")
	}
	if stderrors.Is(sentinel, stderrors.New("plain")) {
		t.Error("plain error must not match")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Internal(nil).WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should include the cause, got %q", err.Error())
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetail("k", "v")
	if err.Details["k"] != "v" {
		t.Errorf("expected detail k=v, got %v", err.Details)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeMissingField, "missing", http.StatusBadRequest)
	if got, want := err.Error(), "MISSING_FIELD: missing"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		status    int
		retryable bool
	}{
		{"CredentialUnresolved", CredentialUnresolved("Authorization", stderrors.New("vault down")), ErrCodeCredentialUnresolved, http.StatusUnauthorized, false},
		{"InvalidInput", InvalidInput("body", "bad json"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"Validation", Validation("x: is required"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"MissingField", MissingField("api_key"), ErrCodeMissingField, http.StatusBadRequest, false},
		{"InvalidFormat", InvalidFormat("content-type", "application/json"), ErrCodeInvalidFormat, http.StatusBadRequest, false},
		{"ExternalService 500", ExternalServiceError("openai", 500, nil), ErrCodeExternalService, 500, true},
		{"ExternalService 429", ExternalServiceError("openai", 429, nil), ErrCodeExternalService, 429, true},
		{"ExternalService 400", ExternalServiceError("openai", 400, nil), ErrCodeExternalService, 400, false},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("code = %s, want %s", tc.err.Code, tc.code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("status = %d, want %d", tc.err.HTTPStatus, tc.status)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("retryable = %v, want %v", tc.err.Retryable, tc.retryable)
			}
		})
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", MissingField("model"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}

	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("expected AsAppError to fail for plain error")
	}
}
