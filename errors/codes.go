package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Client setup errors
const (
	// ErrCodeConfigurationMissing indicates a dispatcher was used without a Configuration.
	ErrCodeConfigurationMissing ErrorCode = "CONFIGURATION_MISSING"
	// ErrCodeCredentialUnresolved indicates a deferred credential could not be resolved.
	ErrCodeCredentialUnresolved ErrorCode = "CREDENTIAL_UNRESOLVED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value has an unexpected format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Remote and internal errors
const (
	// ErrCodeExternalService indicates the remote API answered with an error.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeInternal indicates an unexpected local failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeExternalService: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// openaikit never retries on its own; the flag is a hint for callers.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
