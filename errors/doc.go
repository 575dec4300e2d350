// Package errors provides the structured error type shared by openaikit
// packages. Errors carry a machine-readable code, a human message, a
// retryable hint and optional details, and compare by code with errors.Is.
package errors
