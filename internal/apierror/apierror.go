// Package apierror defines the JSON error envelopes the HTTP layer returns.
// Handlers never serialize raw errors; whatever a client sees passes through
// one of these shapes, so SQL messages and stack traces stay internal.
package apierror

// APIError carries a single human-readable message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError { return &APIError{Detail: msg} }

func (e *APIError) Error() string { return e.Detail }

// ValidationError adds a per-field breakdown for 400 responses produced by
// request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Datos de entrada inválidos", Fields: fields}
}
