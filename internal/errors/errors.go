package errors

import "errors"

// Sentinel errors shared across the application. Services return these
// (usually wrapped with fmt.Errorf and %w) instead of HTTP status codes;
// the API layer maps them to responses with errors.Is().

var (
	// ErrNotFound signifies that a requested resource could not be located.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrUnreachable signifies that the upstream Ollama service could not
	// be contacted. Most callers downgrade this to a data-level signal
	// (a terminal Error record, a stream error event, or running=false)
	// rather than surfacing it to the client as a transport error.
	ErrUnreachable = errors.New("ollama unreachable")

	// ErrInternal signifies an unexpected server-side error. Used to avoid
	// leaking implementation details to the client.
	ErrInternal = errors.New("internal server error")
)
