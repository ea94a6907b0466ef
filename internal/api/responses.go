package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "modeldeck/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// CancelResponse is returned by the download cancellation endpoint.
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// HostnameResponse wraps the machine hostname reported to the frontend.
type HostnameResponse struct {
	Hostname string `json:"hostname"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps custom business-layer errors to appropriate HTTP status codes and formats
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// For validation errors, the error message from the service layer
		// is already descriptive and user-friendly.
		message = err.Error()
	case errors.Is(err, app_errors.ErrUnreachable):
		statusCode = http.StatusServiceUnavailable
		message = "The Ollama service is not reachable."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// sendStreamError sends a structured error message over a Server-Sent Events (SSE) stream.
// This ensures that clients consuming streams can handle errors gracefully.
func sendStreamError(w http.ResponseWriter, message string) {
	slog.Warn("Sending stream error to client", "message", message)
	errorPayload := ErrorResponse{Error: message}

	jsonData, err := json.Marshal(errorPayload)
	if err != nil {
		slog.Error("Failed to marshal stream error payload", "error", err)
		return
	}

	// The `event: error` line allows clients to add a specific event listener
	// for errors, e.g., `eventSource.addEventListener('error', ...)`.
	if _, err := fmt.Fprintf(w, "event: error\ndata: %s\n\n", string(jsonData)); err != nil {
		// This is often an expected I/O error if the client closes the connection.
		slog.Warn("Failed to write stream error, client might have disconnected", "error", err)
		return
	}

	// Flush the writer to ensure the message is sent to the client immediately.
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// writeStreamData writes a raw text payload as an SSE data frame. Token
// fragments pass through exactly as produced upstream, so no JSON wrapping
// and no whitespace normalization happens here.
func writeStreamData(w http.ResponseWriter, data string) error {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		// A write failure here is a strong indicator of a closed connection.
		return fmt.Errorf("failed to write data to stream: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
