// Package api holds the JSON response helpers shared by handlers and
// middleware.
package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standardized error body. Field names the offending
// input field for validation failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes a standardized JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// FieldError writes a validation error naming the offending field.
func FieldError(w http.ResponseWriter, status int, message, field string) {
	JSON(w, status, ErrorResponse{Error: message, Field: field})
}
