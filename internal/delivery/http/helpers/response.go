package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope for all API error responses.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// Error messages shared across handlers.
const (
	MsgAccessDenied = "Access denied"
	MsgServerError  = "Server error"
)

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError sets Content-Type to application/json, writes statusCode, and
// encodes an ErrorResponse with the given message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Errors: message})
}
