package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// APIResponse represents the wire-level response envelope
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

// Success sends a success acknowledgment
func Success(w http.ResponseWriter, message string) {
	SendJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: message,
	})
}

// Failure sends an error response with the given status code and message
func Failure(w http.ResponseWriter, statusCode int, message string) {
	SendJSON(w, statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// Unauthorized sends the fixed 401 response for missing or unknown API keys
func Unauthorized(w http.ResponseWriter) {
	SendJSON(w, http.StatusUnauthorized, APIResponse{
		Success: false,
		Message: "Unauthorised Access! API Key is required!",
	})
}

// ValidationFailed sends a response enumerating failing fields
func ValidationFailed(w http.ResponseWriter, statusCode int, fieldErrors map[string]string) {
	SendJSON(w, statusCode, APIResponse{
		Success: false,
		Message: "Data Validation Failed!",
		Error:   fieldErrors,
	})
}

// SendJSON encodes and sends a JSON response
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
