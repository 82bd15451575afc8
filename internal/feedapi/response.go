package feedapi

import (
	"encoding/json"
	"net/http"
	"time"

	"comedy-houston/internal/models"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// EventList is the /api/events payload: the visible subset plus the
// feed metadata the filter controls are built from.
type EventList struct {
	LastUpdated string         `json:"last_updated"`
	Count       int            `json:"count"`
	Venues      []string       `json:"venues"`
	Events      []models.Event `json:"events"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func errorResponse(message, detail string) APIResponse {
	return APIResponse{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
