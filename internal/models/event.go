package models

import "time"

// Event types published to the event stream.
const (
	EventUserRegistered = "user.registered"
	EventProjectSaved   = "project.saved"
	EventProjectDeleted = "project.deleted"
	EventDeviceAdded    = "device.added"
)

// Event describes a completed domain operation.
type Event struct {
	Type      string    `json:"type"`                 // One of the Event* constants
	Key       string    `json:"key"`                  // Entity identifier, used as the message key
	UserID    string    `json:"user_id,omitempty"`    // Acting user, when known
	ProjectID string    `json:"project_id,omitempty"` // Affected project
	File      string    `json:"file,omitempty"`       // Affected catalog file
	Timestamp time.Time `json:"timestamp"`            // Time the operation completed
}
