package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProjectDB represents a project row in the database
type ProjectDB struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id"` // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner of the project
	Name      string    `json:"name" db:"name"`             // Display name
	SceneData string    `json:"scene_data" db:"scene_data"` // Serialized editor scene
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last modification timestamp
}

// Project is a project loaded for its owner with the scene decoded
type Project struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Scene json.RawMessage `json:"scene"`
}

// ProjectSummary is a project entry of the owner's project list
type ProjectSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}
