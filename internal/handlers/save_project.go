package handlers

//go:generate mockgen -source=save_project.go -destination=save_project_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

// ProjectSaver defines the interface that the project service must implement.
type ProjectSaver interface {
	Save(ctx context.Context, ownerID uuid.UUID, projectID *uuid.UUID, name string, scene json.RawMessage) (uuid.UUID, error)
}

// SaveProjectRequest represents the JSON body for saving a project
// swagger:model SaveProjectRequest
type SaveProjectRequest struct {
	// Project to overwrite; a new project is created when empty or not owned
	ID string `json:"id,omitempty"`

	// Project name
	// default: My flat
	Name string `json:"name,omitempty"`

	// Scene produced by the editor
	Scene json.RawMessage `json:"scene" swaggertype:"object"`
}

// SaveProjectResponse represents a successful save
// swagger:model SaveProjectResponse
type SaveProjectResponse struct {
	// default: success
	Status string `json:"status"`

	// default: Project saved
	Message string `json:"message"`

	// Id of the saved project
	ID uuid.UUID `json:"id"`
}

// NewSaveProjectHandler returns an HTTP handler that creates or updates a project.
// @Summary Save project
// @Description Overwrites the project with the given id when the caller owns it, otherwise creates a new project.
// @Tags projects
// @Accept json
// @Produce json
// @Param saveProjectRequest body handlers.SaveProjectRequest true "Project"
// @Success 200 {object} handlers.SaveProjectResponse
// @Failure 400 {object} handlers.StatusResponse "Invalid request body or scene"
// @Failure 401 {object} handlers.StatusResponse "Unauthorized"
// @Failure 500 {object} handlers.StatusResponse "Internal server error"
// @Security BearerAuth
// @Router /api/save_project [post]
func NewSaveProjectHandler(svc ProjectSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req SaveProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var projectID *uuid.UUID
		if id, err := uuid.Parse(req.ID); err == nil {
			projectID = &id
		}

		id, err := svc.Save(r.Context(), userID, projectID, req.Name, req.Scene)
		if err != nil {
			if errors.Is(err, services.ErrInvalidScene) {
				writeError(w, http.StatusBadRequest, "Scene must be valid JSON")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, SaveProjectResponse{
			Status:  statusSuccess,
			Message: "Project saved",
			ID:      id,
		})
	}
}
