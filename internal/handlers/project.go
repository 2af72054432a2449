package handlers

//go:generate mockgen -source=project.go -destination=project_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

// ProjectGetter defines the interface that the project service must implement.
type ProjectGetter interface {
	Get(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error)
}

// ProjectResponse represents a loaded project
// swagger:model ProjectResponse
type ProjectResponse struct {
	// default: success
	Status string          `json:"status"`
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Scene  json.RawMessage `json:"scene" swaggertype:"object"`
}

// NewProjectHandler returns an HTTP handler that loads one project.
// @Summary Get project
// @Description Returns the name and scene of a project owned by the caller.
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} handlers.ProjectResponse
// @Failure 401 {object} handlers.StatusResponse "Unauthorized"
// @Failure 403 {object} handlers.StatusResponse "Project belongs to another user"
// @Failure 404 {object} handlers.StatusResponse "Project not found"
// @Failure 500 {object} handlers.StatusResponse "Corrupted scene or internal error"
// @Security BearerAuth
// @Router /api/project/{id} [get]
func NewProjectHandler(svc ProjectGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}

		project, err := svc.Get(r.Context(), userID, projectID)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProjectResponse{
			Status: statusSuccess,
			ID:     project.ID,
			Name:   project.Name,
			Scene:  project.Scene,
		})
	}
}

// writeProjectError maps project service errors to responses.
func writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, services.ErrProjectForbidden):
		writeError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, services.ErrCorruptedData):
		writeError(w, http.StatusInternalServerError, "Project data is corrupted")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
