package handlers

//go:generate mockgen -source=delete_project.go -destination=delete_project_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProjectDeleter defines the interface that the project service must implement.
type ProjectDeleter interface {
	Delete(ctx context.Context, ownerID, projectID uuid.UUID) error
}

// NewDeleteProjectHandler returns an HTTP handler that deletes a project.
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} handlers.StatusResponse
// @Failure 401 {object} handlers.StatusResponse "Unauthorized"
// @Failure 403 {object} handlers.StatusResponse "Project belongs to another user"
// @Failure 404 {object} handlers.StatusResponse "Project not found"
// @Failure 500 {object} handlers.StatusResponse "Internal server error"
// @Security BearerAuth
// @Router /api/delete_project/{id} [delete]
func NewDeleteProjectHandler(svc ProjectDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, projectID); err != nil {
			writeProjectError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, StatusResponse{
			Status:  statusSuccess,
			Message: "Project deleted",
		})
	}
}
