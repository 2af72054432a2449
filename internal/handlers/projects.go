package handlers

//go:generate mockgen -source=projects.go -destination=projects_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

// dateLayout formats project modification times for display.
const dateLayout = "02.01.2006 15:04"

// ProjectLister defines the interface that the project service must implement.
type ProjectLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.ProjectSummary, error)
}

// ProjectListItem is one entry of the project list
// swagger:model ProjectListItem
type ProjectListItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	// Last modification, dd.mm.yyyy hh:mm
	// default: 01.03.2024 10:15
	Date string `json:"date"`
}

// ProjectsResponse represents the caller's projects
// swagger:model ProjectsResponse
type ProjectsResponse struct {
	// default: success
	Status   string            `json:"status"`
	Projects []ProjectListItem `json:"projects"`
}

// NewProjectsHandler returns an HTTP handler listing the caller's projects.
// @Summary List projects
// @Description Returns the caller's projects, most recently modified first.
// @Tags projects
// @Produce json
// @Success 200 {object} handlers.ProjectsResponse
// @Failure 401 {object} handlers.StatusResponse "Unauthorized"
// @Failure 500 {object} handlers.StatusResponse "Internal server error"
// @Security BearerAuth
// @Router /api/projects [get]
func NewProjectsHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		projects, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]ProjectListItem, 0, len(projects))
		for _, p := range projects {
			items = append(items, ProjectListItem{
				ID:   p.ID,
				Name: p.Name,
				Date: p.UpdatedAt.Format(dateLayout),
			})
		}

		writeJSON(w, http.StatusOK, ProjectsResponse{
			Status:   statusSuccess,
			Projects: items,
		})
	}
}
