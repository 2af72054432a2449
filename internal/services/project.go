package services

//go:generate mockgen -source=project.go -destination=project_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectForbidden = errors.New("project belongs to another user")
	ErrCorruptedData    = errors.New("stored scene data is corrupted")
	ErrInvalidScene     = errors.New("scene must be valid JSON")
)

// emptyScene is stored when a project is saved without a scene.
var emptyScene = json.RawMessage(`{}`)

// ProjectReader defines project read operations.
type ProjectReader interface {
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error)
}

// ProjectWriter defines project write operations.
type ProjectWriter interface {
	Create(ctx context.Context, project *models.ProjectDB) error
	Update(ctx context.Context, project *models.ProjectDB) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// ProjectService manages scene projects on behalf of their owners.
type ProjectService struct {
	reader ProjectReader
	writer ProjectWriter
	events EventWriter
	now    func() time.Time
}

// NewProjectService creates a new ProjectService.
func NewProjectService(reader ProjectReader, writer ProjectWriter, events EventWriter) *ProjectService {
	return &ProjectService{
		reader: reader,
		writer: writer,
		events: events,
		now:    time.Now,
	}
}

// DefaultProjectName builds the name used when a project is saved without one.
func DefaultProjectName(t time.Time) string {
	return fmt.Sprintf("Project %s", t.Format("02.01.2006 15:04"))
}

// Save updates the project when projectID names a project owned by ownerID,
// otherwise it creates a new project. It returns the id of the saved project.
func (s *ProjectService) Save(
	ctx context.Context,
	ownerID uuid.UUID,
	projectID *uuid.UUID,
	name string,
	scene json.RawMessage,
) (uuid.UUID, error) {
	if len(scene) == 0 || string(scene) == "null" {
		scene = emptyScene
	}
	if !json.Valid(scene) {
		return uuid.Nil, ErrInvalidScene
	}

	now := s.now()
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultProjectName(now)
	}
	ts := now.UTC().Truncate(time.Microsecond)

	if projectID != nil {
		existing, err := s.reader.GetByID(ctx, *projectID)
		if err != nil {
			logger.Log.Errorw("failed to load project for update", "projectID", *projectID, "error", err)
			return uuid.Nil, err
		}
		if existing != nil && existing.UserID == ownerID {
			existing.Name = name
			existing.SceneData = string(scene)
			existing.UpdatedAt = ts
			if err := s.writer.Update(ctx, existing); err != nil {
				logger.Log.Errorw("failed to update project", "projectID", existing.ProjectID, "error", err)
				return uuid.Nil, err
			}
			s.publish(ctx, models.EventProjectSaved, ownerID, existing.ProjectID)
			return existing.ProjectID, nil
		}
		if existing != nil {
			logger.Log.Warnw("project owned by another user, saving as new", "projectID", *projectID, "userID", ownerID)
		}
	}

	project := &models.ProjectDB{
		ProjectID: uuid.New(),
		UserID:    ownerID,
		Name:      name,
		SceneData: string(scene),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.writer.Create(ctx, project); err != nil {
		logger.Log.Errorw("failed to create project", "userID", ownerID, "error", err)
		return uuid.Nil, err
	}

	s.publish(ctx, models.EventProjectSaved, ownerID, project.ProjectID)
	return project.ProjectID, nil
}

// List returns the owner's projects, most recently modified first.
func (s *ProjectService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ProjectSummary, error) {
	rows, err := s.reader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list projects", "userID", ownerID, "error", err)
		return nil, err
	}

	projects := make([]models.ProjectSummary, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, models.ProjectSummary{
			ID:        row.ProjectID,
			Name:      row.Name,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return projects, nil
}

// Get returns a project with its scene to its owner.
func (s *ProjectService) Get(ctx context.Context, ownerID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.owned(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(project.SceneData)) {
		logger.Log.Errorw("corrupted scene data", "projectID", projectID)
		return nil, ErrCorruptedData
	}

	return &models.Project{
		ID:    project.ProjectID,
		Name:  project.Name,
		Scene: json.RawMessage(project.SceneData),
	}, nil
}

// Delete permanently removes a project owned by ownerID.
func (s *ProjectService) Delete(ctx context.Context, ownerID, projectID uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, projectID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, projectID); err != nil {
		logger.Log.Errorw("failed to delete project", "projectID", projectID, "error", err)
		return err
	}

	s.publish(ctx, models.EventProjectDeleted, ownerID, projectID)
	return nil
}

// owned loads a project and checks that ownerID owns it.
func (s *ProjectService) owned(ctx context.Context, ownerID, projectID uuid.UUID) (*models.ProjectDB, error) {
	project, err := s.reader.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "projectID", projectID, "error", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.UserID != ownerID {
		logger.Log.Warnw("project access denied", "projectID", projectID, "userID", ownerID)
		return nil, ErrProjectForbidden
	}
	return project, nil
}

func (s *ProjectService) publish(ctx context.Context, eventType string, ownerID, projectID uuid.UUID) {
	publishEvent(ctx, s.events, models.Event{
		Type:      eventType,
		Key:       projectID.String(),
		UserID:    ownerID.String(),
		ProjectID: projectID.String(),
	})
}
