package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

// ProjectReadRepository handles project read operations
type ProjectReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProjectReadRepository(db *sqlx.DB, txGetter TxGetter) *ProjectReadRepository {
	return &ProjectReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the project with the given id, or nil when it does not exist.
func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	const query = `
		SELECT project_id, user_id, name, scene_data, created_at, updated_at
		FROM projects
		WHERE project_id = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	var project models.ProjectDB
	err := sqlx.GetContext(ctx, ex, &project, ex.Rebind(query), projectID)

	logQuery(query, []any{projectID}, project.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUserID returns the user's projects without scene data, most recently modified first.
func (r *ProjectReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error) {
	const query = `
		SELECT project_id, user_id, name, created_at, updated_at
		FROM projects
		WHERE user_id = ?
		ORDER BY updated_at DESC
	`
	ex := executor(ctx, r.db, r.txGetter)

	projects := []models.ProjectDB{}
	err := sqlx.SelectContext(ctx, ex, &projects, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, len(projects), err)

	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectWriteRepository handles project write operations
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new project row.
func (r *ProjectWriteRepository) Create(ctx context.Context, project *models.ProjectDB) error {
	const query = `
		INSERT INTO projects (project_id, user_id, name, scene_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	ex := executor(ctx, r.db, r.txGetter)

	_, err := ex.ExecContext(ctx, ex.Rebind(query),
		project.ProjectID, project.UserID, project.Name, project.SceneData, project.CreatedAt, project.UpdatedAt)

	logQuery(query, []any{project.ProjectID, project.UserID, project.Name}, nil, err)

	return err
}

// Update overwrites name, scene and modification time of an existing project.
// It returns sql.ErrNoRows when no row was changed.
func (r *ProjectWriteRepository) Update(ctx context.Context, project *models.ProjectDB) error {
	const query = `
		UPDATE projects
		SET name = ?, scene_data = ?, updated_at = ?
		WHERE project_id = ?
	`
	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query),
		project.Name, project.SceneData, project.UpdatedAt, project.ProjectID)
	rowsAffected := affected(res)

	logQuery(query, []any{project.Name, project.UpdatedAt, project.ProjectID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a project. It returns sql.ErrNoRows when nothing was deleted.
func (r *ProjectWriteRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	const query = `DELETE FROM projects WHERE project_id = ?`
	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), projectID)
	rowsAffected := affected(res)

	logQuery(query, []any{projectID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func affected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
