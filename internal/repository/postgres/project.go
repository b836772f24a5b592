package postgres

import (
	"context"
	"fmt"

	"taskboard/internal/entities"

	"github.com/google/uuid"
)

const (
	insertProjectQuery      = `INSERT INTO projects(id, user_id, name) VALUES ($1, $2, $3)`
	selectUserProjectsQuery = `SELECT id, user_id, name FROM projects WHERE user_id = $1 ORDER BY seq`
	updateProjectQuery      = `UPDATE projects SET name = $3 WHERE id = $1 AND user_id = $2`
	deleteProjectQuery      = `DELETE FROM projects WHERE id = $1 AND user_id = $2`
)

// CreateProject inserts a project under a fresh random id.
func (p *Postgres) CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	pr := entities.Project{ID: uuid.NewString(), UserID: params.UserID, Name: params.Name}
	if _, err := p.db.Exec(ctx, insertProjectQuery, pr.ID, pr.UserID, pr.Name); err != nil {
		p.log.Errorw("failed to insert project", "error", err, "user_id", pr.UserID)
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &pr, nil
}

// FindProjectsByUserID returns the owner's projects in insertion order.
func (p *Postgres) FindProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, selectUserProjectsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Name); err != nil {
			p.log.Errorw("failed to scan project", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan project: %w", err)
		}
		res = append(res, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return res, nil
}

// UpdateProjectByID renames the project; zero affected rows is not an error.
func (p *Postgres) UpdateProjectByID(ctx context.Context, projectID, userID string, params entities.UpdateProjectParams) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, updateProjectQuery, projectID, userID, params.Name)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		p.log.Debugw("project update skipped", "project_id", projectID, "user_id", userID)
	}
	return nil
}

// DeleteProjectByID removes the project; zero affected rows is not an error.
func (p *Postgres) DeleteProjectByID(ctx context.Context, projectID, userID string) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteProjectQuery, projectID, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		p.log.Debugw("project delete skipped", "project_id", projectID, "user_id", userID)
	}
	return nil
}
