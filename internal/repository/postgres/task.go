package postgres

import (
	"context"
	"fmt"

	"taskboard/internal/entities"

	"github.com/google/uuid"
)

const (
	insertTaskQuery         = `INSERT INTO tasks(id, project_id, user_id, title) VALUES ($1, $2, $3, $4)`
	selectProjectTasksQuery = `SELECT id, project_id, user_id, title, done FROM tasks WHERE project_id = $1 AND user_id = $2 ORDER BY seq`
	updateTaskQuery         = `
UPDATE tasks
SET title = COALESCE($4, title), done = COALESCE($5, done)
WHERE project_id = $1 AND user_id = $2 AND id = $3`
	deleteTaskQuery = `DELETE FROM tasks WHERE project_id = $1 AND user_id = $2 AND id = $3`
)

// CreateTask inserts an open task. The project is not required to exist.
func (p *Postgres) CreateTask(ctx context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	t := entities.Task{ID: uuid.NewString(), ProjectID: projectID, UserID: userID, Title: params.Title}
	if _, err := p.db.Exec(ctx, insertTaskQuery, t.ID, t.ProjectID, t.UserID, t.Title); err != nil {
		p.log.Errorw("failed to insert task", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

// FindTasksByProjectID returns the owner's tasks of a project in insertion order.
func (p *Postgres) FindTasksByProjectID(ctx context.Context, projectID, userID string) ([]entities.Task, error) {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	rows, err := p.db.Query(ctx, selectProjectTasksQuery, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	res := make([]entities.Task, 0)
	for rows.Next() {
		var t entities.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.UserID, &t.Title, &t.Done); err != nil {
			p.log.Errorw("failed to scan task", "error", err, "project_id", projectID)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return res, nil
}

// UpdateTaskByID applies a partial update; nil fields are left untouched.
func (p *Postgres) UpdateTaskByID(ctx context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, updateTaskQuery, projectID, userID, taskID, params.Title, params.Done)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		p.log.Debugw("task update skipped", "task_id", taskID, "project_id", projectID, "user_id", userID)
	}
	return nil
}

// DeleteTaskByID removes the task; zero affected rows is not an error.
func (p *Postgres) DeleteTaskByID(ctx context.Context, projectID, userID, taskID string) error {
	ctx, cancel := p.queryCtx(ctx)
	defer cancel()

	tag, err := p.db.Exec(ctx, deleteTaskQuery, projectID, userID, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		p.log.Debugw("task delete skipped", "task_id", taskID, "project_id", projectID, "user_id", userID)
	}
	return nil
}
