package domain

import (
	"context"
	"fmt"

	"taskboard/internal/entities"
)

// CreateTask adds an open task to a project.
func (u *Usecase) CreateTask(ctx context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" || params.Title == "" {
		return nil, fmt.Errorf("%w: project id, user id and title are required", entities.ErrInvalidArgument)
	}
	t, err := u.repo.CreateTask(ctx, projectID, userID, params)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", t.ID, "project_id", projectID, "user_id", userID)
	return t, nil
}

// FindTasksByProjectID lists the caller's tasks in a project.
func (u *Usecase) FindTasksByProjectID(ctx context.Context, projectID, userID string) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" {
		return nil, fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	return u.repo.FindTasksByProjectID(ctx, projectID, userID)
}

// UpdateTaskByID applies a partial update to an owned task.
func (u *Usecase) UpdateTaskByID(ctx context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" || taskID == "" {
		return fmt.Errorf("%w: project id, user id and task id are required", entities.ErrInvalidArgument)
	}
	if params.Empty() {
		return fmt.Errorf("%w: nothing to update", entities.ErrInvalidArgument)
	}
	if params.Title != nil && *params.Title == "" {
		return fmt.Errorf("%w: title must not be empty", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTaskByID(ctx, projectID, userID, taskID, params)
}

// DeleteTaskByID deletes an owned task.
func (u *Usecase) DeleteTaskByID(ctx context.Context, projectID, userID, taskID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" || taskID == "" {
		return fmt.Errorf("%w: project id, user id and task id are required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTaskByID(ctx, projectID, userID, taskID)
}
