package domain

import (
	"context"
	"fmt"

	"taskboard/internal/entities"
)

// CreateProject creates a project owned by params.UserID.
func (u *Usecase) CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if params.UserID == "" || params.Name == "" {
		return nil, fmt.Errorf("%w: name and user id are required", entities.ErrInvalidArgument)
	}
	p, err := u.repo.CreateProject(ctx, params)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project create", "project_id", p.ID, "user_id", p.UserID)
	return p, nil
}

// FindProjectsByUserID lists projects owned by userID.
func (u *Usecase) FindProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindProjectsByUserID(ctx, userID)
}

// UpdateProjectByID renames an owned project; a non-owned or missing project is left alone.
func (u *Usecase) UpdateProjectByID(ctx context.Context, projectID, userID string, params entities.UpdateProjectParams) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" || params.Name == "" {
		return fmt.Errorf("%w: project id, user id and name are required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateProjectByID(ctx, projectID, userID, params)
}

// DeleteProjectByID deletes an owned project; a non-owned or missing project is left alone.
func (u *Usecase) DeleteProjectByID(ctx context.Context, projectID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || userID == "" {
		return fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteProjectByID(ctx, projectID, userID)
}
