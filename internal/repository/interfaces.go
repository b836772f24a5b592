// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"taskboard/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// UserInterface is the user registry.
type UserInterface interface {
	CreateUser(ctx context.Context, creds entities.Credentials) error
	// FindByUsernameAndPassword returns entities.ErrUserNotFound for an unknown
	// username and a nil user with nil error for a wrong password.
	FindByUsernameAndPassword(ctx context.Context, creds entities.Credentials) (*entities.User, error)
}

// ProjectInterface exposes owner-scoped project operations.
// Update and delete silently do nothing when id and owner do not match.
type ProjectInterface interface {
	CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error)
	FindProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error)
	UpdateProjectByID(ctx context.Context, projectID, userID string, params entities.UpdateProjectParams) error
	DeleteProjectByID(ctx context.Context, projectID, userID string) error
}

// TaskInterface exposes project- and owner-scoped task operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error)
	FindTasksByProjectID(ctx context.Context, projectID, userID string) ([]entities.Task, error)
	UpdateTaskByID(ctx context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error
	DeleteTaskByID(ctx context.Context, projectID, userID, taskID string) error
}
