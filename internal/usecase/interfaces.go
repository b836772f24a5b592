package usecase

import (
	"context"

	"taskboard/internal/entities"
)

// UserUsecaseInterface abstracts signup and credential checks for the delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, creds entities.Credentials) error
	FindByUsernameAndPassword(ctx context.Context, creds entities.Credentials) (*entities.User, error)
}

// ProjectUsecaseInterface abstracts owner-scoped project operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, params entities.CreateProjectParams) (*entities.Project, error)
	FindProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error)
	UpdateProjectByID(ctx context.Context, projectID, userID string, params entities.UpdateProjectParams) error
	DeleteProjectByID(ctx context.Context, projectID, userID string) error
}

// TaskUsecaseInterface abstracts task operations scoped by project and owner.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error)
	FindTasksByProjectID(ctx context.Context, projectID, userID string) ([]entities.Task, error)
	UpdateTaskByID(ctx context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error
	DeleteTaskByID(ctx context.Context, projectID, userID, taskID string) error
}

// HealthUsecaseInterface reports storage readiness.
type HealthUsecaseInterface interface {
	Ready(ctx context.Context) error
}
