// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"taskboard/config"
	"taskboard/internal/repository/memory"
	"taskboard/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	ProjectInterface
	TaskInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(log), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
