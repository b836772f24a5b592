// Package memory implements the repository in process memory.
package memory

import (
	"context"
	"sync"

	"taskboard/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps users, projects and tasks in process memory. Each collection is
// guarded by its own lock; state is lost on restart.
type Memory struct {
	log *zap.SugaredLogger

	usersMu sync.RWMutex
	users   map[string]entities.User

	projectsMu sync.RWMutex
	projects   []entities.Project

	tasksMu sync.RWMutex
	tasks   []entities.Task
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:   log.Named("repo.memory"),
		users: make(map[string]entities.User),
	}
}

// OnStart is a no-op; the store is ready on construction.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop drops all state.
func (m *Memory) OnStop(_ context.Context) error {
	m.usersMu.Lock()
	m.users = make(map[string]entities.User)
	m.usersMu.Unlock()

	m.projectsMu.Lock()
	m.projects = nil
	m.projectsMu.Unlock()

	m.tasksMu.Lock()
	m.tasks = nil
	m.tasksMu.Unlock()
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}
