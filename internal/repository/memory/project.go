package memory

import (
	"context"

	"taskboard/internal/entities"

	"github.com/google/uuid"
)

// CreateProject stores a project under a fresh random id.
func (m *Memory) CreateProject(_ context.Context, params entities.CreateProjectParams) (*entities.Project, error) {
	p := entities.Project{ID: uuid.NewString(), UserID: params.UserID, Name: params.Name}

	m.projectsMu.Lock()
	m.projects = append(m.projects, p)
	m.projectsMu.Unlock()

	m.log.Debugw("project created", "project_id", p.ID, "user_id", p.UserID)
	return &p, nil
}

// FindProjectsByUserID returns the owner's projects in insertion order.
func (m *Memory) FindProjectsByUserID(_ context.Context, userID string) ([]entities.Project, error) {
	m.projectsMu.RLock()
	defer m.projectsMu.RUnlock()

	res := make([]entities.Project, 0)
	for _, p := range m.projects {
		if p.UserID == userID {
			res = append(res, p)
		}
	}
	return res, nil
}

// UpdateProjectByID renames the first project matching id and owner.
func (m *Memory) UpdateProjectByID(_ context.Context, projectID, userID string, params entities.UpdateProjectParams) error {
	m.projectsMu.Lock()
	defer m.projectsMu.Unlock()

	idx := m.projectIndex(projectID, userID)
	if idx == -1 {
		m.log.Debugw("project update skipped", "project_id", projectID, "user_id", userID)
		return nil
	}
	m.projects[idx].Name = params.Name
	return nil
}

// DeleteProjectByID removes the first project matching id and owner.
func (m *Memory) DeleteProjectByID(_ context.Context, projectID, userID string) error {
	m.projectsMu.Lock()
	defer m.projectsMu.Unlock()

	idx := m.projectIndex(projectID, userID)
	if idx == -1 {
		m.log.Debugw("project delete skipped", "project_id", projectID, "user_id", userID)
		return nil
	}
	m.projects = append(m.projects[:idx], m.projects[idx+1:]...)
	return nil
}

// projectIndex expects projectsMu held.
func (m *Memory) projectIndex(projectID, userID string) int {
	for i, p := range m.projects {
		if p.ID == projectID && p.UserID == userID {
			return i
		}
	}
	return -1
}
