package memory

import (
	"context"

	"taskboard/internal/entities"

	"github.com/google/uuid"
)

// CreateTask stores an open task. The project is not required to exist.
func (m *Memory) CreateTask(_ context.Context, projectID, userID string, params entities.CreateTaskParams) (*entities.Task, error) {
	t := entities.Task{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		UserID:    userID,
		Title:     params.Title,
	}

	m.tasksMu.Lock()
	m.tasks = append(m.tasks, t)
	m.tasksMu.Unlock()

	m.log.Debugw("task created", "task_id", t.ID, "project_id", projectID, "user_id", userID)
	return &t, nil
}

// FindTasksByProjectID returns the owner's tasks of a project in insertion order.
func (m *Memory) FindTasksByProjectID(_ context.Context, projectID, userID string) ([]entities.Task, error) {
	m.tasksMu.RLock()
	defer m.tasksMu.RUnlock()

	res := make([]entities.Task, 0)
	for _, t := range m.tasks {
		if t.ProjectID == projectID && t.UserID == userID {
			res = append(res, t)
		}
	}
	return res, nil
}

// UpdateTaskByID applies a partial update to the first task matching project, owner and id.
func (m *Memory) UpdateTaskByID(_ context.Context, projectID, userID, taskID string, params entities.UpdateTaskParams) error {
	m.tasksMu.Lock()
	defer m.tasksMu.Unlock()

	idx := m.taskIndex(projectID, userID, taskID)
	if idx == -1 {
		m.log.Debugw("task update skipped", "task_id", taskID, "project_id", projectID, "user_id", userID)
		return nil
	}
	params.Apply(&m.tasks[idx])
	return nil
}

// DeleteTaskByID removes the first task matching project, owner and id.
func (m *Memory) DeleteTaskByID(_ context.Context, projectID, userID, taskID string) error {
	m.tasksMu.Lock()
	defer m.tasksMu.Unlock()

	idx := m.taskIndex(projectID, userID, taskID)
	if idx == -1 {
		m.log.Debugw("task delete skipped", "task_id", taskID, "project_id", projectID, "user_id", userID)
		return nil
	}
	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	return nil
}

// taskIndex expects tasksMu held.
func (m *Memory) taskIndex(projectID, userID, taskID string) int {
	for i, t := range m.tasks {
		if t.ProjectID == projectID && t.UserID == userID && t.ID == taskID {
			return i
		}
	}
	return -1
}
