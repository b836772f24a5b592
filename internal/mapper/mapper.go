// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"taskboard/internal/api"
	"taskboard/internal/entities"
)

// FromSignupRequest builds credentials from a signup body.
func FromSignupRequest(src api.SignupRequest) entities.Credentials {
	return entities.Credentials{Username: src.Username, Password: src.Password}
}

// FromLoginRequest builds credentials from a login body.
func FromLoginRequest(src api.LoginRequest) entities.Credentials {
	return entities.Credentials{Username: src.Username, Password: src.Password}
}

// FromUpdateTaskRequest maps the partial task update.
func FromUpdateTaskRequest(src api.UpdateTaskRequest) entities.UpdateTaskParams {
	return entities.UpdateTaskParams{Title: src.Title, Done: src.Done}
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{ID: p.ID, UserID: p.UserID, Name: p.Name}
}

// ToAPIProjectList maps a slice of projects; the result is never nil.
func ToAPIProjectList(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	return api.Task{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		UserID:    t.UserID,
		Title:     t.Title,
		Done:      t.Done,
	}
}

// ToAPITaskList maps a slice of tasks; the result is never nil.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}
