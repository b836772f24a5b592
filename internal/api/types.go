// Package api contains the JSON request and response bodies of the HTTP API.
package api

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// UpdateProjectRequest is the body of PUT /projects/:id.
type UpdateProjectRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateTaskRequest is the body of POST /projects/:id/tasks.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// UpdateTaskRequest is the body of PUT /projects/:projectId/tasks/:id.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Done  *bool   `json:"done,omitempty"`
}

// User is the public view of an account.
type User struct {
	Username string `json:"username"`
}

// Project is the wire form of a project.
type Project struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Task is the wire form of a task.
type Task struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
}

// SignupResponse acknowledges a signup.
type SignupResponse struct {
	OK   bool `json:"ok"`
	User User `json:"user"`
}

// TokenResponse carries a bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProjectsResponse lists projects.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// TasksResponse lists tasks.
type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// OKResponse acknowledges a mutation.
type OKResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ProjectCreatedResponse acknowledges project creation.
type ProjectCreatedResponse struct {
	OK      bool    `json:"ok"`
	Message string  `json:"message"`
	Project Project `json:"project"`
}

// TaskCreatedResponse acknowledges task creation.
type TaskCreatedResponse struct {
	OK   bool `json:"ok"`
	Task Task `json:"task"`
}

// MessageResponse is used by the health check, failed logins and the auth gate.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
