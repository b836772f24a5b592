// Package entities contains core business entities.
package entities

// Project is a named container owned by a single user.
type Project struct {
	ID     string
	UserID string
	Name   string
}

// CreateProjectParams describes a new project.
type CreateProjectParams struct {
	Name   string
	UserID string
}

// UpdateProjectParams holds the mutable project fields.
type UpdateProjectParams struct {
	Name string
}
