// Package entities contains core business entities.
package entities

// Task belongs to a project and a user. ProjectID is not checked against existing projects.
type Task struct {
	ID        string
	ProjectID string
	UserID    string
	Title     string
	Done      bool
}

// CreateTaskParams describes a new task.
type CreateTaskParams struct {
	Title string
}

// UpdateTaskParams is a partial update; nil fields keep their current value.
type UpdateTaskParams struct {
	Title *string
	Done  *bool
}

// Apply merges the non-nil fields into t.
func (p UpdateTaskParams) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
}

// Empty reports whether the update carries no fields.
func (p UpdateTaskParams) Empty() bool {
	return p.Title == nil && p.Done == nil
}
