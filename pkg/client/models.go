package client

// Project is a named container owned by one user.
type Project struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Task belongs to a project and its owner.
type Task struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
}

// TaskUpdate carries the fields to change; nil fields are left as they are.
type TaskUpdate struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type nameBody struct {
	Name string `json:"name"`
}

type titleBody struct {
	Title string `json:"title"`
}
