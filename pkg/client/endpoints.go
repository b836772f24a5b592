package client

import (
	"context"
	"net/http"
	"net/url"
)

// Health calls the API root.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

// Signup registers a user.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/signup", credentials{Username: username, Password: password}, nil)
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Username: username, Password: password}, &out); err != nil {
		return "", err
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// Projects lists the caller's projects.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// CreateProject creates a project owned by the caller.
func (c *Client) CreateProject(ctx context.Context, name string) (Project, error) {
	var out struct {
		Project Project `json:"project"`
	}
	err := c.do(ctx, http.MethodPost, "/projects", nameBody{Name: name}, &out)
	return out.Project, err
}

// UpdateProject renames a project. The server ignores projects the caller does not own.
func (c *Client) UpdateProject(ctx context.Context, projectID, name string) error {
	return c.do(ctx, http.MethodPut, projectPath(projectID), nameBody{Name: name}, nil)
}

// DeleteProject deletes a project. The server ignores projects the caller does not own.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, projectPath(projectID), nil, nil)
}

// Tasks lists the caller's tasks in a project.
func (c *Client) Tasks(ctx context.Context, projectID string) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, projectPath(projectID)+"/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// CreateTask adds a task to a project.
func (c *Client) CreateTask(ctx context.Context, projectID, title string) (Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	err := c.do(ctx, http.MethodPost, projectPath(projectID)+"/tasks", titleBody{Title: title}, &out)
	return out.Task, err
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, upd TaskUpdate) error {
	return c.do(ctx, http.MethodPut, projectPath(projectID)+"/tasks/"+url.PathEscape(taskID), upd, nil)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return c.do(ctx, http.MethodDelete, projectPath(projectID)+"/tasks/"+url.PathEscape(taskID), nil, nil)
}
