package client

import (
	"context"
	"net/http"
)

// CreateProjectParams are the fields for CreateProject.
type CreateProjectParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateProjectParams are the fields for UpdateProject. Nil fields are left
// unchanged; a pointer to the empty string clears a nullable field.
type UpdateProjectParams struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type createProjectBody struct {
	UserID string `json:"userId"`
	CreateProjectParams
}

type updateProjectBody struct {
	UserID string `json:"userId"`
	UpdateProjectParams
}

// ListProjects returns all projects owned by the client's user.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var resp struct {
		Projects []Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var resp struct {
		Project Project `json:"project"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Project, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (*Project, error) {
	var resp struct {
		Project Project `json:"project"`
	}
	body := createProjectBody{UserID: c.userID.String(), CreateProjectParams: params}
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Project, nil
}

// UpdateProject applies a sparse update to a project.
func (c *Client) UpdateProject(ctx context.Context, id string, params UpdateProjectParams) (*Project, error) {
	var resp struct {
		Project Project `json:"project"`
	}
	body := updateProjectBody{UserID: c.userID.String(), UpdateProjectParams: params}
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Project, nil
}

// DeleteProject deletes a project and everything underneath it.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}
