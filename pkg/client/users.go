package client

import (
	"context"
	"net/http"
)

// CreateUserParams are the fields for CreateUser.
type CreateUserParams struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateUser registers a new account. Unlike the other calls it does not
// depend on the client's bound user.
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", params, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
