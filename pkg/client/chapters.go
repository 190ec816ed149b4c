package client

import (
	"context"
	"net/http"
)

// CreateChapterParams are the fields for CreateChapter. A nil OrderIndex
// appends the chapter after the last sibling.
type CreateChapterParams struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	OrderIndex  *int    `json:"orderIndex,omitempty"`
}

// UpdateChapterParams are the fields for UpdateChapter. Nil fields are left
// unchanged.
type UpdateChapterParams struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	OrderIndex  *int    `json:"orderIndex,omitempty"`
}

type createChapterBody struct {
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
	CreateChapterParams
}

type updateChapterBody struct {
	UserID string `json:"userId"`
	UpdateChapterParams
}

// ListChapters returns a project's chapters ordered by orderIndex.
func (c *Client) ListChapters(ctx context.Context, projectID string) ([]Chapter, error) {
	var resp struct {
		Chapters []Chapter `json:"chapters"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chapters?projectId="+projectID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Chapters, nil
}

// GetChapter returns one chapter by id.
func (c *Client) GetChapter(ctx context.Context, id string) (*Chapter, error) {
	var resp struct {
		Chapter Chapter `json:"chapter"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/chapters/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Chapter, nil
}

// CreateChapter creates a chapter under a project.
func (c *Client) CreateChapter(ctx context.Context, projectID string, params CreateChapterParams) (*Chapter, error) {
	var resp struct {
		Chapter Chapter `json:"chapter"`
	}
	body := createChapterBody{UserID: c.userID.String(), ProjectID: projectID, CreateChapterParams: params}
	if err := c.do(ctx, http.MethodPost, "/api/chapters", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Chapter, nil
}

// UpdateChapter applies a sparse update to a chapter.
func (c *Client) UpdateChapter(ctx context.Context, id string, params UpdateChapterParams) (*Chapter, error) {
	var resp struct {
		Chapter Chapter `json:"chapter"`
	}
	body := updateChapterBody{UserID: c.userID.String(), UpdateChapterParams: params}
	if err := c.do(ctx, http.MethodPut, "/api/chapters/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Chapter, nil
}

// DeleteChapter deletes a chapter and its scenes.
func (c *Client) DeleteChapter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/chapters/"+id, nil, nil)
}
