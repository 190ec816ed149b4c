package client

import (
	"context"
	"net/http"
)

// CreateSceneParams are the fields for CreateScene. A nil OrderIndex appends
// the scene after the last sibling.
type CreateSceneParams struct {
	Title      string  `json:"title"`
	Content    *string `json:"content,omitempty"`
	OrderIndex *int    `json:"orderIndex,omitempty"`
}

// UpdateSceneParams are the fields for UpdateScene. Nil fields are left
// unchanged. Auto-save loops typically send only Content.
type UpdateSceneParams struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	OrderIndex *int    `json:"orderIndex,omitempty"`
}

type createSceneBody struct {
	UserID    string `json:"userId"`
	ChapterID string `json:"chapterId"`
	CreateSceneParams
}

type updateSceneBody struct {
	UserID string `json:"userId"`
	UpdateSceneParams
}

// ListScenes returns a chapter's scenes ordered by orderIndex.
func (c *Client) ListScenes(ctx context.Context, chapterID string) ([]Scene, error) {
	var resp struct {
		Scenes []Scene `json:"scenes"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/scenes?chapterId="+chapterID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Scenes, nil
}

// GetScene returns one scene by id.
func (c *Client) GetScene(ctx context.Context, id string) (*Scene, error) {
	var resp struct {
		Scene Scene `json:"scene"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/scenes/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Scene, nil
}

// CreateScene creates a scene under a chapter.
func (c *Client) CreateScene(ctx context.Context, chapterID string, params CreateSceneParams) (*Scene, error) {
	var resp struct {
		Scene Scene `json:"scene"`
	}
	body := createSceneBody{UserID: c.userID.String(), ChapterID: chapterID, CreateSceneParams: params}
	if err := c.do(ctx, http.MethodPost, "/api/scenes", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Scene, nil
}

// UpdateScene applies a sparse update to a scene. This is the call auto-save
// coordinators wrap in their SaveFunc.
func (c *Client) UpdateScene(ctx context.Context, id string, params UpdateSceneParams) (*Scene, error) {
	var resp struct {
		Scene Scene `json:"scene"`
	}
	body := updateSceneBody{UserID: c.userID.String(), UpdateSceneParams: params}
	if err := c.do(ctx, http.MethodPut, "/api/scenes/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Scene, nil
}

// DeleteScene deletes a scene.
func (c *Client) DeleteScene(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/scenes/"+id, nil, nil)
}
