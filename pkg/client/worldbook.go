package client

import (
	"context"
	"net/http"
)

// CreateCharacterParams are the fields for CreateCharacter.
type CreateCharacterParams struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateCharacterParams are the fields for UpdateCharacter.
type UpdateCharacterParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateLocationParams are the fields for CreateLocation.
type CreateLocationParams struct {
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Atmosphere       *string `json:"atmosphere,omitempty"`
	ImportantDetails *string `json:"importantDetails,omitempty"`
}

// UpdateLocationParams are the fields for UpdateLocation.
type UpdateLocationParams struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Atmosphere       *string `json:"atmosphere,omitempty"`
	ImportantDetails *string `json:"importantDetails,omitempty"`
}

// CreateSynopsisParams are the fields for CreateSynopsis.
type CreateSynopsisParams struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateSynopsisParams are the fields for UpdateSynopsis.
type UpdateSynopsisParams struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// ListCharacters returns a project's characters.
func (c *Client) ListCharacters(ctx context.Context, projectID string) ([]Character, error) {
	var resp struct {
		Characters []Character `json:"characters"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/characters?projectId="+projectID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Characters, nil
}

// GetCharacter returns one character by id.
func (c *Client) GetCharacter(ctx context.Context, id string) (*Character, error) {
	var resp struct {
		Character Character `json:"character"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/characters/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Character, nil
}

// CreateCharacter creates a character under a project.
func (c *Client) CreateCharacter(ctx context.Context, projectID string, params CreateCharacterParams) (*Character, error) {
	var resp struct {
		Character Character `json:"character"`
	}
	body := struct {
		UserID    string `json:"userId"`
		ProjectID string `json:"projectId"`
		CreateCharacterParams
	}{c.userID.String(), projectID, params}
	if err := c.do(ctx, http.MethodPost, "/api/characters", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Character, nil
}

// UpdateCharacter applies a sparse update to a character.
func (c *Client) UpdateCharacter(ctx context.Context, id string, params UpdateCharacterParams) (*Character, error) {
	var resp struct {
		Character Character `json:"character"`
	}
	body := struct {
		UserID string `json:"userId"`
		UpdateCharacterParams
	}{c.userID.String(), params}
	if err := c.do(ctx, http.MethodPut, "/api/characters/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Character, nil
}

// DeleteCharacter deletes a character.
func (c *Client) DeleteCharacter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/characters/"+id, nil, nil)
}

// ListLocations returns a project's locations.
func (c *Client) ListLocations(ctx context.Context, projectID string) ([]Location, error) {
	var resp struct {
		Locations []Location `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/locations?projectId="+projectID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

// GetLocation returns one location by id.
func (c *Client) GetLocation(ctx context.Context, id string) (*Location, error) {
	var resp struct {
		Location Location `json:"location"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/locations/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// CreateLocation creates a location under a project.
func (c *Client) CreateLocation(ctx context.Context, projectID string, params CreateLocationParams) (*Location, error) {
	var resp struct {
		Location Location `json:"location"`
	}
	body := struct {
		UserID    string `json:"userId"`
		ProjectID string `json:"projectId"`
		CreateLocationParams
	}{c.userID.String(), projectID, params}
	if err := c.do(ctx, http.MethodPost, "/api/locations", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// UpdateLocation applies a sparse update to a location.
func (c *Client) UpdateLocation(ctx context.Context, id string, params UpdateLocationParams) (*Location, error) {
	var resp struct {
		Location Location `json:"location"`
	}
	body := struct {
		UserID string `json:"userId"`
		UpdateLocationParams
	}{c.userID.String(), params}
	if err := c.do(ctx, http.MethodPut, "/api/locations/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Location, nil
}

// DeleteLocation deletes a location.
func (c *Client) DeleteLocation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/locations/"+id, nil, nil)
}

// ListSynopses returns a project's synopses.
func (c *Client) ListSynopses(ctx context.Context, projectID string) ([]Synopsis, error) {
	var resp struct {
		Synopses []Synopsis `json:"synopses"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/synopses?projectId="+projectID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Synopses, nil
}

// GetSynopsis returns one synopsis by id.
func (c *Client) GetSynopsis(ctx context.Context, id string) (*Synopsis, error) {
	var resp struct {
		Synopsis Synopsis `json:"synopsis"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/synopses/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Synopsis, nil
}

// CreateSynopsis creates a synopsis under a project.
func (c *Client) CreateSynopsis(ctx context.Context, projectID string, params CreateSynopsisParams) (*Synopsis, error) {
	var resp struct {
		Synopsis Synopsis `json:"synopsis"`
	}
	body := struct {
		UserID    string `json:"userId"`
		ProjectID string `json:"projectId"`
		CreateSynopsisParams
	}{c.userID.String(), projectID, params}
	if err := c.do(ctx, http.MethodPost, "/api/synopses", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Synopsis, nil
}

// UpdateSynopsis applies a sparse update to a synopsis.
func (c *Client) UpdateSynopsis(ctx context.Context, id string, params UpdateSynopsisParams) (*Synopsis, error) {
	var resp struct {
		Synopsis Synopsis `json:"synopsis"`
	}
	body := struct {
		UserID string `json:"userId"`
		UpdateSynopsisParams
	}{c.userID.String(), params}
	if err := c.do(ctx, http.MethodPut, "/api/synopses/"+id, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Synopsis, nil
}

// DeleteSynopsis deletes a synopsis.
func (c *Client) DeleteSynopsis(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/synopses/"+id, nil, nil)
}
