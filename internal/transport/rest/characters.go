package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/worldbook"
)

// characterService defines the minimal interface needed by CharacterHandler.
type characterService interface {
	ListCharacters(ctx context.Context, input worldbook.ListCharactersInput) ([]domain.Character, error)
	GetCharacter(ctx context.Context, input worldbook.GetCharacterInput) (*domain.Character, error)
	CreateCharacter(ctx context.Context, input worldbook.CreateCharacterInput) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, input worldbook.UpdateCharacterInput) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, input worldbook.DeleteCharacterInput) error
}

// CharacterHandler serves character REST endpoints.
type CharacterHandler struct {
	svc characterService
	log *slog.Logger
}

// NewCharacterHandler creates a CharacterHandler.
func NewCharacterHandler(svc characterService, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{svc: svc, log: logger.With("handler", "character")}
}

type createCharacterRequest struct {
	UserID      string  `json:"userId"`
	ProjectID   string  `json:"projectId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateCharacterRequest struct {
	UserID      string  `json:"userId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type characterResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/characters?projectId=...&userId=...
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	projectID, err := queryID(r, "projectId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	characters, err := h.svc.ListCharacters(r.Context(), worldbook.ListCharactersInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]characterResponse, 0, len(characters))
	for i := range characters {
		items = append(items, toCharacterResponse(&characters[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"characters": items})
}

// Get handles GET /api/characters/{id}?userId=...
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.svc.GetCharacter(r.Context(), worldbook.GetCharacterInput{UserID: userID, CharacterID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"character": toCharacterResponse(c)})
}

// Create handles POST /api/characters. The parent project rides in the body
// alongside userId.
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid projectId")
		return
	}

	c, err := h.svc.CreateCharacter(r.Context(), worldbook.CreateCharacterInput{
		UserID:      userID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"character": toCharacterResponse(c)})
}

// Update handles PUT /api/characters/{id}.
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateCharacterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	c, err := h.svc.UpdateCharacter(r.Context(), worldbook.UpdateCharacterInput{
		UserID:      userID,
		CharacterID: id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"character": toCharacterResponse(c)})
}

// Delete handles DELETE /api/characters/{id}?userId=...
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.DeleteCharacter(r.Context(), worldbook.DeleteCharacterInput{UserID: userID, CharacterID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Character"))
}

func toCharacterResponse(c *domain.Character) characterResponse {
	return characterResponse{
		ID:          c.ID.String(),
		ProjectID:   c.ProjectID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
