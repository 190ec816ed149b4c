package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/manuscript"
)

// sceneService defines the minimal interface needed by SceneHandler.
type sceneService interface {
	ListScenes(ctx context.Context, input manuscript.ListScenesInput) ([]domain.Scene, error)
	GetScene(ctx context.Context, input manuscript.GetSceneInput) (*domain.Scene, error)
	CreateScene(ctx context.Context, input manuscript.CreateSceneInput) (*domain.Scene, error)
	UpdateScene(ctx context.Context, input manuscript.UpdateSceneInput) (*domain.Scene, error)
	DeleteScene(ctx context.Context, input manuscript.DeleteSceneInput) error
}

// SceneHandler serves scene REST endpoints. PUT /api/scenes/{id} is the
// auto-save hot path, so it shares the same sparse-update shape as every
// other resource instead of a dedicated content endpoint.
type SceneHandler struct {
	svc sceneService
	log *slog.Logger
}

// NewSceneHandler creates a SceneHandler.
func NewSceneHandler(svc sceneService, logger *slog.Logger) *SceneHandler {
	return &SceneHandler{svc: svc, log: logger.With("handler", "scene")}
}

type createSceneRequest struct {
	UserID     string  `json:"userId"`
	ChapterID  string  `json:"chapterId"`
	Title      string  `json:"title"`
	Content    *string `json:"content"`
	OrderIndex *int    `json:"orderIndex"`
}

type updateSceneRequest struct {
	UserID     string  `json:"userId"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	OrderIndex *int    `json:"orderIndex"`
}

type sceneResponse struct {
	ID         string    `json:"id"`
	ChapterID  string    `json:"chapterId"`
	Title      string    `json:"title"`
	Content    *string   `json:"content"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// List handles GET /api/scenes?chapterId=...&userId=...
func (h *SceneHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	chapterID, err := queryID(r, "chapterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scenes, err := h.svc.ListScenes(r.Context(), manuscript.ListScenesInput{
		UserID:    userID,
		ChapterID: chapterID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]sceneResponse, 0, len(scenes))
	for i := range scenes {
		items = append(items, toSceneResponse(&scenes[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"scenes": items})
}

// Get handles GET /api/scenes/{id}?userId=...
func (h *SceneHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	s, err := h.svc.GetScene(r.Context(), manuscript.GetSceneInput{UserID: userID, SceneID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"scene": toSceneResponse(s)})
}

// Create handles POST /api/scenes. The parent chapter rides in the body
// alongside userId.
func (h *SceneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSceneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}
	chapterID, err := parseOptionalUUID(req.ChapterID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chapterId")
		return
	}

	s, err := h.svc.CreateScene(r.Context(), manuscript.CreateSceneInput{
		UserID:     userID,
		ChapterID:  chapterID,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"scene": toSceneResponse(s)})
}

// Update handles PUT /api/scenes/{id}.
func (h *SceneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateSceneRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	s, err := h.svc.UpdateScene(r.Context(), manuscript.UpdateSceneInput{
		UserID:     userID,
		SceneID:    id,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"scene": toSceneResponse(s)})
}

// Delete handles DELETE /api/scenes/{id}?userId=...
func (h *SceneHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteScene(r.Context(), manuscript.DeleteSceneInput{UserID: userID, SceneID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Scene"))
}

func toSceneResponse(s *domain.Scene) sceneResponse {
	return sceneResponse{
		ID:         s.ID.String(),
		ChapterID:  s.ChapterID.String(),
		Title:      s.Title,
		Content:    s.Content,
		OrderIndex: s.OrderIndex,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
