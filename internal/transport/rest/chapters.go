package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/manuscript"
)

// chapterService defines the minimal interface needed by ChapterHandler.
type chapterService interface {
	ListChapters(ctx context.Context, input manuscript.ListChaptersInput) ([]domain.Chapter, error)
	GetChapter(ctx context.Context, input manuscript.GetChapterInput) (*domain.Chapter, error)
	CreateChapter(ctx context.Context, input manuscript.CreateChapterInput) (*domain.Chapter, error)
	UpdateChapter(ctx context.Context, input manuscript.UpdateChapterInput) (*domain.Chapter, error)
	DeleteChapter(ctx context.Context, input manuscript.DeleteChapterInput) error
}

// ChapterHandler serves chapter REST endpoints.
type ChapterHandler struct {
	svc chapterService
	log *slog.Logger
}

// NewChapterHandler creates a ChapterHandler.
func NewChapterHandler(svc chapterService, logger *slog.Logger) *ChapterHandler {
	return &ChapterHandler{svc: svc, log: logger.With("handler", "chapter")}
}

type createChapterRequest struct {
	UserID      string  `json:"userId"`
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

type updateChapterRequest struct {
	UserID      string  `json:"userId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

type chapterResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/chapters?projectId=...&userId=...
func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
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

	chapters, err := h.svc.ListChapters(r.Context(), manuscript.ListChaptersInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]chapterResponse, 0, len(chapters))
	for i := range chapters {
		items = append(items, toChapterResponse(&chapters[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"chapters": items})
}

// Get handles GET /api/chapters/{id}?userId=...
func (h *ChapterHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.GetChapter(r.Context(), manuscript.GetChapterInput{UserID: userID, ChapterID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"chapter": toChapterResponse(c)})
}

// Create handles POST /api/chapters. The parent project rides in the body
// alongside userId.
func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChapterRequest
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

	c, err := h.svc.CreateChapter(r.Context(), manuscript.CreateChapterInput{
		UserID:      userID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"chapter": toChapterResponse(c)})
}

// Update handles PUT /api/chapters/{id}.
func (h *ChapterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateChapterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	c, err := h.svc.UpdateChapter(r.Context(), manuscript.UpdateChapterInput{
		UserID:      userID,
		ChapterID:   id,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"chapter": toChapterResponse(c)})
}

// Delete handles DELETE /api/chapters/{id}?userId=...
func (h *ChapterHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteChapter(r.Context(), manuscript.DeleteChapterInput{UserID: userID, ChapterID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Chapter"))
}

func toChapterResponse(c *domain.Chapter) chapterResponse {
	return chapterResponse{
		ID:          c.ID.String(),
		ProjectID:   c.ProjectID.String(),
		Title:       c.Title,
		Description: c.Description,
		OrderIndex:  c.OrderIndex,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
