package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/worldbook"
)

// synopsisService defines the minimal interface needed by SynopsisHandler.
type synopsisService interface {
	ListSynopses(ctx context.Context, input worldbook.ListSynopsesInput) ([]domain.Synopsis, error)
	GetSynopsis(ctx context.Context, input worldbook.GetSynopsisInput) (*domain.Synopsis, error)
	CreateSynopsis(ctx context.Context, input worldbook.CreateSynopsisInput) (*domain.Synopsis, error)
	UpdateSynopsis(ctx context.Context, input worldbook.UpdateSynopsisInput) (*domain.Synopsis, error)
	DeleteSynopsis(ctx context.Context, input worldbook.DeleteSynopsisInput) error
}

// SynopsisHandler serves synopsis REST endpoints.
type SynopsisHandler struct {
	svc synopsisService
	log *slog.Logger
}

// NewSynopsisHandler creates a SynopsisHandler.
func NewSynopsisHandler(svc synopsisService, logger *slog.Logger) *SynopsisHandler {
	return &SynopsisHandler{svc: svc, log: logger.With("handler", "synopsis")}
}

type createSynopsisRequest struct {
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type updateSynopsisRequest struct {
	UserID  string  `json:"userId"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type synopsisResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// List handles GET /api/synopses?projectId=...&userId=...
func (h *SynopsisHandler) List(w http.ResponseWriter, r *http.Request) {
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

	synopses, err := h.svc.ListSynopses(r.Context(), worldbook.ListSynopsesInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]synopsisResponse, 0, len(synopses))
	for i := range synopses {
		items = append(items, toSynopsisResponse(&synopses[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"synopses": items})
}

// Get handles GET /api/synopses/{id}?userId=...
func (h *SynopsisHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	syn, err := h.svc.GetSynopsis(r.Context(), worldbook.GetSynopsisInput{UserID: userID, SynopsisID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"synopsis": toSynopsisResponse(syn)})
}

// Create handles POST /api/synopses. The parent project rides in the body
// alongside userId.
func (h *SynopsisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSynopsisRequest
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

	syn, err := h.svc.CreateSynopsis(r.Context(), worldbook.CreateSynopsisInput{
		UserID:    userID,
		ProjectID: projectID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"synopsis": toSynopsisResponse(syn)})
}

// Update handles PUT /api/synopses/{id}.
func (h *SynopsisHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateSynopsisRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	syn, err := h.svc.UpdateSynopsis(r.Context(), worldbook.UpdateSynopsisInput{
		UserID:     userID,
		SynopsisID: id,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"synopsis": toSynopsisResponse(syn)})
}

// Delete handles DELETE /api/synopses/{id}?userId=...
func (h *SynopsisHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteSynopsis(r.Context(), worldbook.DeleteSynopsisInput{UserID: userID, SynopsisID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Synopsis"))
}

func toSynopsisResponse(s *domain.Synopsis) synopsisResponse {
	return synopsisResponse{
		ID:        s.ID.String(),
		ProjectID: s.ProjectID.String(),
		Title:     s.Title,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
