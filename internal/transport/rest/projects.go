package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	List(ctx context.Context, input project.ListInput) ([]domain.Project, error)
	Get(ctx context.Context, input project.GetInput) (*domain.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Update(ctx context.Context, input project.UpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, input project.DeleteInput) error
}

// ProjectHandler serves project REST endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	UserID      string  `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateProjectRequest struct {
	UserID      string  `json:"userId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List handles GET /api/projects?userId=...
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projects, err := h.svc.List(r.Context(), project.ListInput{UserID: userID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]projectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, toProjectResponse(&projects[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": items})
}

// Get handles GET /api/projects/{id}?userId=...
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.svc.Get(r.Context(), project.GetInput{UserID: userID, ProjectID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"project": toProjectResponse(p)})
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"project": toProjectResponse(p)})
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	p, err := h.svc.Update(r.Context(), project.UpdateInput{
		UserID:      userID,
		ProjectID:   id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"project": toProjectResponse(p)})
}

// Delete handles DELETE /api/projects/{id}?userId=...
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), project.DeleteInput{UserID: userID, ProjectID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Project"))
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
