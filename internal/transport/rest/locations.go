package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/domain"
	"github.com/fablecraft/fablecraft-backend/internal/service/worldbook"
)

// locationService defines the minimal interface needed by LocationHandler.
type locationService interface {
	ListLocations(ctx context.Context, input worldbook.ListLocationsInput) ([]domain.Location, error)
	GetLocation(ctx context.Context, input worldbook.GetLocationInput) (*domain.Location, error)
	CreateLocation(ctx context.Context, input worldbook.CreateLocationInput) (*domain.Location, error)
	UpdateLocation(ctx context.Context, input worldbook.UpdateLocationInput) (*domain.Location, error)
	DeleteLocation(ctx context.Context, input worldbook.DeleteLocationInput) error
}

// LocationHandler serves location REST endpoints.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

type createLocationRequest struct {
	UserID           string  `json:"userId"`
	ProjectID        string  `json:"projectId"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	Type             *string `json:"type"`
	Atmosphere       *string `json:"atmosphere"`
	ImportantDetails *string `json:"importantDetails"`
}

type updateLocationRequest struct {
	UserID           string  `json:"userId"`
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Type             *string `json:"type"`
	Atmosphere       *string `json:"atmosphere"`
	ImportantDetails *string `json:"importantDetails"`
}

type locationResponse struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"projectId"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Type             *string   `json:"type"`
	Atmosphere       *string   `json:"atmosphere"`
	ImportantDetails *string   `json:"importantDetails"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// List handles GET /api/locations?projectId=...&userId=...
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
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

	locations, err := h.svc.ListLocations(r.Context(), worldbook.ListLocationsInput{
		UserID:    userID,
		ProjectID: projectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]locationResponse, 0, len(locations))
	for i := range locations {
		items = append(items, toLocationResponse(&locations[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"locations": items})
}

// Get handles GET /api/locations/{id}?userId=...
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	l, err := h.svc.GetLocation(r.Context(), worldbook.GetLocationInput{UserID: userID, LocationID: id})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"location": toLocationResponse(l)})
}

// Create handles POST /api/locations. The parent project rides in the body
// alongside userId.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
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

	l, err := h.svc.CreateLocation(r.Context(), worldbook.CreateLocationInput{
		UserID:           userID,
		ProjectID:        projectID,
		Name:             req.Name,
		Description:      req.Description,
		Type:             req.Type,
		Atmosphere:       req.Atmosphere,
		ImportantDetails: req.ImportantDetails,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"location": toLocationResponse(l)})
}

// Update handles PUT /api/locations/{id}.
func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateLocationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, err := parseOptionalUUID(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	l, err := h.svc.UpdateLocation(r.Context(), worldbook.UpdateLocationInput{
		UserID:           userID,
		LocationID:       id,
		Name:             req.Name,
		Description:      req.Description,
		Type:             req.Type,
		Atmosphere:       req.Atmosphere,
		ImportantDetails: req.ImportantDetails,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"location": toLocationResponse(l)})
}

// Delete handles DELETE /api/locations/{id}?userId=...
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.DeleteLocation(r.Context(), worldbook.DeleteLocationInput{UserID: userID, LocationID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deletedResponse("Location"))
}

func toLocationResponse(l *domain.Location) locationResponse {
	return locationResponse{
		ID:               l.ID.String(),
		ProjectID:        l.ProjectID.String(),
		Name:             l.Name,
		Description:      l.Description,
		Type:             l.Type,
		Atmosphere:       l.Atmosphere,
		ImportantDetails: l.ImportantDetails,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
