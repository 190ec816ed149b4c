package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/fablecraft/fablecraft-backend/internal/config"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and full health probes, plus
// the configuration document editors fetch on startup.
type HealthHandler struct {
	db       dbPinger
	version  string
	autosave config.AutoSaveConfig
}

func NewHealthHandler(db dbPinger, version string, autosave config.AutoSaveConfig) *HealthHandler {
	return &HealthHandler{db: db, version: version, autosave: autosave}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one dependency inside a HealthResponse.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type clientConfigResponse struct {
	AutoSave autoSaveConfigResponse `json:"autosave"`
}

type autoSaveConfigResponse struct {
	DebounceDelayMs int64 `json:"debounceDelayMs"`
	FlushIntervalMs int64 `json:"flushIntervalMs"`
}

// Live reports process liveness and never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready reports whether the server can take traffic, which for this API
// means the database answers a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db, _ := h.probeDB(r.Context())
	if db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health is the detailed probe: per-component status with ping latency and
// the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, ok := h.probeDB(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now(),
	}
	code := http.StatusOK
	if !ok {
		resp.Status = "down"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) probeDB(ctx context.Context) (CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}, false
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}, true
}

// ClientConfig handles GET /api/config. Editors tune their auto-save
// coordinators with the returned intervals instead of hardcoding them.
func (h *HealthHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, clientConfigResponse{
		AutoSave: autoSaveConfigResponse{
			DebounceDelayMs: h.autosave.DebounceDelay.Milliseconds(),
			FlushIntervalMs: h.autosave.FlushInterval.Milliseconds(),
		},
	})
}
