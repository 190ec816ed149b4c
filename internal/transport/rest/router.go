// Package rest wires the HTTP surface of the API. Every resource follows the
// same conventions: GET and DELETE identify the caller with a userId query
// parameter, POST and PUT carry userId in the JSON body, responses wrap the
// payload under a resource key and errors come back as {"error": "..."}.
package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Health    *HealthHandler
	User      *UserHandler
	Project   *ProjectHandler
	Chapter   *ChapterHandler
	Scene     *SceneHandler
	Character *CharacterHandler
	Location  *LocationHandler
	Synopsis  *SynopsisHandler
}

// NewRouter builds the API route table.
func NewRouter(h Handlers, mws ...mux.MiddlewareFunc) http.Handler {
	r := mux.NewRouter()
	r.Use(mws...)

	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/health/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/config", h.Health.ClientConfig).Methods(http.MethodGet)

	api.HandleFunc("/users", h.User.Create).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", h.User.Get).Methods(http.MethodGet)

	api.HandleFunc("/projects", h.Project.List).Methods(http.MethodGet)
	api.HandleFunc("/projects", h.Project.Create).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", h.Project.Get).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", h.Project.Update).Methods(http.MethodPut)
	api.HandleFunc("/projects/{id}", h.Project.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/chapters", h.Chapter.List).Methods(http.MethodGet)
	api.HandleFunc("/chapters", h.Chapter.Create).Methods(http.MethodPost)
	api.HandleFunc("/chapters/{id}", h.Chapter.Get).Methods(http.MethodGet)
	api.HandleFunc("/chapters/{id}", h.Chapter.Update).Methods(http.MethodPut)
	api.HandleFunc("/chapters/{id}", h.Chapter.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/scenes", h.Scene.List).Methods(http.MethodGet)
	api.HandleFunc("/scenes", h.Scene.Create).Methods(http.MethodPost)
	api.HandleFunc("/scenes/{id}", h.Scene.Get).Methods(http.MethodGet)
	api.HandleFunc("/scenes/{id}", h.Scene.Update).Methods(http.MethodPut)
	api.HandleFunc("/scenes/{id}", h.Scene.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/characters", h.Character.List).Methods(http.MethodGet)
	api.HandleFunc("/characters", h.Character.Create).Methods(http.MethodPost)
	api.HandleFunc("/characters/{id}", h.Character.Get).Methods(http.MethodGet)
	api.HandleFunc("/characters/{id}", h.Character.Update).Methods(http.MethodPut)
	api.HandleFunc("/characters/{id}", h.Character.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/locations", h.Location.List).Methods(http.MethodGet)
	api.HandleFunc("/locations", h.Location.Create).Methods(http.MethodPost)
	api.HandleFunc("/locations/{id}", h.Location.Get).Methods(http.MethodGet)
	api.HandleFunc("/locations/{id}", h.Location.Update).Methods(http.MethodPut)
	api.HandleFunc("/locations/{id}", h.Location.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/synopses", h.Synopsis.List).Methods(http.MethodGet)
	api.HandleFunc("/synopses", h.Synopsis.Create).Methods(http.MethodPost)
	api.HandleFunc("/synopses/{id}", h.Synopsis.Get).Methods(http.MethodGet)
	api.HandleFunc("/synopses/{id}", h.Synopsis.Update).Methods(http.MethodPut)
	api.HandleFunc("/synopses/{id}", h.Synopsis.Delete).Methods(http.MethodDelete)

	// Routes are matched in registration order, so a method-unrestricted
	// route per path catches every verb the handlers above did not claim.
	// Relying on mux's MethodNotAllowedHandler does not work here: a later
	// route failing its path matcher resets the recorded method mismatch
	// and the request falls through to 404.
	for _, path := range []string{
		"/config",
		"/users", "/users/{id}",
		"/projects", "/projects/{id}",
		"/chapters", "/chapters/{id}",
		"/scenes", "/scenes/{id}",
		"/characters", "/characters/{id}",
		"/locations", "/locations/{id}",
		"/synopses", "/synopses/{id}",
	} {
		api.HandleFunc(path, methodNotAllowed)
	}

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
