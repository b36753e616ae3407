package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whatson-app/whatson/internal/hubservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *hubservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)
	ph := NewPackageHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Hubs.
	r.Get("/hubs", h.ListHubs)
	r.Post("/hubs", h.CreateHub)
	r.Get("/hubs/{name}", h.GetHub)
	r.Delete("/hubs/{name}", h.DeleteHub)
	r.Get("/hubs/{name}/package", ph.Download)

	// Note scaffolding contracts.
	r.Get("/scaffolds/notes", h.NoteScaffolds)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
