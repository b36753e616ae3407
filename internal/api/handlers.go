package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whatson-app/whatson/internal/apperr"
	"github.com/whatson-app/whatson/internal/hubservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *hubservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *hubservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListHubs handles GET /hubs.
func (h *Handler) ListHubs(w http.ResponseWriter, r *http.Request) {
	hubs, err := h.svc.ListHubs(r.Context())
	if err != nil {
		slog.Error("list hubs failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if hubs == nil {
		hubs = []Hub{}
	}
	writeJSON(w, http.StatusOK, HubListResponse{Hubs: hubs})
}

// CreateHub handles POST /hubs. The call blocks until scaffolding and
// packaging complete.
func (h *Handler) CreateHub(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateHubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}

	hub, err := h.svc.CreateHub(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrAlreadyExists):
			writeJSON(w, http.StatusConflict, errorBody(err.Error()))
		case errors.Is(err, apperr.ErrUnsupportedPlatform):
			writeJSON(w, http.StatusNotImplemented, errorBody(err.Error()))
		default:
			slog.Error("create hub failed", slog.String("name", req.Name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		}
		return
	}
	writeJSON(w, http.StatusCreated, CreateHubResponse{Hub: *hub, PackagePath: hub.PackagePath})
}

// GetHub handles GET /hubs/{name}.
func (h *Handler) GetHub(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	detail, err := h.svc.GetHub(r.Context(), name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get hub failed", slog.String("name", name), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// DeleteHub handles DELETE /hubs/{name}.
func (h *Handler) DeleteHub(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.svc.DeleteHub(r.Context(), name); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		slog.Error("delete hub failed", slog.String("name", name), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NoteScaffolds handles GET /scaffolds/notes?id=<noteID>.
func (h *Handler) NoteScaffolds(w http.ResponseWriter, r *http.Request) {
	noteID := r.URL.Query().Get("id")
	if noteID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'id' is required"))
		return
	}
	writeJSON(w, http.StatusOK, NoteScaffoldResponse{
		NoteID:    noteID,
		Scaffolds: h.svc.NoteScaffolds(r.Context(), noteID),
	})
}
