package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whatson-app/whatson/internal/apperr"
	"github.com/whatson-app/whatson/internal/hubservice"
)

// PackageHandler serves hub package artifacts for download.
type PackageHandler struct {
	svc *hubservice.Service
}

// NewPackageHandler creates a handler backed by the hub service.
func NewPackageHandler(svc *hubservice.Service) *PackageHandler {
	return &PackageHandler{svc: svc}
}

// Download handles GET /hubs/{name}/package. The artifact path comes from
// the registry, never from the URL, so no traversal is possible.
func (h *PackageHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path, err := h.svc.PackagePath(r.Context(), name)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.wshub"`)
	http.ServeFile(w, r, path)
}
