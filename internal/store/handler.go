package store

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warungkas/warungkas/internal/platform/httpx"
	"github.com/warungkas/warungkas/internal/shared"
)

// Handler exposes the admin data endpoints: full reset and JSON backup.
type Handler struct {
	logger *slog.Logger
	store  *Store
	bump   shared.CacheInvalidator
}

// NewHandler constructs the admin handler.
func NewHandler(logger *slog.Logger, store *Store, bump shared.CacheInvalidator) *Handler {
	return &Handler{logger: logger, store: store, bump: bump}
}

// MountRoutes registers the admin endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/admin/reset", h.Reset)
	r.Get("/admin/backup", h.ExportBackup)
	r.Post("/admin/backup/restore", h.ImportBackup)
}

// Reset wipes every collection.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		h.logger.Error("reset data", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if h.bump != nil {
		_ = h.bump.Bump(r.Context())
	}
	h.logger.Warn("all data reset")
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// ExportBackup dumps every collection as one JSON document.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	dump, err := h.store.Export(r.Context())
	if err != nil {
		h.logger.Error("export backup", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="warungkas-backup.json"`)
	httpx.JSON(w, http.StatusOK, dump)
}

// ImportBackup restores a dump produced by ExportBackup.
func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	var dump map[string]json.RawMessage
	if err := httpx.DecodeJSON(r, &dump); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.store.Import(r.Context(), dump); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if h.bump != nil {
		_ = h.bump.Bump(r.Context())
	}
	h.logger.Info("backup restored", slog.Int("collections", len(dump)))
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
