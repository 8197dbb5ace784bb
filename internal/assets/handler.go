package assets

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warungkas/warungkas/internal/platform/httpx"
	"github.com/warungkas/warungkas/internal/shared"
)

// Handler wires asset HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
	clock    func() time.Time
}

// NewHandler constructs the asset handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// MountRoutes registers asset endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/assets", h.List)
	r.Post("/assets", h.Create)
	r.Put("/assets/{id}", h.Update)
	r.Delete("/assets/{id}", h.Delete)
}

type assetRequest struct {
	Name               string  `json:"name" validate:"required"`
	Category           string  `json:"category"`
	PurchaseDate       string  `json:"purchaseDate" validate:"required"`
	PurchasePrice      float64 `json:"purchasePrice" validate:"gte=0"`
	UsefulLife         int     `json:"usefulLife" validate:"gt=0"`
	SalvageValue       float64 `json:"salvageValue" validate:"gte=0"`
	DepreciationMethod string  `json:"depreciationMethod" validate:"required,oneof=straight_line reducing_balance"`
}

func (req assetRequest) toAsset(id string) Asset {
	return Asset{
		ID:                 id,
		Name:               req.Name,
		Category:           req.Category,
		PurchaseDate:       req.PurchaseDate,
		PurchasePrice:      req.PurchasePrice,
		UsefulLife:         req.UsefulLife,
		SalvageValue:       req.SalvageValue,
		DepreciationMethod: req.DepreciationMethod,
	}
}

// List responds with all assets and figures as of the as_of query date
// (defaults to today).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	asOf := h.clock()
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		parsed, ok := shared.ParseRecordDate(raw)
		if !ok {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "format as_of tidak valid")
			return
		}
		asOf = parsed
	}
	views, err := h.service.List(r.Context(), asOf)
	if err != nil {
		h.logger.Error("list assets", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, views)
}

// Create stores a new asset.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	asset, err := h.service.Create(r.Context(), req.toAsset(""))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, asset)
}

// Update replaces an existing asset.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	asset, err := h.service.Update(r.Context(), req.toAsset(chi.URLParam(r, "id")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, asset)
}

// Delete removes an asset.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
