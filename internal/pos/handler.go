package pos

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warungkas/warungkas/internal/platform/httpx"
)

// Handler wires POS HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
	clock    func() time.Time
}

// NewHandler constructs the POS handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

// MountRoutes registers POS endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/transactions", h.List)
	r.Post("/checkout", h.Checkout)
}

type checkoutRequest struct {
	Lines []struct {
		ProductID string `json:"productId" validate:"required"`
		Quantity  int    `json:"quantity" validate:"gt=0"`
	} `json:"lines" validate:"required,min=1,dive"`
	DiscountPercent float64 `json:"discountPercent" validate:"gte=0,lte=100"`
	AmountPaid      float64 `json:"amountPaid" validate:"gte=0"`
}

// List responds with all transactions.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list transactions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, transactions)
}

// Checkout completes a sale from the posted cart.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	lines := make([]CartLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, CartLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	transaction, err := h.service.Checkout(r.Context(), CheckoutRequest{
		Lines:           lines,
		DiscountPercent: req.DiscountPercent,
		AmountPaid:      req.AmountPaid,
	}, h.clock())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, transaction)
}
