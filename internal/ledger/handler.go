package ledger

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warungkas/warungkas/internal/platform/httpx"
)

// Handler wires bookkeeping HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the ledger handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// MountRoutes registers bookkeeping endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/expenses", h.ListExpenses)
	r.Post("/expenses", h.CreateExpense)
	r.Delete("/expenses/{id}", h.DeleteExpense)

	r.Get("/expense-categories", h.ListCategories)
	r.Post("/expense-categories", h.AddCategory)
	r.Put("/expense-categories/{name}", h.RenameCategory)
	r.Delete("/expense-categories/{name}", h.RemoveCategory)

	r.Get("/accommodation-costs", h.ListAccommodationCosts)
	r.Post("/accommodation-costs", h.CreateAccommodationCost)
	r.Delete("/accommodation-costs/{id}", h.DeleteAccommodationCost)

	r.Get("/debts", h.ListDebts)
	r.Post("/debts", h.CreateDebt)
	r.Put("/debts/{id}/status", h.SetDebtStatus)
	r.Delete("/debts/{id}", h.DeleteDebt)

	r.Get("/receivables", h.ListReceivables)
	r.Post("/receivables", h.CreateReceivable)
	r.Put("/receivables/{id}/status", h.SetReceivableStatus)
	r.Delete("/receivables/{id}", h.DeleteReceivable)

	r.Get("/suppliers", h.ListSuppliers)
	r.Post("/suppliers", h.CreateSupplier)
	r.Delete("/suppliers/{id}", h.DeleteSupplier)
}

type expenseRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"required"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type accommodationRequest struct {
	Type        string  `json:"type" validate:"required,oneof=supplier_to_kitchen kitchen_to_customer"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
	Distance    float64 `json:"distance" validate:"gte=0"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Vehicle     string  `json:"vehicle"`
}

type financialRecordRequest struct {
	Name        string  `json:"name" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"required"`
	DueDate     string  `json:"dueDate"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=paid unpaid"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid unpaid"`
}

type supplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	Goods   string `json:"goods"`
}

func (req financialRecordRequest) toRecord() FinancialRecord {
	return FinancialRecord{
		Name:        req.Name,
		Amount:      req.Amount,
		Date:        req.Date,
		DueDate:     req.DueDate,
		Description: req.Description,
		Status:      req.Status,
	}
}

// ListExpenses responds with all expenses.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.Expenses(r.Context())
	if err != nil {
		h.logger.Error("list expenses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, expenses)
}

// CreateExpense stores a new expense.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	expense, err := h.service.CreateExpense(r.Context(), Expense{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, expense)
}

// DeleteExpense removes an expense.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories responds with the expense category list.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categories)
}

// AddCategory appends an expense category.
func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.AddCategory(r.Context(), req.Name); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenameCategory renames a category, cascading to expenses.
func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.RenameCategory(r.Context(), chi.URLParam(r, "name"), req.Name); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveCategory deletes a category from the pick list.
func (h *Handler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAccommodationCosts responds with all transport cost entries.
func (h *Handler) ListAccommodationCosts(w http.ResponseWriter, r *http.Request) {
	costs, err := h.service.AccommodationCosts(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, costs)
}

// CreateAccommodationCost stores a transport cost entry.
func (h *Handler) CreateAccommodationCost(w http.ResponseWriter, r *http.Request) {
	var req accommodationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	cost, err := h.service.CreateAccommodationCost(r.Context(), AccommodationCost{
		Type:        req.Type,
		Date:        req.Date,
		Description: req.Description,
		Distance:    req.Distance,
		Cost:        req.Cost,
		Vehicle:     req.Vehicle,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, cost)
}

// DeleteAccommodationCost removes a transport cost entry.
func (h *Handler) DeleteAccommodationCost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccommodationCost(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDebts responds with all debts.
func (h *Handler) ListDebts(w http.ResponseWriter, r *http.Request) {
	debts, err := h.service.Debts(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, debts)
}

// CreateDebt stores a debt record.
func (h *Handler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	h.createFinancialRecord(w, r, h.service.CreateDebt)
}

// SetDebtStatus marks a debt paid or unpaid.
func (h *Handler) SetDebtStatus(w http.ResponseWriter, r *http.Request) {
	h.setFinancialStatus(w, r, h.service.SetDebtStatus)
}

// DeleteDebt removes a debt record.
func (h *Handler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDebt(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListReceivables responds with all receivables.
func (h *Handler) ListReceivables(w http.ResponseWriter, r *http.Request) {
	receivables, err := h.service.Receivables(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, receivables)
}

// CreateReceivable stores a receivable record.
func (h *Handler) CreateReceivable(w http.ResponseWriter, r *http.Request) {
	h.createFinancialRecord(w, r, h.service.CreateReceivable)
}

// SetReceivableStatus marks a receivable paid or unpaid.
func (h *Handler) SetReceivableStatus(w http.ResponseWriter, r *http.Request) {
	h.setFinancialStatus(w, r, h.service.SetReceivableStatus)
}

// DeleteReceivable removes a receivable record.
func (h *Handler) DeleteReceivable(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteReceivable(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSuppliers responds with the supplier list.
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.Suppliers(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, suppliers)
}

// CreateSupplier stores a supplier contact.
func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	supplier, err := h.service.CreateSupplier(r.Context(), Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		Goods:   req.Goods,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, supplier)
}

// DeleteSupplier removes a supplier contact.
func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createRecordFunc func(ctx context.Context, rec FinancialRecord) (FinancialRecord, error)

func (h *Handler) createFinancialRecord(w http.ResponseWriter, r *http.Request, create createRecordFunc) {
	var req financialRecordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	record, err := create(r.Context(), req.toRecord())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, record)
}

type setStatusFunc func(ctx context.Context, id, status string) (FinancialRecord, error)

func (h *Handler) setFinancialStatus(w http.ResponseWriter, r *http.Request, set setStatusFunc) {
	var req statusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	record, err := set(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, record)
}
