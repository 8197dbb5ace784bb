package payroll

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/warungkas/warungkas/internal/platform/httpx"
)

// Handler wires payroll HTTP endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs the payroll handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// MountRoutes registers payroll endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/employees", h.ListEmployees)
	r.Post("/employees", h.CreateEmployee)
	r.Put("/employees/{id}", h.UpdateEmployee)
	r.Put("/employees/{id}/payment-status", h.SetPaymentStatus)
	r.Delete("/employees/{id}", h.DeleteEmployee)
	r.Get("/employees/{id}/payslip", h.Payslip)

	r.Get("/work-records", h.ListWorkRecords)
	r.Post("/work-records", h.CreateWorkRecord)
	r.Delete("/work-records/{id}", h.DeleteWorkRecord)
}

type employeeRequest struct {
	Name           string  `json:"name" validate:"required"`
	Position       string  `json:"position"`
	EmploymentType string  `json:"employmentType" validate:"required,oneof=full_time part_time"`
	BaseSalary     float64 `json:"baseSalary" validate:"gte=0"`
	Allowances     float64 `json:"allowances" validate:"gte=0"`
	Deductions     float64 `json:"deductions" validate:"gte=0"`
	HourlyRate     float64 `json:"hourlyRate" validate:"gte=0"`
	PaymentStatus  string  `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid"`
}

type paymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid unpaid"`
}

type workRecordRequest struct {
	EmployeeID  string  `json:"employeeId" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Hours       float64 `json:"hours" validate:"gt=0"`
	HourlyRate  float64 `json:"hourlyRate" validate:"gte=0"`
	Description string  `json:"description"`
}

func (req employeeRequest) toEmployee(id string) Employee {
	return Employee{
		ID:             id,
		Name:           req.Name,
		Position:       req.Position,
		EmploymentType: req.EmploymentType,
		BaseSalary:     req.BaseSalary,
		Allowances:     req.Allowances,
		Deductions:     req.Deductions,
		HourlyRate:     req.HourlyRate,
		PaymentStatus:  req.PaymentStatus,
	}
}

// ListEmployees responds with all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.Employees(r.Context())
	if err != nil {
		h.logger.Error("list employees", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, employees)
}

// CreateEmployee stores a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	employee, err := h.service.CreateEmployee(r.Context(), req.toEmployee(""))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, employee)
}

// UpdateEmployee replaces an existing employee.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	employee, err := h.service.UpdateEmployee(r.Context(), req.toEmployee(chi.URLParam(r, "id")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, employee)
}

// SetPaymentStatus marks an employee paid or unpaid.
func (h *Handler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req paymentStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	employee, err := h.service.SetPaymentStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, employee)
}

// DeleteEmployee removes an employee.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Payslip responds with an employee's monthly earnings statement. Month is
// selected with year and month query parameters.
func (h *Handler) Payslip(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "parameter year/month tidak valid")
		return
	}
	slip, err := h.service.BuildPayslip(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, slip)
}

// ListWorkRecords responds with all work records.
func (h *Handler) ListWorkRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.WorkRecords(r.Context())
	if err != nil {
		h.logger.Error("list work records", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

// CreateWorkRecord stores a billable-hours entry.
func (h *Handler) CreateWorkRecord(w http.ResponseWriter, r *http.Request) {
	var req workRecordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	record, err := h.service.CreateWorkRecord(r.Context(), WorkRecord{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		Hours:       req.Hours,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, record)
}

// DeleteWorkRecord removes a work record.
func (h *Handler) DeleteWorkRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteWorkRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseYearMonth(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}
