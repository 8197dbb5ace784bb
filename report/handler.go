package report

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/pos"
)

// PayslipSource builds payslips for PDF rendering.
type PayslipSource interface {
	BuildPayslip(ctx context.Context, employeeID string, year int, month time.Month) (payroll.Payslip, error)
}

// TransactionSource lists checkout transactions for receipt rendering.
type TransactionSource interface {
	List(ctx context.Context) ([]pos.Transaction, error)
}

// Handler manages document rendering endpoints.
type Handler struct {
	client       *Client
	logger       *slog.Logger
	payslips     PayslipSource
	transactions TransactionSource
	clock        func() time.Time
}

// NewHandler creates a document handler.
func NewHandler(client *Client, logger *slog.Logger, payslips PayslipSource, transactions TransactionSource) *Handler {
	return &Handler{
		client:       client,
		logger:       logger,
		payslips:     payslips,
		transactions: transactions,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

// MountRoutes registers document routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/ping", h.ping)
	r.Get("/receipt/{id}.pdf", h.receipt)
	r.Get("/payslip/{employeeId}.pdf", h.payslip)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if h.client == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	if err := h.client.Ping(r.Context()); err != nil {
		h.logger.Warn("gotenberg ping failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	transactions, err := h.transactions.List(r.Context())
	if err != nil {
		h.logger.Error("load transactions", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var trx *pos.Transaction
	for i := range transactions {
		if transactions[i].ID == id {
			trx = &transactions[i]
			break
		}
	}
	if trx == nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	html, err := RenderReceiptHTML(*trx)
	if err != nil {
		h.logger.Error("render receipt html", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.servePDF(w, r, html, fmt.Sprintf("struk-%s.pdf", trx.ID))
}

func (h *Handler) payslip(w http.ResponseWriter, r *http.Request) {
	now := h.clock()
	year := now.Year()
	month := now.Month()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		month = time.Month(parsed)
	}

	slip, err := h.payslips.BuildPayslip(r.Context(), chi.URLParam(r, "employeeId"), year, month)
	if err != nil {
		h.logger.Error("build payslip", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	html, err := RenderPayslipHTML(slip)
	if err != nil {
		h.logger.Error("render payslip html", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("slip-gaji-%s-%s.pdf", slip.Employee.ID, slip.Period)
	h.servePDF(w, r, html, filename)
}

func (h *Handler) servePDF(w http.ResponseWriter, r *http.Request, html, filename string) {
	if h.client == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	pdf, err := h.client.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render pdf", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
