package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/warungkas/warungkas/internal/platform/httpx"
	"github.com/warungkas/warungkas/internal/reports"
	"github.com/warungkas/warungkas/internal/shared"
	"github.com/warungkas/warungkas/report"
)

// Handler wires the report endpoints: period reports, CSV/PDF exports, and
// the profit distribution configuration.
type Handler struct {
	logger    *slog.Logger
	service   *reports.Service
	pdf       *report.Client
	validate  *validator.Validate
	rateLimit func(http.Handler) http.Handler
	clock     func() time.Time
}

// NewHandler constructs the report handler. pdf may be nil; PDF export then
// responds 503.
func NewHandler(logger *slog.Logger, service *reports.Service, pdf *report.Client) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		pdf:       pdf,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		rateLimit: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// MountRoutes registers the report endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports/daily", h.HandleDaily)
	r.Get("/reports/monthly", h.HandleMonthly)
	r.Get("/reports/yearly", h.HandleYearly)
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/reports/{kind}/export.csv", h.HandleExportCSV)
		r.Get("/reports/{kind}/export.pdf", h.HandleExportPDF)
	})
	r.Get("/distribution-config", h.HandleGetConfig)
	r.Put("/distribution-config", h.HandleSaveConfig)
	r.Get("/founders", h.HandleListFounders)
	r.Post("/founders", h.HandleAddFounder)
	r.Delete("/founders/{id}", h.HandleDeleteFounder)
}

// HandleDaily responds with the report for one day. Query: date=YYYY-MM-DD,
// defaulting to today.
func (h *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	rep, err := h.buildReport(r, shared.WindowDaily)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

// HandleMonthly responds with the report for one calendar month. Query:
// year, month, defaulting to the current month.
func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	rep, err := h.buildReport(r, shared.WindowMonthly)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

// HandleYearly responds with the report for one calendar year. Query: year,
// defaulting to the current year.
func (h *Handler) HandleYearly(w http.ResponseWriter, r *http.Request) {
	rep, err := h.buildReport(r, shared.WindowYearly)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

// HandleExportCSV streams a period report as CSV.
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "jenis laporan tidak valid")
		return
	}
	rep, err := h.buildReport(r, kind)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	filename := fmt.Sprintf("laporan-%s-%s.csv", rep.Kind, rep.Period)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := writeReportCSV(w, rep); err != nil {
		h.logger.Error("stream report csv", slog.Any("error", err))
	}
}

// HandleExportPDF renders a period report to PDF through Gotenberg.
func (h *Handler) HandleExportPDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		httpx.Problem(w, http.StatusServiceUnavailable, "Service Unavailable", "ekspor pdf tidak tersedia")
		return
	}
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "jenis laporan tidak valid")
		return
	}
	rep, err := h.buildReport(r, kind)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	html, err := report.RenderPeriodHTML(rep)
	if err != nil {
		h.logger.Error("render report html", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Server Error", "gagal membuat laporan")
		return
	}
	pdf, err := h.pdf.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render report pdf", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadGateway, "Bad Gateway", "layanan pdf gagal")
		return
	}
	filename := fmt.Sprintf("laporan-%s-%s.pdf", rep.Kind, rep.Period)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(pdf)
}

// HandleGetConfig responds with the stored distribution configuration.
func (h *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.Config(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cfg)
}

type configRequest struct {
	BusinessPercentage            float64 `json:"businessPercentage" validate:"gte=0,lte=100"`
	FounderPercentage             float64 `json:"founderPercentage" validate:"gte=0,lte=100"`
	BusinessSavingsPercentage     float64 `json:"businessSavingsPercentage" validate:"gte=0,lte=100"`
	BusinessOperationalPercentage float64 `json:"businessOperationalPercentage" validate:"gte=0,lte=100"`
}

// HandleSaveConfig stores the distribution configuration.
func (h *Handler) HandleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	cfg := reports.DistributionConfig{
		BusinessPercentage:            req.BusinessPercentage,
		FounderPercentage:             req.FounderPercentage,
		BusinessSavingsPercentage:     req.BusinessSavingsPercentage,
		BusinessOperationalPercentage: req.BusinessOperationalPercentage,
	}
	if err := h.service.SaveConfig(r.Context(), cfg); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cfg)
}

// HandleListFounders responds with founders and their normalised shares.
func (h *Handler) HandleListFounders(w http.ResponseWriter, r *http.Request) {
	founders, err := h.service.FounderList(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, founders)
}

type founderRequest struct {
	Name       string  `json:"name" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

// HandleAddFounder stores a founder share.
func (h *Handler) HandleAddFounder(w http.ResponseWriter, r *http.Request) {
	var req founderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "body json tidak valid")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	founder, err := h.service.AddFounder(r.Context(), reports.FounderShare{Name: req.Name, Percentage: req.Percentage})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, founder)
}

// HandleDeleteFounder removes a founder share.
func (h *Handler) HandleDeleteFounder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFounder(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buildReport(r *http.Request, kind shared.WindowKind) (reports.Report, error) {
	now := h.clock()
	q := r.URL.Query()
	switch kind {
	case shared.WindowDaily:
		date := now
		if raw := q.Get("date"); raw != "" {
			parsed, err := time.Parse(shared.DayLayout, raw)
			if err != nil {
				return reports.Report{}, fmt.Errorf("%w: format tanggal tidak valid", shared.ErrValidation)
			}
			date = parsed
		}
		return h.service.Daily(r.Context(), date)
	case shared.WindowMonthly:
		year, err := intParam(q.Get("year"), now.Year())
		if err != nil {
			return reports.Report{}, err
		}
		monthNum, err := intParam(q.Get("month"), int(now.Month()))
		if err != nil {
			return reports.Report{}, err
		}
		if monthNum < 1 || monthNum > 12 {
			return reports.Report{}, fmt.Errorf("%w: bulan harus antara 1 dan 12", shared.ErrValidation)
		}
		return h.service.Monthly(r.Context(), year, time.Month(monthNum))
	default:
		year, err := intParam(q.Get("year"), now.Year())
		if err != nil {
			return reports.Report{}, err
		}
		return h.service.Yearly(r.Context(), year)
	}
}

func parseKind(raw string) (shared.WindowKind, bool) {
	switch raw {
	case string(shared.WindowDaily):
		return shared.WindowDaily, true
	case string(shared.WindowMonthly):
		return shared.WindowMonthly, true
	case string(shared.WindowYearly):
		return shared.WindowYearly, true
	}
	return "", false
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter angka tidak valid", shared.ErrValidation)
	}
	return value, nil
}
