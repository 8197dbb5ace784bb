package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/warungkas/warungkas/internal/assets"
	"github.com/warungkas/warungkas/internal/catalog"
	"github.com/warungkas/warungkas/internal/ledger"
	"github.com/warungkas/warungkas/internal/payroll"
	"github.com/warungkas/warungkas/internal/pos"
	reportshttp "github.com/warungkas/warungkas/internal/reports/http"
	"github.com/warungkas/warungkas/internal/store"
	"github.com/warungkas/warungkas/jobs"
	"github.com/warungkas/warungkas/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	CatalogHandler *catalog.Handler
	POSHandler     *pos.Handler
	PayrollHandler *payroll.Handler
	AssetsHandler  *assets.Handler
	LedgerHandler  *ledger.Handler
	ReportsHandler *reportshttp.Handler
	AdminHandler   *store.Handler
	JobsHandler    *jobs.Handler
	ReportHandler  *report.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		if params.CatalogHandler != nil {
			params.CatalogHandler.MountRoutes(r)
		}
		if params.POSHandler != nil {
			params.POSHandler.MountRoutes(r)
		}
		if params.PayrollHandler != nil {
			params.PayrollHandler.MountRoutes(r)
		}
		if params.AssetsHandler != nil {
			params.AssetsHandler.MountRoutes(r)
		}
		if params.LedgerHandler != nil {
			params.LedgerHandler.MountRoutes(r)
		}
		if params.ReportsHandler != nil {
			params.ReportsHandler.MountRoutes(r)
		}
		if params.AdminHandler != nil {
			params.AdminHandler.MountRoutes(r)
		}
	})

	if params.ReportHandler != nil {
		r.Route("/documents", params.ReportHandler.MountRoutes)
	}
	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}

	return r
}
