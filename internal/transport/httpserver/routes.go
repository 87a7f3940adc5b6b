package httpserver

import (
	"net/http"

	"budget-app-go/internal/config"
	"budget-app-go/internal/transport/httpserver/handler"
	"budget-app-go/internal/transport/httpserver/middleware"
	"budget-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the API under /api and the Prometheus exposition under
// /metrics. HTTP metrics are registered on reg; /metrics serves reg together
// with the default registry.
func NewRouter(cfg config.Config, handlers *handler.Handlers, reg *prometheus.Registry, log logger.Logger) http.Handler {
	metrics := middleware.NewHTTPMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(middleware.NewCORS(cfg.HTTP.CORSAllowedOrigins))
	r.Use(metrics.Middleware)

	gatherers := prometheus.Gatherers{reg, prometheus.DefaultGatherer}
	r.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/expenses", handlers.ListExpenses)
		r.Post("/expenses", handlers.CreateExpense)
		r.Post("/expenses/import", handlers.ImportExpenses)
		r.Get("/expenses/export", handlers.ExportExpenses)
		r.Get("/expenses/{id}", handlers.GetExpense)
		r.Put("/expenses/{id}", handlers.UpdateExpense)
		r.Delete("/expenses/{id}", handlers.DeleteExpense)

		r.Get("/categories", handlers.ListCategories)
		r.Post("/categories", handlers.CreateCategory)

		r.Get("/budgets", handlers.ListBudgets)
		r.Post("/budgets", handlers.CreateBudget)
		r.Get("/budgets/{id}", handlers.GetBudget)
		r.Patch("/budgets/{id}", handlers.UpdateBudget)
		r.Put("/budgets/{id}", handlers.UpdateBudget)
		r.Delete("/budgets/{id}", handlers.DeleteBudget)

		r.Get("/reports/monthly", handlers.MonthlyReport)
		r.Get("/reports/monthly/export", handlers.ExportMonthlyReport)
		r.Get("/reports/budget-summary", handlers.BudgetSummary)
	})

	return r
}
