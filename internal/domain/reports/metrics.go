package reports

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindMonthly       = "monthly"
	kindBudgetSummary = "budget_summary"
)

var reportsGenerated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "budget_reports_generated_total",
		Help: "Total number of generated reports by kind",
	},
	[]string{"kind"},
)
