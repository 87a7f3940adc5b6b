package handler

import (
	"net/http"
	"strconv"

	reportsdomain "budget-app-go/internal/domain/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func parseReportMonth(r *http.Request) (int, int, error) {
	query := r.URL.Query()
	year, err := parseRequiredInt(query.Get("year"), "year")
	if err != nil {
		return 0, 0, err
	}
	month, err := parseRequiredInt(query.Get("month"), "month")
	if err != nil {
		return 0, 0, err
	}
	if !validMonth(&month) {
		return 0, 0, errInvalidMonth
	}
	return year, month, nil
}

func (h *Handlers) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseReportMonth(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	report, err := h.Reports.MonthlyReport(r.Context(), year, month)
	if err != nil {
		h.writeServiceError(w, "reports.monthly", err, "year", year, "month", month)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseReportMonth(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	report, err := h.Reports.MonthlyReport(r.Context(), year, month)
	if err != nil {
		h.writeServiceError(w, "reports.export", err, "year", year, "month", month)
		return
	}

	data, err := reportsdomain.ExportMonthlyReportXLSX(report)
	if err != nil {
		h.writeServiceError(w, "reports.export", err, "year", year, "month", month)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportsdomain.XLSXFilename(year, month)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handlers) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	year, err := parseRequiredInt(query.Get("year"), "year")
	if err != nil {
		writeParamError(w, err)
		return
	}
	month, err := parseOptionalInt(query.Get("month"))
	if err != nil {
		writeParamError(w, err)
		return
	}
	if !validMonth(month) {
		writeParamError(w, errInvalidMonth)
		return
	}

	summary, err := h.Reports.BudgetSummary(r.Context(), year, month)
	if err != nil {
		h.writeServiceError(w, "reports.budget_summary", err, "year", year)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
