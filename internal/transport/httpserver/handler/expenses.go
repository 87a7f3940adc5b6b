package handler

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

const maxImportSize = 10 << 20

type expenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      int64   `json:"amount"`
	User        string  `json:"user"`
	Description *string `json:"description"`
}

type expenseResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	User        string    `json:"user"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type importResponse struct {
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

func toExpenseResponse(expense expensesdomain.Expense) expenseResponse {
	return expenseResponse{
		ID:          expense.ID,
		Date:        expense.Date,
		Category:    expense.Category,
		Amount:      expense.Amount,
		User:        expense.User,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
	}
}

func parseExpenseFilter(r *http.Request) (expensesdomain.ListFilter, error) {
	query := r.URL.Query()
	year, err := parseOptionalInt(query.Get("year"))
	if err != nil {
		return expensesdomain.ListFilter{}, err
	}
	month, err := parseOptionalInt(query.Get("month"))
	if err != nil {
		return expensesdomain.ListFilter{}, err
	}
	if !validMonth(month) {
		return expensesdomain.ListFilter{}, errInvalidMonth
	}
	return expensesdomain.ListFilter{Year: year, Month: month}, nil
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseExpenseFilter(r)
	if err != nil {
		writeParamError(w, err)
		return
	}

	items, err := h.Expenses.ListExpenses(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, "expenses.list", err)
		return
	}

	response := make([]expenseResponse, 0, len(items))
	for _, expense := range items {
		response = append(response, toExpenseResponse(expense))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	expense, err := h.Expenses.GetExpense(r.Context(), expenseID)
	if err != nil {
		h.writeServiceError(w, "expenses.get", err, "expense_id", expenseID)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseResponse(*expense))
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Expenses.CreateExpense(r.Context(), expensesdomain.CreateExpenseInput{
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		User:        req.User,
		Description: req.Description,
	})
	if err != nil {
		h.writeServiceError(w, "expenses.create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(*created))
}

func (h *Handlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Expenses.UpdateExpense(r.Context(), expensesdomain.UpdateExpenseInput{
		ID:          expenseID,
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		User:        req.User,
		Description: req.Description,
	})
	if err != nil {
		h.writeServiceError(w, "expenses.update", err, "expense_id", expenseID)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponse(*updated))
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Expenses.DeleteExpense(r.Context(), expenseID); err != nil {
		h.writeServiceError(w, "expenses.delete", err, "expense_id", expenseID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ImportExpenses(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing_parameter", "file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		writeError(w, http.StatusBadRequest, "invalid_request", "file must be a CSV file")
		return
	}

	result, err := h.Expenses.ImportCSV(r.Context(), file)
	if err != nil {
		h.writeServiceError(w, "expenses.import", err, "filename", header.Filename)
		return
	}

	h.log.Info("expenses.import: done", "filename", header.Filename, "imported", result.ImportedCount, "errors", len(result.Errors))
	writeJSON(w, http.StatusOK, importResponse{
		ImportedCount: result.ImportedCount,
		Errors:        result.Errors,
	})
}

func (h *Handlers) ExportExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseExpenseFilter(r)
	if err != nil {
		writeParamError(w, err)
		return
	}
	if filter.Year == nil {
		filter.Month = nil
	}

	items, err := h.Expenses.ListExpenses(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, "expenses.export", err)
		return
	}

	var buf bytes.Buffer
	if err := expensesdomain.ExportCSV(&buf, items); err != nil {
		h.writeServiceError(w, "expenses.export", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+expensesdomain.ExportFilename(filter)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
