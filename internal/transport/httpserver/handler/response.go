package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	budgetsdomain "budget-app-go/internal/domain/budgets"
	expensesdomain "budget-app-go/internal/domain/expenses"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps a domain error onto the HTTP error envelope. Known
// business failures are logged at warn, everything else as internal.
func (h *Handlers) writeServiceError(w http.ResponseWriter, action string, err error, args ...any) {
	switch {
	case expensesdomain.IsValidationError(err),
		budgetsdomain.IsValidationError(err),
		errors.Is(err, expensesdomain.ErrMissingColumns),
		errors.Is(err, expensesdomain.ErrMalformedCSV):
		h.log.BusinessError(action+": invalid request", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, expensesdomain.ErrExpenseNotFound):
		h.log.BusinessError(action+": expense not found", err, args...)
		writeError(w, http.StatusNotFound, "expense_not_found", err.Error())
	case errors.Is(err, budgetsdomain.ErrBudgetNotFound):
		h.log.BusinessError(action+": budget not found", err, args...)
		writeError(w, http.StatusNotFound, "budget_not_found", err.Error())
	case errors.Is(err, budgetsdomain.ErrBudgetExists):
		h.log.BusinessError(action+": budget exists", err, args...)
		writeError(w, http.StatusConflict, "budget_exists", err.Error())
	case errors.Is(err, expensesdomain.ErrCategoryNameTaken):
		h.log.BusinessError(action+": category exists", err, args...)
		writeError(w, http.StatusConflict, "category_exists", err.Error())
	default:
		h.log.InternalError(action+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
