package handler

import (
	"net/http"

	budgetsdomain "budget-app-go/internal/domain/budgets"
)

type createBudgetRequest struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Period   string `json:"period"`
	Year     int    `json:"year"`
	Month    *int   `json:"month"`
}

type updateBudgetRequest struct {
	Category *string     `json:"category"`
	Amount   *int64      `json:"amount"`
	Period   *string     `json:"period"`
	Year     *int        `json:"year"`
	Month    optionalInt `json:"month"`
}

type budgetResponse struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Period   string `json:"period"`
	Year     int    `json:"year"`
	Month    *int   `json:"month"`
}

func toBudgetResponse(budget budgetsdomain.Budget) budgetResponse {
	return budgetResponse{
		ID:       budget.ID,
		Category: budget.Category,
		Amount:   budget.Amount,
		Period:   string(budget.Period),
		Year:     budget.Year,
		Month:    budget.Month,
	}
}

func (h *Handlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	year, err := parseOptionalInt(query.Get("year"))
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

	items, err := h.Budgets.ListBudgets(r.Context(), budgetsdomain.ListFilter{Year: year, Month: month})
	if err != nil {
		h.writeServiceError(w, "budgets.list", err)
		return
	}

	response := make([]budgetResponse, 0, len(items))
	for _, budget := range items {
		response = append(response, toBudgetResponse(budget))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetBudget(w http.ResponseWriter, r *http.Request) {
	budgetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	budget, err := h.Budgets.GetBudget(r.Context(), budgetID)
	if err != nil {
		h.writeServiceError(w, "budgets.get", err, "budget_id", budgetID)
		return
	}
	writeJSON(w, http.StatusOK, toBudgetResponse(*budget))
}

func (h *Handlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Budgets.CreateBudget(r.Context(), budgetsdomain.CreateBudgetInput{
		Category: req.Category,
		Amount:   req.Amount,
		Period:   budgetsdomain.Period(req.Period),
		Year:     req.Year,
		Month:    req.Month,
	})
	if err != nil {
		h.writeServiceError(w, "budgets.create", err, "category", req.Category, "year", req.Year)
		return
	}

	writeJSON(w, http.StatusCreated, toBudgetResponse(*created))
}

// UpdateBudget applies only the fields present in the body. An explicit
// "month": null clears the month.
func (h *Handlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	var req updateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := budgetsdomain.UpdateBudgetInput{
		ID:       budgetID,
		Category: req.Category,
		Amount:   req.Amount,
		Year:     req.Year,
	}
	if req.Period != nil {
		period := budgetsdomain.Period(*req.Period)
		input.Period = &period
	}
	if req.Month.Set {
		input.Month = req.Month.Value
		input.ClearMonth = req.Month.Value == nil
	}

	updated, err := h.Budgets.UpdateBudget(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, "budgets.update", err, "budget_id", budgetID)
		return
	}

	writeJSON(w, http.StatusOK, toBudgetResponse(*updated))
}

func (h *Handlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Budgets.DeleteBudget(r.Context(), budgetID); err != nil {
		h.writeServiceError(w, "budgets.delete", err, "budget_id", budgetID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
