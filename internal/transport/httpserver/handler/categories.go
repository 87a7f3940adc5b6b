package handler

import (
	"net/http"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type categoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func toCategoryResponse(category expensesdomain.Category) categoryResponse {
	return categoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.Expenses.ListCategories(r.Context())
	if err != nil {
		h.writeServiceError(w, "categories.list", err)
		return
	}

	response := make([]categoryResponse, 0, len(items))
	for _, category := range items {
		response = append(response, toCategoryResponse(category))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Expenses.CreateCategory(r.Context(), expensesdomain.CreateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		h.writeServiceError(w, "categories.create", err, "name", req.Name)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(*created))
}
