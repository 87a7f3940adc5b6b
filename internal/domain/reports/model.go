package reports

import (
	"budget-app-go/internal/domain/budgets"
	"budget-app-go/internal/domain/expenses"
)

type BudgetSummary struct {
	Category     string  `json:"category"`
	Budget       int64   `json:"budget"`
	Used         int64   `json:"used"`
	Remaining    int64   `json:"remaining"`
	Percentage   float64 `json:"percentage"`
	Color        string  `json:"color"`
	IsOverBudget bool    `json:"is_over_budget"`
}

type MonthlyReport struct {
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	TotalExpenses     int64           `json:"total_expenses"`
	TotalBudget       int64           `json:"total_budget"`
	BudgetUtilization float64         `json:"budget_utilization"`
	Categories        []BudgetSummary `json:"categories"`
	ExpenseCount      int             `json:"expense_count"`
}

// Snapshot is the read-only input of one aggregation call.
type Snapshot struct {
	Expenses   []expenses.Expense
	Budgets    []budgets.Budget
	Categories []expenses.Category
}
