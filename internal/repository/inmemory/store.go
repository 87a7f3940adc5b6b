package inmemory

import (
	"sync"

	budgetsdomain "budget-app-go/internal/domain/budgets"
	expensesdomain "budget-app-go/internal/domain/expenses"
)

// Store keeps expenses, categories and budgets in process memory. It backs
// development runs and tests; nothing survives a restart.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	expenses   []expensesdomain.Expense
	categories []expensesdomain.Category
	budgets    []budgetsdomain.Budget

	nextExpenseID  int64
	nextCategoryID int64
	nextBudgetID   int64
}

func New() *Store {
	return &Store{
		nextExpenseID:  1,
		nextCategoryID: 1,
		nextBudgetID:   1,
	}
}

func cloneExpense(expense expensesdomain.Expense) expensesdomain.Expense {
	if expense.Description != nil {
		description := *expense.Description
		expense.Description = &description
	}
	return expense
}

func cloneBudget(budget budgetsdomain.Budget) budgetsdomain.Budget {
	if budget.Month != nil {
		month := *budget.Month
		budget.Month = &month
	}
	return budget
}
