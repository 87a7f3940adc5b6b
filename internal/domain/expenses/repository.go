package expenses

import "context"

type Repository interface {
	ListExpenses(ctx context.Context, filter ListFilter) ([]Expense, error)
	GetExpenseByID(ctx context.Context, expenseID int64) (*Expense, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	UpdateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, expenseID int64) (bool, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	CountCategoriesByName(ctx context.Context, name string) (int64, error)
}
