package budgets

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListBudgets(ctx context.Context, filter ListFilter) ([]Budget, error)
	ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]Budget, error)
	GetBudgetByID(ctx context.Context, budgetID int64) (*Budget, error)
	CreateBudget(ctx context.Context, budget *Budget) error
	UpdateBudget(ctx context.Context, budget *Budget) error
	DeleteBudget(ctx context.Context, budgetID int64) (bool, error)
	// CountBudgetsByKey counts budgets sharing (category, year, month-or-null),
	// ignoring excludeID.
	CountBudgetsByKey(ctx context.Context, category string, year int, month *int, excludeID int64) (int64, error)
}
