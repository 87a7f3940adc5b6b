package inmemory

import (
	"context"

	budgetsdomain "budget-app-go/internal/domain/budgets"
)

// Transaction serializes fn against other transactions. Writes made by fn are
// applied immediately and are not rolled back on error.
func (s *Store) Transaction(ctx context.Context, fn func(budgetsdomain.Repository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s)
}

func (s *Store) ListBudgets(ctx context.Context, filter budgetsdomain.ListFilter) ([]budgetsdomain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]budgetsdomain.Budget, 0, len(s.budgets))
	for _, budget := range s.budgets {
		if filter.Matches(budget) {
			items = append(items, cloneBudget(budget))
		}
	}
	return items, nil
}

func (s *Store) ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]budgetsdomain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]budgetsdomain.Budget, 0)
	for _, budget := range s.budgets {
		if budget.MatchesPeriod(year, month) {
			items = append(items, cloneBudget(budget))
		}
	}
	return items, nil
}

func (s *Store) GetBudgetByID(ctx context.Context, budgetID int64) (*budgetsdomain.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, budget := range s.budgets {
		if budget.ID == budgetID {
			found := cloneBudget(budget)
			return &found, nil
		}
	}
	return nil, budgetsdomain.ErrBudgetNotFound
}

func (s *Store) CreateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget.ID = s.nextBudgetID
	s.nextBudgetID++
	s.budgets = append(s.budgets, cloneBudget(*budget))
	return nil
}

func (s *Store) UpdateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == budget.ID {
			s.budgets[i] = cloneBudget(*budget)
			return nil
		}
	}
	return budgetsdomain.ErrBudgetNotFound
}

func (s *Store) DeleteBudget(ctx context.Context, budgetID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == budgetID {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CountBudgetsByKey(ctx context.Context, category string, year int, month *int, excludeID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, budget := range s.budgets {
		if budget.ID == excludeID {
			continue
		}
		if budget.Category != category || budget.Year != year {
			continue
		}
		if sameMonth(budget.Month, month) {
			count++
		}
	}
	return count, nil
}

func sameMonth(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
