package inmemory

import (
	"context"
	"sort"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

func (s *Store) ListExpenses(ctx context.Context, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]expensesdomain.Expense, 0, len(s.expenses))
	for _, expense := range s.expenses {
		if filter.Year != nil {
			if filter.Month != nil {
				if !expense.InMonth(*filter.Year, *filter.Month) {
					continue
				}
			} else if !expense.InYear(*filter.Year) {
				continue
			}
		}
		items = append(items, cloneExpense(expense))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID > items[j].ID
	})

	return items, nil
}

func (s *Store) GetExpenseByID(ctx context.Context, expenseID int64) (*expensesdomain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, expense := range s.expenses {
		if expense.ID == expenseID {
			found := cloneExpense(expense)
			return &found, nil
		}
	}
	return nil, expensesdomain.ErrExpenseNotFound
}

func (s *Store) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = s.nextExpenseID
	s.nextExpenseID++
	s.expenses = append(s.expenses, cloneExpense(*expense))
	return nil
}

func (s *Store) UpdateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == expense.ID {
			s.expenses[i] = cloneExpense(*expense)
			return nil
		}
	}
	return expensesdomain.ErrExpenseNotFound
}

func (s *Store) DeleteExpense(ctx context.Context, expenseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == expenseID {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
