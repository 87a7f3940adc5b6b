package budgets

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBudgets(ctx context.Context, filter ListFilter) ([]Budget, error) {
	items, err := s.repo.ListBudgets(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []Budget{}, nil
	}
	return items, nil
}

// ListBudgetsByPeriod returns monthly budgets for (year, month) when month is
// set and yearly budgets for year otherwise, in insertion order.
func (s *Service) ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]Budget, error) {
	items, err := s.repo.ListBudgetsByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []Budget{}, nil
	}
	return items, nil
}

func (s *Service) GetBudget(ctx context.Context, budgetID int64) (*Budget, error) {
	return s.repo.GetBudgetByID(ctx, budgetID)
}

func (s *Service) CreateBudget(ctx context.Context, input CreateBudgetInput) (*Budget, error) {
	period := input.Period
	if period == "" {
		period = PeriodMonthly
	}

	budget := Budget{
		Category: strings.TrimSpace(input.Category),
		Amount:   input.Amount,
		Period:   period,
		Year:     input.Year,
		Month:    copyInt(input.Month),
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := tx.CountBudgetsByKey(ctx, budget.Category, budget.Year, budget.Month, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrBudgetExists
		}
		return tx.CreateBudget(ctx, &budget)
	})
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

func (s *Service) UpdateBudget(ctx context.Context, input UpdateBudgetInput) (*Budget, error) {
	var updated Budget
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		budget, err := tx.GetBudgetByID(ctx, input.ID)
		if err != nil {
			return err
		}

		if input.Category != nil {
			budget.Category = strings.TrimSpace(*input.Category)
		}
		if input.Amount != nil {
			budget.Amount = *input.Amount
		}
		if input.Period != nil {
			budget.Period = *input.Period
		}
		if input.Year != nil {
			budget.Year = *input.Year
		}
		if input.ClearMonth {
			budget.Month = nil
		} else if input.Month != nil {
			budget.Month = copyInt(input.Month)
		}

		if err := validateBudget(*budget); err != nil {
			return err
		}

		count, err := tx.CountBudgetsByKey(ctx, budget.Category, budget.Year, budget.Month, budget.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrBudgetExists
		}

		if err := tx.UpdateBudget(ctx, budget); err != nil {
			return err
		}
		updated = *budget
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID int64) error {
	deleted, err := s.repo.DeleteBudget(ctx, budgetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func validateBudget(budget Budget) error {
	if budget.Category == "" {
		return ErrCategoryRequired
	}
	if budget.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !budget.Period.Valid() {
		return ErrInvalidPeriod
	}
	if budget.Year < 1 || budget.Year > 9999 {
		return ErrInvalidYear
	}
	switch budget.Period {
	case PeriodMonthly:
		if budget.Month == nil || *budget.Month < 1 || *budget.Month > 12 {
			return ErrInvalidMonth
		}
	case PeriodYearly:
		if budget.Month != nil {
			return ErrUnexpectedMonth
		}
	}
	return nil
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
