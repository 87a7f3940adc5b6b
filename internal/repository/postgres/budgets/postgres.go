package budgets

import (
	"context"
	"errors"

	budgetsdomain "budget-app-go/internal/domain/budgets"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(budgetsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListBudgets(ctx context.Context, filter budgetsdomain.ListFilter) ([]budgetsdomain.Budget, error) {
	query := r.db.WithContext(ctx).Model(&budgetsdomain.Budget{})
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
		if filter.Month != nil {
			query = query.Where("period = ? AND month = ?", budgetsdomain.PeriodMonthly, *filter.Month)
		}
	}

	var items []budgetsdomain.Budget
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]budgetsdomain.Budget, error) {
	query := r.db.WithContext(ctx).Model(&budgetsdomain.Budget{}).Where("year = ?", year)
	if month == nil {
		query = query.Where("period = ?", budgetsdomain.PeriodYearly)
	} else {
		query = query.Where("period = ? AND month = ?", budgetsdomain.PeriodMonthly, *month)
	}

	var items []budgetsdomain.Budget
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetBudgetByID(ctx context.Context, budgetID int64) (*budgetsdomain.Budget, error) {
	var budget budgetsdomain.Budget
	if err := r.db.WithContext(ctx).Where("id = ?", budgetID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, budgetsdomain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *PostgresRepository) CreateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	err := r.db.WithContext(ctx).Create(budget).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return budgetsdomain.ErrBudgetExists
	}
	return err
}

func (r *PostgresRepository) UpdateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&budgetsdomain.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"category": budget.Category,
			"amount":   budget.Amount,
			"period":   budget.Period,
			"year":     budget.Year,
			"month":    budget.Month,
		})
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return budgetsdomain.ErrBudgetExists
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return budgetsdomain.ErrBudgetNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteBudget(ctx context.Context, budgetID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&budgetsdomain.Budget{}, "id = ?", budgetID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountBudgetsByKey(ctx context.Context, category string, year int, month *int, excludeID int64) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&budgetsdomain.Budget{}).
		Where("category = ? AND year = ?", category, year)
	if month == nil {
		query = query.Where("month IS NULL")
	} else {
		query = query.Where("month = ?", *month)
	}
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
