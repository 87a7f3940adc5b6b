package expenses

import (
	"context"
	"errors"
	"fmt"

	expensesdomain "budget-app-go/internal/domain/expenses"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListExpenses(ctx context.Context, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, error) {
	query := r.db.WithContext(ctx).Model(&expensesdomain.Expense{})
	if prefix, ok := datePrefix(filter); ok {
		query = query.Where("date LIKE ?", prefix)
	}

	var items []expensesdomain.Expense
	if err := query.Order("date desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetExpenseByID(ctx context.Context, expenseID int64) (*expensesdomain.Expense, error) {
	var expense expensesdomain.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expensesdomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *PostgresRepository) UpdateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"date":        expense.Date,
			"category":    expense.Category,
			"amount":      expense.Amount,
			"user_name":   expense.User,
			"description": expense.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return expensesdomain.ErrExpenseNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteExpense(ctx context.Context, expenseID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&expensesdomain.Expense{}, "id = ?", expenseID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]expensesdomain.Category, error) {
	var items []expensesdomain.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *expensesdomain.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return expensesdomain.ErrCategoryNameTaken
	}
	return err
}

func (r *PostgresRepository) CountCategoriesByName(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Category{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// datePrefix turns the filter into a LIKE pattern over the ISO date
// column. A month without a year does not filter.
func datePrefix(filter expensesdomain.ListFilter) (string, bool) {
	if filter.Year == nil {
		return "", false
	}
	if filter.Month == nil {
		return fmt.Sprintf("%04d-%%", *filter.Year), true
	}
	return fmt.Sprintf("%04d-%02d-%%", *filter.Year, *filter.Month), true
}
