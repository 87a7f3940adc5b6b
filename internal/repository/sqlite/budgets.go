package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	budgetsdomain "budget-app-go/internal/domain/budgets"
)

const budgetColumns = `id, category, amount, period, year, month`

func (r *Repository) ListBudgets(ctx context.Context, filter budgetsdomain.ListFilter) ([]budgetsdomain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets`
	var args []any
	if filter.Year != nil {
		query += ` WHERE year = ?`
		args = append(args, int64(*filter.Year))
		if filter.Month != nil {
			query += ` AND period = ? AND month = ?`
			args = append(args, string(budgetsdomain.PeriodMonthly), int64(*filter.Month))
		}
	}
	query += ` ORDER BY id`

	return r.queryBudgets(ctx, query, args...)
}

func (r *Repository) ListBudgetsByPeriod(ctx context.Context, year int, month *int) ([]budgetsdomain.Budget, error) {
	if month == nil {
		return r.queryBudgets(ctx,
			`SELECT `+budgetColumns+` FROM budgets WHERE year = ? AND period = ? ORDER BY id`,
			int64(year), string(budgetsdomain.PeriodYearly))
	}
	return r.queryBudgets(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE year = ? AND period = ? AND month = ? ORDER BY id`,
		int64(year), string(budgetsdomain.PeriodMonthly), int64(*month))
}

func (r *Repository) GetBudgetByID(ctx context.Context, budgetID int64) (*budgetsdomain.Budget, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = ?`, budgetID)
	budget, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budgetsdomain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *Repository) CreateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO budgets (category, amount, period, year, month) VALUES (?, ?, ?, ?, ?)`,
		budget.Category, budget.Amount, string(budget.Period), int64(budget.Year), nullableInt(budget.Month),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return budgetsdomain.ErrBudgetExists
		}
		return fmt.Errorf("create budget: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	budget.ID = id
	return nil
}

func (r *Repository) UpdateBudget(ctx context.Context, budget *budgetsdomain.Budget) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE budgets SET category = ?, amount = ?, period = ?, year = ?, month = ? WHERE id = ?`,
		budget.Category, budget.Amount, string(budget.Period), int64(budget.Year), nullableInt(budget.Month), budget.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return budgetsdomain.ErrBudgetExists
		}
		return fmt.Errorf("update budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	if affected == 0 {
		return budgetsdomain.ErrBudgetNotFound
	}
	return nil
}

func (r *Repository) DeleteBudget(ctx context.Context, budgetID int64) (bool, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, budgetID)
	if err != nil {
		return false, fmt.Errorf("delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete budget: %w", err)
	}
	return affected > 0, nil
}

func (r *Repository) CountBudgetsByKey(ctx context.Context, category string, year int, month *int, excludeID int64) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM budgets WHERE category = ? AND year = ? AND COALESCE(month, 0) = ? AND id <> ?`,
		category, int64(year), monthKey(month), excludeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count budgets: %w", err)
	}
	return count, nil
}

func (r *Repository) queryBudgets(ctx context.Context, query string, args ...any) ([]budgetsdomain.Budget, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var items []budgetsdomain.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return items, nil
}

func scanBudget(row rowScanner) (budgetsdomain.Budget, error) {
	var (
		budget budgetsdomain.Budget
		period string
		month  sql.NullInt64
	)
	if err := row.Scan(&budget.ID, &budget.Category, &budget.Amount, &period, &budget.Year, &month); err != nil {
		return budgetsdomain.Budget{}, err
	}
	budget.Period = budgetsdomain.Period(period)
	if month.Valid {
		value := int(month.Int64)
		budget.Month = &value
	}
	return budget, nil
}

func monthKey(month *int) int64 {
	if month == nil {
		return 0
	}
	return int64(*month)
}
