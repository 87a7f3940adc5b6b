package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

const expenseColumns = `id, date, category, amount, user_name, description, created_at`

func (r *Repository) ListExpenses(ctx context.Context, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
	var args []any
	if filter.Year != nil {
		if filter.Month != nil {
			query += ` WHERE substr(date, 1, 7) = ?`
			args = append(args, fmt.Sprintf("%04d-%02d", *filter.Year, *filter.Month))
		} else {
			query += ` WHERE substr(date, 1, 4) = ?`
			args = append(args, fmt.Sprintf("%04d", *filter.Year))
		}
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var items []expensesdomain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return items, nil
}

func (r *Repository) GetExpenseByID(ctx context.Context, expenseID int64) (*expensesdomain.Expense, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, expenseID)
	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expensesdomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *Repository) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}
	result, err := r.q.ExecContext(ctx,
		`INSERT INTO expenses (date, category, amount, user_name, description, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		expense.Date, expense.Category, expense.Amount, expense.User, nullableString(expense.Description),
		expense.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	expense.ID = id
	return nil
}

func (r *Repository) UpdateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE expenses SET date = ?, category = ?, amount = ?, user_name = ?, description = ? WHERE id = ?`,
		expense.Date, expense.Category, expense.Amount, expense.User, nullableString(expense.Description), expense.ID,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if affected == 0 {
		return expensesdomain.ErrExpenseNotFound
	}
	return nil
}

func (r *Repository) DeleteExpense(ctx context.Context, expenseID int64) (bool, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, expenseID)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (expensesdomain.Expense, error) {
	var (
		expense     expensesdomain.Expense
		description sql.NullString
		createdAt   string
	)
	if err := row.Scan(&expense.ID, &expense.Date, &expense.Category, &expense.Amount, &expense.User, &description, &createdAt); err != nil {
		return expensesdomain.Expense{}, err
	}
	if description.Valid {
		value := description.String
		expense.Description = &value
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		expense.CreatedAt = parsed
	}
	return expense, nil
}
