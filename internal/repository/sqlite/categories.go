package sqlite

import (
	"context"
	"fmt"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

func (r *Repository) ListCategories(ctx context.Context) ([]expensesdomain.Category, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []expensesdomain.Category
	for rows.Next() {
		var category expensesdomain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *expensesdomain.Category) error {
	result, err := r.q.ExecContext(ctx, `INSERT INTO categories (name, color) VALUES (?, ?)`, category.Name, category.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return expensesdomain.ErrCategoryNameTaken
		}
		return fmt.Errorf("create category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *Repository) CountCategoriesByName(ctx context.Context, name string) (int64, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(1) FROM categories WHERE name = ?`, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
