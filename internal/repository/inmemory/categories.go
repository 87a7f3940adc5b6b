package inmemory

import (
	"context"

	expensesdomain "budget-app-go/internal/domain/expenses"
)

func (s *Store) ListCategories(ctx context.Context) ([]expensesdomain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]expensesdomain.Category, len(s.categories))
	copy(items, s.categories)
	return items, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *expensesdomain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Name == category.Name {
			return expensesdomain.ErrCategoryNameTaken
		}
	}

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories = append(s.categories, *category)
	return nil
}

func (s *Store) CountCategoriesByName(ctx context.Context, name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, category := range s.categories {
		if category.Name == name {
			count++
		}
	}
	return count, nil
}
