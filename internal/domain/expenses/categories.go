package expenses

import (
	"context"
	"regexp"
	"strings"
)

const DefaultCategoryColor = "#64748B"

// DefaultCategories is the set seeded into every fresh store.
var DefaultCategories = []CreateCategoryInput{
	{Name: "Transportation", Color: "#2563EB"},
	{Name: "Food", Color: "#10B981"},
	{Name: "Entertainment", Color: "#EF4444"},
	{Name: "Office Supplies", Color: "#F59E0B"},
	{Name: "Other", Color: DefaultCategoryColor},
}

const maxCategoryNameLength = 50

var categoryColorRegex = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []Category{}, nil
	}
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	name, err := validateCategoryName(input.Name)
	if err != nil {
		return nil, err
	}
	color, err := normalizeCategoryColor(input.Color)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountCategoriesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameTaken
	}

	category := Category{Name: name, Color: color}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// SeedDefaultCategories creates every default category whose name is not
// present yet and returns how many were created.
func (s *Service) SeedDefaultCategories(ctx context.Context) (int, error) {
	created := 0
	for _, input := range DefaultCategories {
		count, err := s.repo.CountCategoriesByName(ctx, input.Name)
		if err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		category := Category{Name: input.Name, Color: input.Color}
		if err := s.repo.CreateCategory(ctx, &category); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrCategoryNameRequired
	}
	if len([]rune(name)) > maxCategoryNameLength {
		return "", ErrCategoryNameTooLong
	}
	return name, nil
}

func normalizeCategoryColor(value string) (string, error) {
	color := strings.ToUpper(strings.TrimSpace(value))
	if color == "" {
		return DefaultCategoryColor, nil
	}
	if !categoryColorRegex.MatchString(color) {
		return "", ErrInvalidCategoryColor
	}
	return color, nil
}
