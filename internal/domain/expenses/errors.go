package expenses

import "errors"

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrCategoryRequired     = errors.New("category is required")
	ErrUserRequired         = errors.New("user is required")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name is too long")
	ErrCategoryNameTaken    = errors.New("category name already exists")
	ErrInvalidCategoryColor = errors.New("invalid category color")
	ErrMissingColumns       = errors.New("missing required csv columns")
	ErrMalformedCSV         = errors.New("malformed csv")
)

// IsValidationError reports whether err was caused by a malformed payload.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrUserRequired),
		errors.Is(err, ErrCategoryNameRequired),
		errors.Is(err, ErrCategoryNameTooLong),
		errors.Is(err, ErrInvalidCategoryColor):
		return true
	default:
		return false
	}
}
