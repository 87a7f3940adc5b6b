package expenses

import "time"

const DateLayout = "2006-01-02"

type Expense struct {
	ID          int64     `gorm:"primaryKey"`
	Date        string    `gorm:"type:varchar(10);index;not null"`
	Category    string    `gorm:"not null"`
	Amount      int64     `gorm:"not null"`
	User        string    `gorm:"column:user_name;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// InMonth reports whether the expense date falls in the given calendar month.
// Unparsable dates never match.
func (e Expense) InMonth(year, month int) bool {
	date, ok := parseDate(e.Date)
	if !ok {
		return false
	}
	return date.Year() == year && int(date.Month()) == month
}

// InYear reports whether the expense date falls in the given calendar year.
func (e Expense) InYear(year int) bool {
	date, ok := parseDate(e.Date)
	if !ok {
		return false
	}
	return date.Year() == year
}

func parseDate(value string) (time.Time, bool) {
	// time.Parse without a zone yields UTC, so no day can shift across a boundary.
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

type Category struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Color string `gorm:"type:varchar(7);not null"`
}

type ListFilter struct {
	Year  *int
	Month *int
}

type CreateExpenseInput struct {
	Date        string
	Category    string
	Amount      int64
	User        string
	Description *string
}

type UpdateExpenseInput struct {
	ID          int64
	Date        string
	Category    string
	Amount      int64
	User        string
	Description *string
}

type CreateCategoryInput struct {
	Name  string
	Color string
}

type ImportResult struct {
	ImportedCount int
	Errors        []string
}
