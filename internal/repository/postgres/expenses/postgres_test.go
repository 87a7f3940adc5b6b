package expenses

import (
	"context"
	"testing"
	"time"

	expensesdomain "budget-app-go/internal/domain/expenses"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return NewPostgres(gormDB), mock
}

func intPtr(v int) *int { return &v }

func TestListExpensesFiltersByMonth(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE date LIKE \$1 ORDER BY date desc, id desc`).
		WithArgs("2024-12-%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "category", "amount", "user_name", "description", "created_at"}).
			AddRow(2, "2024-12-24", "food", 4500, "alice", "dinner", time.Now()).
			AddRow(1, "2024-12-01", "travel", 1200, "bob", nil, time.Now()))

	items, err := repo.ListExpenses(context.Background(), expensesdomain.ListFilter{Year: intPtr(2024), Month: intPtr(12)})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alice", items[0].User)
	require.NotNil(t, items[0].Description)
	assert.Equal(t, "dinner", *items[0].Description)
	assert.Nil(t, items[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpensesFiltersByYear(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE date LIKE \$1`).
		WithArgs("2024-%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "category", "amount", "user_name"}))

	items, err := repo.ListExpenses(context.Background(), expensesdomain.ListFilter{Year: intPtr(2024)})
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExpenseByIDNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetExpenseByID(context.Background(), 7)
	assert.ErrorIs(t, err, expensesdomain.ErrExpenseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpenseReturnsID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	expense := expensesdomain.Expense{Date: "2024-03-05", Category: "food", Amount: 100, User: "alice", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateExpense(context.Background(), &expense))
	assert.Equal(t, int64(11), expense.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExpenseMissingRow(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`UPDATE "expenses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	expense := expensesdomain.Expense{ID: 9, Date: "2024-03-05", Category: "food", Amount: 100, User: "alice"}
	assert.ErrorIs(t, repo.UpdateExpense(context.Background(), &expense), expensesdomain.ErrExpenseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(`DELETE FROM "expenses" WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteExpense(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	category := expensesdomain.Category{Name: "Food", Color: "#10B981"}
	assert.ErrorIs(t, repo.CreateCategory(context.Background(), &category), expensesdomain.ErrCategoryNameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountCategoriesByName(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE name = \$1`).
		WithArgs("Food").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountCategoriesByName(context.Background(), "Food")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDatePrefix(t *testing.T) {
	prefix, ok := datePrefix(expensesdomain.ListFilter{Month: intPtr(3)})
	assert.False(t, ok)
	assert.Empty(t, prefix)

	prefix, ok = datePrefix(expensesdomain.ListFilter{Year: intPtr(2024), Month: intPtr(2)})
	assert.True(t, ok)
	assert.Equal(t, "2024-02-%", prefix)

	prefix, ok = datePrefix(expensesdomain.ListFilter{Year: intPtr(9999), Month: intPtr(12)})
	assert.True(t, ok)
	assert.Equal(t, "9999-12-%", prefix)

	prefix, ok = datePrefix(expensesdomain.ListFilter{Year: intPtr(9999)})
	assert.True(t, ok)
	assert.Equal(t, "9999-%", prefix)
}
