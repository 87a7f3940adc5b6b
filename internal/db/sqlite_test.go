package db

import (
	"path/filepath"
	"testing"

	"budget-app-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteAppliesMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "budget.db")
	log := logger.Nop()

	sqlDB, err := NewSQLite(path, log)
	require.NoError(t, err)

	var tables []string
	rows, err := sqlDB.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('expenses', 'categories', 'budgets') ORDER BY name`)
	require.NoError(t, err)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	rows.Close()
	assert.Equal(t, []string{"budgets", "categories", "expenses"}, tables)
	require.NoError(t, sqlDB.Close())

	reopened, err := NewSQLite(path, log)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}

func TestBudgetKeyIndexTreatsNullMonthAsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")
	sqlDB, err := NewSQLite(path, logger.Nop())
	require.NoError(t, err)
	defer sqlDB.Close()

	insert := `INSERT INTO budgets (category, amount, period, year, month) VALUES (?, ?, ?, ?, ?)`
	_, err = sqlDB.Exec(insert, "food", 100, "yearly", 2024, nil)
	require.NoError(t, err)
	_, err = sqlDB.Exec(insert, "food", 200, "yearly", 2024, nil)
	assert.Error(t, err)
	_, err = sqlDB.Exec(insert, "food", 100, "monthly", 2024, 3)
	assert.NoError(t, err)
}
