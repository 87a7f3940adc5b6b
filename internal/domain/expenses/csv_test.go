package expenses

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	note := "lunch, with team"
	var buf bytes.Buffer
	err := ExportCSV(&buf, []Expense{
		{ID: 2, Date: "2024-03-20", Category: "Food", Amount: 3000, User: "alice", Description: &note},
		{ID: 1, Date: "2024-03-05", Category: "Food", Amount: 4000, User: "bob"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := utf8BOM +
		"date,category,amount,user,description\n" +
		"2024-03-20,Food,3000,alice,\"lunch, with team\"\n" +
		"2024-03-05,Food,4000,bob,\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestExportFilename(t *testing.T) {
	year, month := 2024, 3
	if got := ExportFilename(ListFilter{}); got != "expenses.csv" {
		t.Fatalf("unexpected filename %s", got)
	}
	if got := ExportFilename(ListFilter{Year: &year}); got != "expenses-2024.csv" {
		t.Fatalf("unexpected filename %s", got)
	}
	if got := ExportFilename(ListFilter{Year: &year, Month: &month}); got != "expenses-2024-03.csv" {
		t.Fatalf("unexpected filename %s", got)
	}
}

func TestImportCSV(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	input := utf8BOM +
		"Date,Category,Amount,User,Description\n" +
		"2024-03-05,Food,4000,alice,lunch\n" +
		"2024-03-06,Food,abc,alice,\n" +
		"2024/03/07,Food,100,alice,\n" +
		"2024-03-08,Transportation,800,bob\n"

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ImportedCount != 2 {
		t.Fatalf("expected 2 imported, got %d", result.ImportedCount)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "row 3:") || !strings.HasPrefix(result.Errors[1], "row 4:") {
		t.Fatalf("unexpected row errors: %v", result.Errors)
	}

	items, _ := svc.ListExpenses(context.Background(), ListFilter{})
	if len(items) != 2 {
		t.Fatalf("expected 2 stored expenses, got %d", len(items))
	}
	if items[1].Description == nil || *items[1].Description != "lunch" {
		t.Fatalf("expected description to be imported, got %+v", items[1])
	}
}

func TestImportCSVMissingColumns(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("date,amount\n2024-03-05,100\n"))
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	if !strings.Contains(err.Error(), "category") || !strings.Contains(err.Error(), "user") {
		t.Fatalf("expected missing column names in error, got %v", err)
	}

	_, err = svc.ImportCSV(context.Background(), strings.NewReader(""))
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns for empty input, got %v", err)
	}
}

func TestImportCSVCapsErrors(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	var b strings.Builder
	b.WriteString("date,category,amount,user\n")
	for i := 0; i < 15; i++ {
		b.WriteString("bad,Food,1,alice\n")
	}

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ImportedCount != 0 {
		t.Fatalf("expected nothing imported, got %d", result.ImportedCount)
	}
	if len(result.Errors) != maxImportErrors {
		t.Fatalf("expected %d errors, got %d", maxImportErrors, len(result.Errors))
	}
}

func TestImportCSVMalformedStoresNothing(t *testing.T) {
	repo := newFakeExpensesRepo()
	svc := NewService(repo)

	input := "date,category,amount,user\n" +
		"2024-03-05,Food,4000,alice\n" +
		"2024-03-06,\"Food,100,alice\n"

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	if !errors.Is(err, ErrMalformedCSV) {
		t.Fatalf("expected ErrMalformedCSV, got %v", err)
	}
	if result.ImportedCount != 0 {
		t.Fatalf("expected nothing imported, got %d", result.ImportedCount)
	}
	if len(repo.expenses) != 0 {
		t.Fatalf("expected no stored expenses, got %d", len(repo.expenses))
	}
}

func TestImportCSVJapaneseHeaders(t *testing.T) {
	svc := NewService(newFakeExpensesRepo())

	input := utf8BOM +
		"日付,科目,金額,使用者,説明\n" +
		"2024-03-05,Food,4000,alice,lunch\n"

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ImportedCount != 1 {
		t.Fatalf("expected 1 imported, got %d (%v)", result.ImportedCount, result.Errors)
	}

	items, _ := svc.ListExpenses(context.Background(), ListFilter{})
	if len(items) != 1 || items[0].Amount != 4000 || items[0].User != "alice" {
		t.Fatalf("unexpected stored expenses: %+v", items)
	}
	if items[0].Description == nil || *items[0].Description != "lunch" {
		t.Fatalf("expected description to be imported, got %+v", items[0])
	}
}
