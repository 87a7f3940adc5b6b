package expenses

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	csvColumnDate        = "date"
	csvColumnCategory    = "category"
	csvColumnAmount      = "amount"
	csvColumnUser        = "user"
	csvColumnDescription = "description"

	maxImportErrors = 10
	utf8BOM         = "\xEF\xBB\xBF"
)

var csvHeader = []string{csvColumnDate, csvColumnCategory, csvColumnAmount, csvColumnUser, csvColumnDescription}

var requiredCSVColumns = []string{csvColumnDate, csvColumnCategory, csvColumnAmount, csvColumnUser}

// Header names written by the earlier Japanese-language export.
var csvColumnAliases = map[string]string{
	"日付":  csvColumnDate,
	"科目":  csvColumnCategory,
	"金額":  csvColumnAmount,
	"使用者": csvColumnUser,
	"説明":  csvColumnDescription,
}

// ExportCSV writes expenses as a BOM-prefixed UTF-8 CSV document so
// spreadsheet tools pick up the encoding.
func ExportCSV(w io.Writer, expenses []Expense) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, expense := range expenses {
		description := ""
		if expense.Description != nil {
			description = *expense.Description
		}
		row := []string{
			expense.Date,
			expense.Category,
			strconv.FormatInt(expense.Amount, 10),
			expense.User,
			description,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func ExportFilename(filter ListFilter) string {
	name := "expenses"
	if filter.Year != nil {
		name += fmt.Sprintf("-%d", *filter.Year)
		if filter.Month != nil {
			name += fmt.Sprintf("-%02d", *filter.Month)
		}
	}
	return name + ".csv"
}

// ImportCSV creates one expense per data row. The whole document is parsed
// before anything is stored, so a malformed file imports nothing. Rows that
// fail validation are skipped and reported; only the first few failures are
// kept.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = buffered.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(requiredCSVColumns, ", "))
	}

	columns := csvColumns(records[0])

	var missing []string
	for _, name := range requiredCSVColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	result := ImportResult{Errors: []string{}}
	for i, record := range records[1:] {
		rowNumber := i + 2

		input, err := parseImportRow(record, columns)
		if err == nil {
			_, err = s.CreateExpense(ctx, input)
		}
		if err != nil {
			if !IsValidationError(err) {
				return result, err
			}
			if len(result.Errors) < maxImportErrors {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNumber, err))
			}
			continue
		}
		result.ImportedCount++
	}

	return result, nil
}

func csvColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if alias, ok := csvColumnAliases[name]; ok {
			name = alias
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func parseImportRow(record []string, columns map[string]int) (CreateExpenseInput, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	amount, err := strconv.ParseInt(field(csvColumnAmount), 10, 64)
	if err != nil {
		return CreateExpenseInput{}, ErrInvalidAmount
	}

	input := CreateExpenseInput{
		Date:     field(csvColumnDate),
		Category: field(csvColumnCategory),
		Amount:   amount,
		User:     field(csvColumnUser),
	}
	if description := field(csvColumnDescription); description != "" {
		input.Description = &description
	}
	return input, nil
}
