package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Report"

// sheetWriter keeps the first error; later writes are skipped.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) style(style *excelize.Style) int {
	if w.err != nil {
		return 0
	}
	id, err := w.f.NewStyle(style)
	if err != nil {
		w.err = fmt.Errorf("create style: %w", err)
	}
	return id
}

func (w *sheetWriter) colWidth(from, to string, width float64) {
	if w.err != nil {
		return
	}
	if err := w.f.SetColWidth(w.sheet, from, to, width); err != nil {
		w.err = fmt.Errorf("set width %s:%s: %w", from, to, err)
	}
}

func (w *sheetWriter) value(cell string, value interface{}) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
	}
}

func (w *sheetWriter) cellStyle(from, to string, styleID int) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellStyle(w.sheet, from, to, styleID); err != nil {
		w.err = fmt.Errorf("style %s:%s: %w", from, to, err)
	}
}

func (w *sheetWriter) at(col, row int) string {
	if w.err != nil {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
	}
	return cell
}

// ExportMonthlyReportXLSX renders the report as a single-sheet workbook: a
// totals block followed by one row per budgeted category.
func ExportMonthlyReportXLSX(report MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	w := &sheetWriter{f: f, sheet: reportSheet}

	titleStyle := w.style(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle := w.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	overStyle := w.style(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "EF4444"},
	})

	w.colWidth("A", "A", 20)
	w.colWidth("B", "F", 14)

	w.value("A1", "Monthly report "+report.Month)
	w.cellStyle("A1", "A1", titleStyle)

	totals := [][2]interface{}{
		{"Total expenses", report.TotalExpenses},
		{"Total budget", report.TotalBudget},
		{"Budget utilization (%)", report.BudgetUtilization},
		{"Expense count", report.ExpenseCount},
	}
	for i, item := range totals {
		row := i + 3
		w.value(fmt.Sprintf("A%d", row), item[0])
		w.value(fmt.Sprintf("B%d", row), item[1])
	}

	headerRow := len(totals) + 4
	headers := []string{"Category", "Budget", "Used", "Remaining", "Percentage", "Over budget"}
	for i, header := range headers {
		cell := w.at(i+1, headerRow)
		w.value(cell, header)
		w.cellStyle(cell, cell, headerStyle)
	}

	for i, category := range report.Categories {
		row := headerRow + 1 + i
		over := "no"
		if category.IsOverBudget {
			over = "yes"
		}
		values := []interface{}{
			category.Category,
			category.Budget,
			category.Used,
			category.Remaining,
			category.Percentage,
			over,
		}
		for col, value := range values {
			w.value(w.at(col+1, row), value)
		}
		if category.IsOverBudget {
			w.cellStyle(fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), overStyle)
		}
	}
	if w.err != nil {
		return nil, w.err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func XLSXFilename(year, month int) string {
	return fmt.Sprintf("report-%s.xlsx", MonthLabel(year, month))
}
