package service

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

// utf8BOM нужен Excel, чтобы правильно распознать локализованный текст
const utf8BOM = "\uFEFF"

const reportSheet = "Sheet1"

// ReportFileName возвращает имя файла отчета вида absence_report_2026-01-31.csv
func ReportFileName(now time.Time, ext string) string {
	return fmt.Sprintf("absence_report_%s.%s", now.Format("2006-01-02"), ext)
}

func reportHeader(tr *i18n.Translations) []string {
	return []string{tr.Date, tr.Department, tr.Shift, tr.TotalStaff, tr.Absences, tr.AbsenceRate}
}

func reportRow(r models.AbsenceRecord, tr *i18n.Translations) []string {
	return []string{
		r.Date,
		tr.DepartmentName(r.Department),
		tr.ShiftName(r.Shift),
		strconv.Itoa(r.TotalStaff),
		strconv.Itoa(r.Absences),
		fmt.Sprintf("%.2f%%", r.Rate),
	}
}

// ExportCSV пишет всю коллекцию в CSV: BOM, строка заголовков, по строке на запись
// в порядке коллекции.
func ExportCSV(w io.Writer, records []models.AbsenceRecord, tr *i18n.Translations) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader(tr)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(reportRow(r, tr)); err != nil {
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportXLSX строит тот же отчет в виде книги Excel
func ExportXLSX(records []models.AbsenceRecord, tr *i18n.Translations) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := reportHeader(tr)
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, title); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}

	rowNum := 2
	for _, r := range records {
		values := []interface{}{
			r.Date,
			tr.DepartmentName(r.Department),
			tr.ShiftName(r.Shift),
			r.TotalStaff,
			r.Absences,
			fmt.Sprintf("%.2f%%", r.Rate),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		rowNum++
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
