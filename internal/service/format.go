package service

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"fmt"
	"strings"
)

// HistoryPageSize - сколько записей помещается в одно сообщение истории
// (с запасом до лимита Telegram в 4096 символов)
const HistoryPageSize = 20

// FormatDashboard форматирует статистику для отображения в чате
func FormatDashboard(stats Statistics, tr *i18n.Translations, period string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 %s — %s\n\n", tr.Dashboard, period)

	if stats.IsEmpty() {
		b.WriteString(tr.NoData)
		return b.String()
	}

	fmt.Fprintf(&b, "📋 %s\n", tr.Summary)
	fmt.Fprintf(&b, "• %s: %d\n", tr.Records, stats.Records)
	fmt.Fprintf(&b, "• %s: %d\n", tr.TotalStaff, stats.TotalStaff)
	fmt.Fprintf(&b, "• %s: %d\n", tr.Absences, stats.TotalAbsences)
	fmt.Fprintf(&b, "• %s: %s\n\n", tr.AbsenceRate, stats.OverallRate.Format("—"))

	fmt.Fprintf(&b, "🕒 %s\n", tr.AvgShiftRate)
	for _, shift := range models.Shifts {
		fmt.Fprintf(&b, "• %s: %s\n", tr.ShiftName(shift), stats.ShiftAverages[shift].Format("—"))
	}

	fmt.Fprintf(&b, "\n🏭 %s\n", tr.DeptDistribution)
	for _, d := range stats.Departments {
		fmt.Fprintf(&b, "• %s: %d (%s)\n", tr.DepartmentName(d.Department), d.Absences, d.Share.Format("—"))
	}

	return b.String()
}

// HistoryPages возвращает число страниц истории, пустая история - одна страница
func HistoryPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + HistoryPageSize - 1) / HistoryPageSize
}

// FormatHistory форматирует страницу списка записей (новые первыми).
// Страницы нумеруются с 1, номер вне диапазона прижимается к границе.
func FormatHistory(records []models.AbsenceRecord, tr *i18n.Translations, page int) string {
	var b strings.Builder

	pages := HistoryPages(len(records))
	page = min(max(page, 1), pages)

	fmt.Fprintf(&b, "🗂️ %s (%d)", tr.History, len(records))
	if pages > 1 {
		fmt.Fprintf(&b, " · %d/%d", page, pages)
	}
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(tr.NoData)
		return b.String()
	}

	start := (page - 1) * HistoryPageSize
	end := min(start+HistoryPageSize, len(records))
	for _, r := range records[start:end] {
		fmt.Fprintf(&b, "📅 %s | %s | %s\n", r.Date, tr.DepartmentName(r.Department), tr.ShiftName(r.Shift))
		fmt.Fprintf(&b, "   %d/%d · %.2f%% · /delete %s\n", r.Absences, r.TotalStaff, r.Rate, r.ID)
	}

	return b.String()
}
