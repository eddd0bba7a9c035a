package service

import (
	"absence-tracker-bot/internal/models"
	"fmt"
)

// Percentage - процентный показатель; Valid=false означает «нет данных»
// (пустая выборка или нулевой знаменатель).
type Percentage struct {
	Value float64
	Valid bool
}

// NoData - значение «нет данных»
var NoData = Percentage{}

func percentOf(numerator, denominator float64) Percentage {
	if denominator == 0 {
		return NoData
	}
	return Percentage{Value: numerator / denominator * 100, Valid: true}
}

// Format форматирует значение как NN.NN%, для «нет данных» возвращает noData
func (p Percentage) Format(noData string) string {
	if !p.Valid {
		return noData
	}
	return fmt.Sprintf("%.2f%%", p.Value)
}

// Filter отбирает записи для расчета статистики
type Filter func(r models.AbsenceRecord) bool

// AllDates - без ограничения по дате
func AllDates() Filter {
	return func(models.AbsenceRecord) bool { return true }
}

// OnDate - записи за одну дату
func OnDate(date string) Filter {
	return func(r models.AbsenceRecord) bool { return r.Date == date }
}

// Between - записи в диапазоне дат включительно. Даты в формате
// YYYY-MM-DD сравниваются как строки.
func Between(from, to string) Filter {
	if to < from {
		from, to = to, from
	}
	return func(r models.AbsenceRecord) bool {
		return r.Date >= from && r.Date <= to
	}
}

// DepartmentShare - доля отдела в неявках выборки
type DepartmentShare struct {
	Department models.Department
	Records    int
	Absences   int
	Share      Percentage // absences отдела / все absences
}

// Statistics - показатели панели по выборке записей
type Statistics struct {
	Records       int
	TotalStaff    int
	TotalAbsences int
	OverallRate   Percentage
	ShiftAverages map[models.Shift]Percentage
	Departments   []DepartmentShare
}

// IsEmpty сообщает, что в выборке нет записей
func (s Statistics) IsEmpty() bool {
	return s.Records == 0
}

// Aggregate считает статистику по записям, прошедшим фильтр.
// Функция чистая: исходная коллекция не изменяется.
func Aggregate(records []models.AbsenceRecord, filter Filter) Statistics {
	if filter == nil {
		filter = AllDates()
	}

	shiftSums := make(map[models.Shift]float64, len(models.Shifts))
	shiftCounts := make(map[models.Shift]int, len(models.Shifts))
	deptRecords := make(map[models.Department]int, len(models.Departments))
	deptAbsences := make(map[models.Department]int, len(models.Departments))

	stats := Statistics{}
	for _, r := range records {
		if !filter(r) {
			continue
		}
		stats.Records++
		stats.TotalStaff += r.TotalStaff
		stats.TotalAbsences += r.Absences

		shiftSums[r.Shift] += r.Rate
		shiftCounts[r.Shift]++

		deptRecords[r.Department]++
		deptAbsences[r.Department] += r.Absences
	}

	stats.OverallRate = percentOf(float64(stats.TotalAbsences), float64(stats.TotalStaff))

	stats.ShiftAverages = make(map[models.Shift]Percentage, len(models.Shifts))
	for _, shift := range models.Shifts {
		if shiftCounts[shift] == 0 {
			stats.ShiftAverages[shift] = NoData
			continue
		}
		stats.ShiftAverages[shift] = Percentage{
			Value: shiftSums[shift] / float64(shiftCounts[shift]),
			Valid: true,
		}
	}

	stats.Departments = make([]DepartmentShare, 0, len(models.Departments))
	for _, dept := range models.Departments {
		stats.Departments = append(stats.Departments, DepartmentShare{
			Department: dept,
			Records:    deptRecords[dept],
			Absences:   deptAbsences[dept],
			Share:      percentOf(float64(deptAbsences[dept]), float64(stats.TotalAbsences)),
		})
	}

	return stats
}
