package models

// Department - цех/отдел завода
type Department string

const (
	DepartmentProduction  Department = "production"
	DepartmentLogistics   Department = "logistics"
	DepartmentMaintenance Department = "maintenance"
	DepartmentQuality     Department = "quality"
)

// Departments - все отделы в порядке отображения
var Departments = []Department{
	DepartmentProduction,
	DepartmentLogistics,
	DepartmentMaintenance,
	DepartmentQuality,
}

// IsValid проверяет, что отдел входит в фиксированный набор
func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// Shift - смена
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

// Shifts - все смены в порядке отображения
var Shifts = []Shift{
	ShiftMorning,
	ShiftAfternoon,
	ShiftNight,
}

// IsValid проверяет, что смена входит в фиксированный набор
func (s Shift) IsValid() bool {
	for _, known := range Shifts {
		if s == known {
			return true
		}
	}
	return false
}

// AbsenceRecord - одна запись о неявках за дату/отдел/смену.
// После создания запись не меняется.
type AbsenceRecord struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Department Department `json:"department"`
	Shift      Shift      `json:"shift"`
	TotalStaff int        `json:"totalStaff"`
	Absences   int        `json:"absences"`
	Rate       float64    `json:"rate"`      // процент, считается один раз при создании
	CreatedAt  int64      `json:"createdAt"` // unix ms
}

// CalculateRate вычисляет процент неявок; при нулевом штате возвращает 0
func CalculateRate(absences, totalStaff int) float64 {
	if totalStaff <= 0 {
		return 0
	}
	return float64(absences) / float64(totalStaff) * 100
}
