package service_test

import (
	"absence-tracker-bot/internal/models"
	"absence-tracker-bot/internal/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date string, dept models.Department, shift models.Shift, total, absences int) models.AbsenceRecord {
	return models.AbsenceRecord{
		ID:         date + string(dept) + string(shift),
		Date:       date,
		Department: dept,
		Shift:      shift,
		TotalStaff: total,
		Absences:   absences,
		Rate:       models.CalculateRate(absences, total),
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := service.Aggregate(nil, service.AllDates())

	assert.True(t, stats.IsEmpty())
	assert.False(t, stats.OverallRate.Valid)
	for _, shift := range models.Shifts {
		assert.False(t, stats.ShiftAverages[shift].Valid, "shift %s", shift)
	}
	require.Len(t, stats.Departments, len(models.Departments))
	for _, d := range stats.Departments {
		assert.Equal(t, 0, d.Absences)
		assert.False(t, d.Share.Valid)
	}
}

func TestAggregate_Example(t *testing.T) {
	records := []models.AbsenceRecord{
		record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 20, 4),
		record("2026-03-14", models.DepartmentLogistics, models.ShiftNight, 10, 0),
	}

	stats := service.Aggregate(records, nil)

	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 30, stats.TotalStaff)
	assert.Equal(t, 4, stats.TotalAbsences)
	require.True(t, stats.OverallRate.Valid)
	assert.InDelta(t, 13.33, stats.OverallRate.Value, 0.005)
	assert.Equal(t, "13.33%", stats.OverallRate.Format("-"))

	assert.Equal(t, service.Percentage{Value: 20, Valid: true}, stats.ShiftAverages[models.ShiftMorning])
	assert.Equal(t, service.Percentage{Value: 0, Valid: true}, stats.ShiftAverages[models.ShiftNight])
	assert.Equal(t, service.NoData, stats.ShiftAverages[models.ShiftAfternoon])

	production := stats.Departments[0]
	assert.Equal(t, models.DepartmentProduction, production.Department)
	assert.Equal(t, 1, production.Records)
	assert.Equal(t, 4, production.Absences)
	assert.Equal(t, 100.0, production.Share.Value)

	logistics := stats.Departments[1]
	assert.Equal(t, 1, logistics.Records)
	assert.Equal(t, 0.0, logistics.Share.Value)
	assert.True(t, logistics.Share.Valid)
}

func TestAggregate_ShiftAverageIsMeanOfRates(t *testing.T) {
	records := []models.AbsenceRecord{
		record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 10, 1),
		record("2026-03-14", models.DepartmentQuality, models.ShiftMorning, 100, 30),
	}

	stats := service.Aggregate(records, service.AllDates())

	// (10% + 30%) / 2, не 31/110
	assert.InDelta(t, 20.0, stats.ShiftAverages[models.ShiftMorning].Value, 1e-9)
}

func TestAggregate_ZeroStaffIsNoData(t *testing.T) {
	records := []models.AbsenceRecord{
		record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 0, 0),
	}

	stats := service.Aggregate(records, service.AllDates())

	assert.False(t, stats.OverallRate.Valid)
	assert.True(t, stats.ShiftAverages[models.ShiftMorning].Valid)
	assert.Equal(t, "n/a", stats.OverallRate.Format("n/a"))
}

func TestAggregate_Filters(t *testing.T) {
	records := []models.AbsenceRecord{
		record("2026-03-16", models.DepartmentProduction, models.ShiftMorning, 10, 5),
		record("2026-03-15", models.DepartmentProduction, models.ShiftMorning, 10, 2),
		record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 10, 1),
	}

	t.Run("on date", func(t *testing.T) {
		stats := service.Aggregate(records, service.OnDate("2026-03-15"))
		assert.Equal(t, 1, stats.Records)
		assert.Equal(t, 2, stats.TotalAbsences)
	})

	t.Run("between is inclusive", func(t *testing.T) {
		stats := service.Aggregate(records, service.Between("2026-03-14", "2026-03-15"))
		assert.Equal(t, 2, stats.Records)
		assert.Equal(t, 3, stats.TotalAbsences)
	})

	t.Run("between accepts reversed bounds", func(t *testing.T) {
		stats := service.Aggregate(records, service.Between("2026-03-16", "2026-03-15"))
		assert.Equal(t, 2, stats.Records)
	})

	t.Run("no match is empty", func(t *testing.T) {
		stats := service.Aggregate(records, service.OnDate("2025-01-01"))
		assert.True(t, stats.IsEmpty())
		assert.False(t, stats.OverallRate.Valid)
	})
}
